package enums

type AuditAction string

const (
	AuditActionWarningIssued     AuditAction = "WARNING_ISSUED"
	AuditActionUserMuted         AuditAction = "USER_MUTED"
	AuditActionMessageDeleted    AuditAction = "MESSAGE_DELETED"
	AuditActionCopyrightHit      AuditAction = "COPYRIGHT_HIT"
	AuditActionCopyrightToggled  AuditAction = "COPYRIGHT_TOGGLED"
	AuditActionStickerRemoved    AuditAction = "STICKER_REMOVED"
	AuditActionEditRemoved       AuditAction = "EDIT_REMOVED"
	AuditActionBioApproved       AuditAction = "BIO_APPROVED"
	AuditActionStickerApproved   AuditAction = "STICKER_APPROVED"
	AuditActionWarningsReset     AuditAction = "WARNINGS_RESET"
)
