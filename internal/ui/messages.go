package ui

import (
	"fmt"
	"strings"
)

func StartMessage() string {
	return "Hi! I am the Bio Link Bot. I monitor user bios for links and help maintain group rules."
}

func HelpMessage() string {
	return "🤖 <b>Bio Link Bot Help</b>\n\n" +
		"<b>Commands:</b>\n" +
		"/start - Start the bot\n" +
		"/help - Show this help message\n" +
		"/info - Show bot information\n" +
		"/approve &lt;user_id&gt; - Approve a user's bio link (Admin only)\n" +
		"/reset_warnings &lt;user_id&gt; - Reset user warnings (Admin only)\n" +
		"/delete [reason] - Delete the replied-to message (Admin only)\n" +
		"/approve_sticker &lt;user_id&gt; - Approve a user for stickers (Owner only)\n" +
		"/copyright - Toggle copyright protection (Admin only)\n\n" +
		"<b>Features:</b>\n" +
		"• Monitors user bios for links\n" +
		"• Warns users with links in bio\n" +
		"• Auto-mutes after repeated warnings\n" +
		"• Admin approval system\n" +
		"• Duplicate content detection\n" +
		"• Automatic responses to common queries"
}

func InfoMessage() string {
	return "🤖 <b>Bot Information</b>\n\n" +
		"Group moderation bot: bio link detection, duplicate content protection, sticker gating and edit suppression."
}

func BioLinkWarning(username string, found []string, count, maxWarnings int) string {
	return fmt.Sprintf(
		"⚠️ Warning %d/%d\n@%s has links in their bio:\nFound: %s\nPlease remove all links or reply to this message to request approval.",
		count, maxWarnings, username, strings.Join(found, ", "),
	)
}

func MuteNotice(username string, hours int) string {
	return fmt.Sprintf("🚫 @%s has been muted for %d hours due to multiple warnings.", username, hours)
}

func BioUnavailable(username string) string {
	return fmt.Sprintf("⚠️ Unable to check bio for @%s. Please ensure the bot has permission to view user information.", username)
}

func CopyrightAlert(username string, ratio float64) string {
	return fmt.Sprintf(
		"⚠️ Copyright Alert\n@%s, this message is %.0f%% similar to a previous message.\nPlease write more original content.",
		username, ratio*100,
	)
}

func StickerNotice(username string) string {
	return fmt.Sprintf("@%s, stickers require group owner approval. Please contact the group owner.", username)
}

func EditNotice(username string) string {
	return fmt.Sprintf("@%s, message editing is not allowed. Please send a new message instead.", username)
}

func ApprovedByAdmin() string {
	return "✅ User has been approved by admin."
}

func ApprovalRequestAck() string {
	return "Your approval request has been sent to the admins. Please wait for their response."
}

func ApprovalRequestNotice(username string, userID int64) string {
	return fmt.Sprintf("🔔 Approval request from user @%s (ID: %d)", username, userID)
}

func UserApproved(userID int64) string {
	return fmt.Sprintf("User %d has been approved.", userID)
}

func WarningsReset(userID int64) string {
	return fmt.Sprintf("Warnings for user %d have been reset.", userID)
}

func StickerUserApproved(userID int64) string {
	return fmt.Sprintf("User %d has been approved to send stickers.", userID)
}

func DeletedByOwner() string {
	return "Message deleted by bot owner."
}

func DeletedWithReason(reason string) string {
	return fmt.Sprintf("Message deleted.\nReason: %s", reason)
}

func DeleteFailed() string {
	return "Failed to delete the message."
}

func CopyrightToggled(enabled bool) string {
	status := "disabled"
	if enabled {
		status = "enabled"
	}
	return fmt.Sprintf("Copyright protection has been %s for this chat.", status)
}

func NoPermission() string {
	return "You don't have permission to use this command."
}

func NoDeletePermission() string {
	return "You don't have permission to delete messages."
}

func OwnerOnlyStickerApproval() string {
	return "Only the group owner can approve users for stickers."
}

func AdminOnlyCopyrightToggle() string {
	return "Only admins can toggle copyright protection."
}

func MissingUserID(action string) string {
	return fmt.Sprintf("Please provide a user ID to %s.", action)
}

func InvalidUserID() string {
	return "Invalid user ID provided."
}

func StickerApprovalFailed() string {
	return "An error occurred while trying to approve the user."
}

func ReplyRequired() string {
	return "Please reply to the message you want to delete."
}
