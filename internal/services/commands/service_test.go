package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bot_guard/internal/domain/model"
	"bot_guard/internal/services/audit"
	"bot_guard/internal/state"
)

type stubGateway struct {
	admins    []model.ChatAdmin
	adminsErr error
	deleted   []int
	deleteErr error
}

func (g *stubGateway) ChatAdmins(_ context.Context, _ int64) ([]model.ChatAdmin, error) {
	if g.adminsErr != nil {
		return nil, g.adminsErr
	}
	return g.admins, nil
}

func (g *stubGateway) DeleteMessage(_ context.Context, _ int64, messageID int) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, messageID)
	return nil
}

func newTestService(store *state.Store, gateway *stubGateway, ownerTGID int64) *Service {
	return NewService(store, gateway, audit.NewService(nil), nil, ownerTGID, nil)
}

func TestApproveRequiresCachedAdmin(t *testing.T) {
	store := state.NewStore(100)
	svc := newTestService(store, &stubGateway{}, 99)

	if _, err := svc.Approve(context.Background(), 10, 2, "7"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestApproveResetsWarnings(t *testing.T) {
	store := state.NewStore(100)
	store.ReplaceAdmins(10, []int64{2})
	store.AddWarning(7)
	store.AddWarning(7)

	svc := newTestService(store, &stubGateway{}, 99)

	reply, err := svc.Approve(context.Background(), 10, 2, "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "User 7 has been approved." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if !store.IsBioApproved(7) {
		t.Fatal("expected user approved")
	}
	if got := store.Warnings(7); got != 0 {
		t.Fatalf("expected warnings reset, got %d", got)
	}
}

func TestApproveArgumentErrors(t *testing.T) {
	store := state.NewStore(100)
	store.ReplaceAdmins(10, []int64{2})
	svc := newTestService(store, &stubGateway{}, 99)

	if _, err := svc.Approve(context.Background(), 10, 2, "   "); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), 10, 2, "not-a-number"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestResetWarnings(t *testing.T) {
	store := state.NewStore(100)
	store.ReplaceAdmins(10, []int64{2})
	store.AddWarning(7)

	svc := newTestService(store, &stubGateway{}, 99)

	reply, err := svc.ResetWarnings(context.Background(), 10, 2, "7 extra ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Warnings for user 7 have been reset." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if got := store.Warnings(7); got != 0 {
		t.Fatalf("expected warnings cleared, got %d", got)
	}
	if store.IsBioApproved(7) {
		t.Fatal("a reset must not approve the user")
	}
}

func TestDeleteRequiresReply(t *testing.T) {
	store := state.NewStore(100)
	svc := newTestService(store, &stubGateway{}, 99)

	if _, err := svc.Delete(context.Background(), 10, 99, 0, false, ""); !errors.Is(err, ErrNotAReply) {
		t.Fatalf("expected ErrNotAReply, got %v", err)
	}
}

func TestDeleteByOwnerUnconditional(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.Delete(context.Background(), 10, 99, 55, true, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Message deleted by bot owner." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if len(gateway.deleted) != 1 || gateway.deleted[0] != 55 {
		t.Fatalf("expected message 55 deleted, got %v", gateway.deleted)
	}
}

func TestDeleteByAdminRecordsReason(t *testing.T) {
	store := state.NewStore(100)
	store.ReplaceAdmins(10, []int64{2})

	gateway := &stubGateway{}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.Delete(context.Background(), 10, 2, 55, true, "  spam links  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Reason: spam links") {
		t.Fatalf("unexpected reply: %q", reply)
	}

	reason, ok := store.DeletionReason(55)
	if !ok || reason != "spam links" {
		t.Fatalf("unexpected recorded reason: %q (ok=%v)", reason, ok)
	}
}

func TestDeleteByAdminDefaultReason(t *testing.T) {
	store := state.NewStore(100)
	store.ReplaceAdmins(10, []int64{2})

	gateway := &stubGateway{}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.Delete(context.Background(), 10, 2, 55, true, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Reason: No reason provided") {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestDeleteByNonAdminDenied(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.Delete(context.Background(), 10, 2, 55, true, ""); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if len(gateway.deleted) != 0 {
		t.Fatal("denied delete must not touch the message")
	}
}

func TestDeleteFailureApologizes(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{deleteErr: errors.New("message too old")}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.Delete(context.Background(), 10, 99, 55, true, "")
	if err != nil {
		t.Fatalf("expected a reply, not an error: %v", err)
	}
	if reply != "Failed to delete the message." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestApproveStickerByBotOwner(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{adminsErr: errors.New("should not be called")}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.ApproveSticker(context.Background(), 10, 99, "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "User 7 has been approved to send stickers." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if !store.IsStickerApproved(7) {
		t.Fatal("expected sticker approval recorded")
	}
}

func TestApproveStickerByGroupOwner(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{admins: []model.ChatAdmin{{UserID: 3, IsOwner: true}, {UserID: 4}}}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.ApproveSticker(context.Background(), 10, 3, "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.IsStickerApproved(7) {
		t.Fatal("expected sticker approval recorded")
	}
}

func TestApproveStickerByPlainAdminDenied(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{admins: []model.ChatAdmin{{UserID: 3, IsOwner: true}, {UserID: 4}}}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.ApproveSticker(context.Background(), 10, 4, "7"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if store.IsStickerApproved(7) {
		t.Fatal("denied approval must not be recorded")
	}
}

func TestApproveStickerAdminFetchFailureApologizes(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{adminsErr: errors.New("network down")}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.ApproveSticker(context.Background(), 10, 3, "7")
	if err != nil {
		t.Fatalf("expected a reply, not an error: %v", err)
	}
	if reply != "An error occurred while trying to approve the user." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if store.IsStickerApproved(7) {
		t.Fatal("failed approval must not be recorded")
	}
}

func TestApproveStickerArgumentCheckedFirst(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{adminsErr: errors.New("should not be called")}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.ApproveSticker(context.Background(), 10, 3, ""); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestToggleCopyrightByLiveAdmin(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{admins: []model.ChatAdmin{{UserID: 4}}}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.ToggleCopyright(context.Background(), 10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Copyright protection has been disabled for this chat." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if store.CopyrightEnabled(10) {
		t.Fatal("expected copyright disabled")
	}
}

func TestToggleCopyrightByOwnerSkipsAdminCheck(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{adminsErr: errors.New("should not be called")}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.ToggleCopyright(context.Background(), 10, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.CopyrightEnabled(10) {
		t.Fatal("expected copyright disabled")
	}
}

func TestToggleCopyrightNonAdminDenied(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{admins: []model.ChatAdmin{{UserID: 4}}}
	svc := newTestService(store, gateway, 99)

	if _, err := svc.ToggleCopyright(context.Background(), 10, 5); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if !store.CopyrightEnabled(10) {
		t.Fatal("denied toggle must not change the state")
	}
}

func TestToggleCopyrightSilentOnFetchFailure(t *testing.T) {
	store := state.NewStore(100)
	gateway := &stubGateway{adminsErr: errors.New("network down")}
	svc := newTestService(store, gateway, 99)

	reply, err := svc.ToggleCopyright(context.Background(), 10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "" {
		t.Fatalf("expected silence, got %q", reply)
	}
	if !store.CopyrightEnabled(10) {
		t.Fatal("failed check must not change the state")
	}
}
