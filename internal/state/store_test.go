package state

import "testing"

func TestWarningCounter(t *testing.T) {
	store := NewStore(100)

	if got := store.Warnings(7); got != 0 {
		t.Fatalf("expected zero warnings initially, got %d", got)
	}
	if got := store.AddWarning(7); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
	if got := store.AddWarning(7); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}

	store.ResetWarnings(7)
	if got := store.Warnings(7); got != 0 {
		t.Fatalf("expected zero warnings after reset, got %d", got)
	}
	if got := store.AddWarning(7); got != 1 {
		t.Fatalf("expected counter to restart at 1, got %d", got)
	}
}

func TestApprovalSetsAreIndependent(t *testing.T) {
	store := NewStore(100)

	store.ApproveBio(1)
	if !store.IsBioApproved(1) {
		t.Fatal("expected bio approval")
	}
	if store.IsStickerApproved(1) {
		t.Fatal("bio approval must not imply sticker approval")
	}

	store.ApproveSticker(2)
	if !store.IsStickerApproved(2) {
		t.Fatal("expected sticker approval")
	}
	if store.IsBioApproved(2) {
		t.Fatal("sticker approval must not imply bio approval")
	}
}

func TestReplaceAdminsOverwrites(t *testing.T) {
	store := NewStore(100)

	store.ReplaceAdmins(10, []int64{1, 2})
	if !store.IsAdmin(10, 1) || !store.IsAdmin(10, 2) {
		t.Fatal("expected both admins cached")
	}

	store.ReplaceAdmins(10, []int64{3})
	if store.IsAdmin(10, 1) || store.IsAdmin(10, 2) {
		t.Fatal("expected old admins dropped on refresh")
	}
	if !store.IsAdmin(10, 3) {
		t.Fatal("expected new admin cached")
	}

	if store.IsAdmin(11, 3) {
		t.Fatal("admin cache must be per chat")
	}
}

func TestCopyrightToggleDefaultsEnabled(t *testing.T) {
	store := NewStore(100)

	if !store.CopyrightEnabled(5) {
		t.Fatal("expected copyright enabled by default")
	}
	if got := store.ToggleCopyright(5); got {
		t.Fatal("expected first toggle to disable")
	}
	if store.CopyrightEnabled(5) {
		t.Fatal("expected copyright disabled after toggle")
	}
	if got := store.ToggleCopyright(5); !got {
		t.Fatal("expected second toggle to enable")
	}

	if !store.CopyrightEnabled(6) {
		t.Fatal("toggle must be per chat")
	}
}

func TestHistoryCapEvictsSmallestMessageID(t *testing.T) {
	store := NewStore(100)

	for id := 1; id <= 101; id++ {
		store.RememberMessage(42, id, "message")
	}

	entries := store.History(42)
	if len(entries) != 100 {
		t.Fatalf("expected 100 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.MessageID == 1 {
			t.Fatal("expected smallest message id evicted")
		}
	}
	if entries[0].MessageID != 2 || entries[len(entries)-1].MessageID != 101 {
		t.Fatalf("unexpected history bounds: %d..%d", entries[0].MessageID, entries[len(entries)-1].MessageID)
	}
}

func TestHistoryInsertionOrderPreserved(t *testing.T) {
	store := NewStore(3)

	store.RememberMessage(1, 10, "first")
	store.RememberMessage(1, 11, "second")
	store.RememberMessage(1, 12, "third")

	entries := store.History(1)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Text != want {
			t.Fatalf("entry %d: got %q, want %q", i, entries[i].Text, want)
		}
	}
}

func TestPendingApprovalNewestWins(t *testing.T) {
	store := NewStore(100)

	if _, ok := store.PendingApproval(9); ok {
		t.Fatal("expected no marker initially")
	}

	store.SetPendingApproval(9, 100)
	store.SetPendingApproval(9, 200)

	marker, ok := store.PendingApproval(9)
	if !ok || marker != 200 {
		t.Fatalf("expected newest marker 200, got %d (ok=%v)", marker, ok)
	}
}

func TestDeletionReasons(t *testing.T) {
	store := NewStore(100)

	store.RecordDeletionReason(55, "spam")
	reason, ok := store.DeletionReason(55)
	if !ok || reason != "spam" {
		t.Fatalf("unexpected reason: %q (ok=%v)", reason, ok)
	}
	if _, ok := store.DeletionReason(56); ok {
		t.Fatal("expected no reason for unknown message")
	}
}
