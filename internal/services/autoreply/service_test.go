package autoreply

import "testing"

func TestMatchCaseInsensitiveSubstring(t *testing.T) {
	responder := NewResponder()

	reply, ok := responder.Match("Hey, WHAT IS THE RULE here exactly?")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply != "Links in bios are not allowed. Please make sure to follow the group rules." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestMatchFirstRuleWins(t *testing.T) {
	responder := NewResponder()

	// Contains both the rules trigger and the help trigger; the rules
	// trigger is listed first.
	reply, ok := responder.Match("help me, what is the rule?")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply != "Links in bios are not allowed. Please make sure to follow the group rules." {
		t.Fatalf("expected the first listed rule to win, got %q", reply)
	}
}

func TestMatchApprovalQuestion(t *testing.T) {
	responder := NewResponder()

	reply, ok := responder.Match("how can i get approved?")
	if !ok || reply != "Please contact the group admin for approval." {
		t.Fatalf("unexpected result: %q (ok=%v)", reply, ok)
	}
}

func TestNoMatch(t *testing.T) {
	responder := NewResponder()

	if reply, ok := responder.Match("good morning everyone"); ok {
		t.Fatalf("expected no match, got %q", reply)
	}
}
