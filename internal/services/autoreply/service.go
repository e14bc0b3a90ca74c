package autoreply

import "strings"

// Rule maps a lower-case trigger substring to a canned reply.
type Rule struct {
	Trigger string
	Reply   string
}

var defaultRules = []Rule{
	{Trigger: "what is the rule", Reply: "Links in bios are not allowed. Please make sure to follow the group rules."},
	{Trigger: "how can i get approved", Reply: "Please contact the group admin for approval."},
	{Trigger: "help", Reply: "Please follow the group rules. If you need assistance, ask the admin."},
}

// Responder answers plain text messages with canned replies. Rules are
// checked in order and the first matching trigger wins.
type Responder struct {
	rules []Rule
}

func NewResponder() *Responder {
	return &Responder{rules: defaultRules}
}

func (r *Responder) Match(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range r.rules {
		if strings.Contains(lowered, rule.Trigger) {
			return rule.Reply, true
		}
	}
	return "", false
}
