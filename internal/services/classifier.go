package services

import (
	"regexp"
	"strings"
)

// MessageKind is the classifier verdict for one inbound message.
type MessageKind int

const (
	KindConversation MessageKind = iota
	KindApplication
	KindRemove
)

// removePattern matches "remove <company> row" anywhere in the message.
// The lazy capture stops at the first " row" so trailing words stay out.
var removePattern = regexp.MustCompile(`(?i)remove\s+(.+?)\s+row`)

var jobKeywords = []string{
	"applied", "application", "applying", "job", "position",
	"role", "interview", "company", "submitted", "sent resume",
}

// Classify decides what the user is asking for. Removal requests win over
// the keyword scan ("remove Google row" also contains "row"-adjacent
// keywords), then any job keyword marks an application report, and
// everything else is general conversation. Pure function, no side effects.
func Classify(text string) MessageKind {
	if removePattern.MatchString(text) {
		return KindRemove
	}
	lower := strings.ToLower(text)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			return KindApplication
		}
	}
	return KindConversation
}

// MatchRemoveTarget extracts the company name from a removal request.
// The turn loop calls this again after Classify; the classifier stays a
// pure kind-only function and does not hand captures around.
func MatchRemoveTarget(text string) (string, bool) {
	m := removePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
