package classify

import "strings"

// sentLabelTokens are the Gmail Takeout label values that place a message
// in the sent corpus.
var sentLabelTokens = map[string]struct{}{
	"sent":       {},
	"sent mail":  {},
	"sent items": {},
}

// IsSent reports whether the label header value marks the message as sent.
// An empty value degrades to assumeIfUnlabeled; malformed values never
// produce an error.
func IsSent(labels string, assumeIfUnlabeled bool) bool {
	if strings.TrimSpace(labels) == "" {
		return assumeIfUnlabeled
	}
	for _, token := range strings.Split(labels, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if _, ok := sentLabelTokens[token]; ok {
			return true
		}
	}
	return false
}

// PathImpliesSent reports whether an archive path looks like a sent-mail
// export, e.g. "Takeout/Mail/Sent-001.mbox". Callers use it to pick the
// classifier default for archives whose messages carry no labels.
func PathImpliesSent(path string) bool {
	return strings.Contains(strings.ToLower(path), "sent")
}
