// Package signals derives per-message facts from normalized body text.
// The facts are computed once per message and shared by every recipient.
package signals

import "regexp"

// phoneRE is a loose match: optional country code, NANP-style grouping with
// space/dot/hyphen separators and an optional parenthesized area code, or a
// condensed international form of + followed by 7-15 digits.
var phoneRE = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}|\+\d{7,15}`)

// NotesLimit caps the notes snippet, counted in runes.
const NotesLimit = 200

// Extract returns the first phone-number candidate in body and the notes
// snippet. Both may be empty.
func Extract(body string) (phone, notes string) {
	phone = phoneRE.FindString(body)
	notes = body
	if runes := []rune(body); len(runes) > NotesLimit {
		notes = string(runes[:NotesLimit])
	}
	return phone, notes
}
