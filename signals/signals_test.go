package signals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"hyphenated", "Call me at 555-123-4567 when you land.", "555-123-4567"},
		{"parenthesized area code", "Office: (212) 555-0123", "(212) 555-0123"},
		{"dotted with country code", "+1 212.555.0123 is my cell", "+1 212.555.0123"},
		{"condensed international", "reach me on +442071838750 anytime", "+442071838750"},
		{"first match wins", "555-123-4567 or 555-987-6543", "555-123-4567"},
		{"no phone", "see you tomorrow", ""},
		{"short digit runs ignored", "order #1234567 confirmed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, _ := Extract(tt.body)
			assert.Equal(t, tt.want, phone)
		})
	}
}

func TestExtractNotes(t *testing.T) {
	short := "a quick note"
	_, notes := Extract(short)
	assert.Equal(t, short, notes)

	long := strings.Repeat("é", 300)
	_, notes = Extract(long)
	assert.Equal(t, strings.Repeat("é", NotesLimit), notes)

	_, notes = Extract("")
	assert.Empty(t, notes)
}
