package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSent(t *testing.T) {
	tests := []struct {
		name   string
		labels string
		assume bool
		want   bool
	}{
		{"plain sent label", "Sent", false, true},
		{"sent mail label", "Sent Mail", false, true},
		{"sent items label", "Sent Items", false, true},
		{"mixed labels", "Inbox,Important,Sent", false, true},
		{"case and spacing", "  SENT MAIL , Starred", false, true},
		{"not sent", "Inbox,Starred", false, false},
		{"substring does not count", "Sentinel", false, false},
		{"absent labels use default false", "", false, false},
		{"absent labels use default true", "", true, true},
		{"whitespace-only labels use default", "   ", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSent(tt.labels, tt.assume))
		})
	}
}

func TestPathImpliesSent(t *testing.T) {
	assert.True(t, PathImpliesSent("Takeout/Mail/Sent-001.mbox"))
	assert.True(t, PathImpliesSent("archive/sent_mail.mbox"))
	assert.True(t, PathImpliesSent("SENT.mbox"))
	assert.False(t, PathImpliesSent("Takeout/Mail/Inbox.mbox"))
	assert.False(t, PathImpliesSent(""))
}
