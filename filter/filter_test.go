package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAutomated(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"hubspot transactional subdomain", "noreply@service.hubspotemail.net", true},
		{"hubspot domain", "crm@mail.hubspot.com", true},
		{"hubspot bcc", "log@bcc.hubspot.com", true},
		{"unsubscribe domain", "jane@unsubscribe.example.com", true},
		{"noreply domain", "a@noreply.example.com", true},
		{"no-reply domain", "a@no-reply.example.com", true},
		{"donotreply domain", "a@donotreply.example.com", true},
		{"bounce domain", "a@bounces.example.com", true},
		{"mailer daemon", "a@mailer-daemon.example.com", true},
		{"long hex local part", "abcdef0123456789abcdef@tracking.example.com", true},
		{"plus addressing with equals", "john+tag=abc@example.com", true},
		{"numeric local part", "12345@example.com", true},
		{"dash with equals", "bounce-id=77@example.com", true},
		{"linux foundation", "build@lists.linuxfoundation.org", true},
		{"uppercase is normalized", "NoReply@X.HUBSPOT.COM", true},
		{"plain human address", "jane.doe@example.com", false},
		{"dash without equals", "mary-jane@example.com", false},
		{"short hex local part", "abc123@example.com", false},
		{"digits after letters", "user2024@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			assert.Equal(t, tt.want, f.IsAutomated(tt.email))
		})
	}
}

func TestStatsCountsHits(t *testing.T) {
	f := New()
	f.IsAutomated("noreply@service.hubspotemail.net")
	f.IsAutomated("other@x.hubspotemail.net")
	f.IsAutomated("12345@example.com")
	f.IsAutomated("jane.doe@example.com")

	rs := f.Stats()
	assert.Equal(t, 2, rs.Hits["hubspotemail-domain"])
	assert.Equal(t, 1, rs.Hits["numeric-local"])
	assert.NotContains(t, rs.Hits, "hex-local")
	assert.NotEmpty(t, rs.Rules)
}

func TestRuleStatsAdd(t *testing.T) {
	var total RuleStats

	a := New()
	a.IsAutomated("12345@example.com")
	b := New()
	b.IsAutomated("67890@example.com")
	b.IsAutomated("noreply@service.hubspotemail.net")

	total.Add(a.Stats())
	total.Add(b.Stats())

	assert.Equal(t, 2, total.Hits["numeric-local"])
	assert.Equal(t, 1, total.Hits["hubspotemail-domain"])
	assert.NotEmpty(t, total.Rules)
}

func TestFirstMatchWins(t *testing.T) {
	// An address matching several rules only counts toward the first.
	f := New()
	assert.True(t, f.IsAutomated("noreply@bounces.hubspotemail.net"))

	rs := f.Stats()
	assert.Equal(t, 1, rs.Hits["hubspotemail-domain"])
	assert.NotContains(t, rs.Hits, "bounce")
}
