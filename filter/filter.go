// Package filter excludes automated and system-generated addresses from
// the contact set. Rules are evaluated per recipient, not per message: a
// single message can contribute some recipients and exclude others.
package filter

import (
	"regexp"
	"strings"
)

// rule is a single automated-address predicate. Rules run in order and the
// first match wins; ordering is a short-circuit optimization, not a
// correctness requirement.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

var rules = []rule{
	{"hubspotemail-domain", regexp.MustCompile(`@.*\.hubspotemail\.net$`)},
	{"hubspot-domain", regexp.MustCompile(`@.*\.hubspot\.com$`)},
	{"hubspot-bcc", regexp.MustCompile(`@bcc\.hubspot\.com$`)},
	{"unsubscribe", regexp.MustCompile(`@.*unsubscribe`)},
	{"noreply", regexp.MustCompile(`@.*noreply`)},
	{"no-reply", regexp.MustCompile(`@.*no-reply`)},
	{"donotreply", regexp.MustCompile(`@.*donotreply`)},
	{"bounce", regexp.MustCompile(`@.*bounce`)},
	{"mailer-daemon", regexp.MustCompile(`@.*mailer-daemon`)},
	// Long hex local parts are tracking IDs.
	{"hex-local", regexp.MustCompile(`^[a-f0-9]{20,}@`)},
	// Plus addressing with equals (tracking).
	{"plus-tracking", regexp.MustCompile(`\+.*=.*@`)},
	{"numeric-local", regexp.MustCompile(`^\d+@`)},
	// Dash with equals (more tracking).
	{"dash-tracking", regexp.MustCompile(`-.*=.*@`)},
	{"linuxfoundation-domain", regexp.MustCompile(`@.*\.linuxfoundation\.org$`)},
}

// RuleStats reports per-rule hit counts in rule order.
type RuleStats struct {
	Rules []string
	Hits  map[string]int
}

// Add accumulates hit counts from another scan.
func (rs *RuleStats) Add(o RuleStats) {
	if rs.Hits == nil {
		rs.Hits = make(map[string]int)
	}
	if len(rs.Rules) == 0 {
		rs.Rules = o.Rules
	}
	for name, count := range o.Hits {
		rs.Hits[name] += count
	}
}

// Filter tests normalized addresses against the automated-address rules
// and tracks which rules fire.
type Filter struct {
	hits map[string]int
}

func New() *Filter {
	return &Filter{hits: make(map[string]int)}
}

// IsAutomated reports whether the address looks machine-generated. The
// address is lowercased before matching; the first matching rule wins.
func (f *Filter) IsAutomated(email string) bool {
	addr := strings.ToLower(email)
	for _, r := range rules {
		if r.pattern.MatchString(addr) {
			f.hits[r.name]++
			return true
		}
	}
	return false
}

// Stats returns the hit counts accumulated so far.
func (f *Filter) Stats() RuleStats {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	hits := make(map[string]int, len(f.hits))
	for name, count := range f.hits {
		hits[name] = count
	}
	return RuleStats{Rules: names, Hits: hits}
}
