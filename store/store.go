// Package store holds the contacts discovered during a scan, keyed by
// lowercase email. Exactly one record exists per distinct address.
package store

import (
	"sort"

	"github.com/dhcgn/mbox-contacts/model"
)

type Set struct {
	contacts map[string]*model.Contact
}

func NewSet() *Set {
	return &Set{contacts: make(map[string]*model.Contact)}
}

func (s *Set) Get(email string) (*model.Contact, bool) {
	c, ok := s.contacts[email]
	return c, ok
}

func (s *Set) Put(c *model.Contact) {
	s.contacts[c.Email] = c
}

func (s *Set) Len() int {
	return len(s.contacts)
}

// Emails returns every address in ascending order.
func (s *Set) Emails() []string {
	emails := make([]string, 0, len(s.contacts))
	for email := range s.contacts {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// Snapshot returns the contacts sorted by email ascending. The records are
// the live aggregates, not copies; callers must not mutate them after the
// scan is finalized.
func (s *Set) Snapshot() []*model.Contact {
	out := make([]*model.Contact, 0, len(s.contacts))
	for _, email := range s.Emails() {
		out = append(out, s.contacts[email])
	}
	return out
}
