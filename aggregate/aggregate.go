// Package aggregate folds per-message facts into per-email contact records.
// A scan processes one archive; MergeAll combines archives afterwards using
// the same recency rules.
package aggregate

import (
	"io"
	"strings"

	"github.com/dhcgn/mbox-contacts/classify"
	"github.com/dhcgn/mbox-contacts/filter"
	"github.com/dhcgn/mbox-contacts/mbox"
	"github.com/dhcgn/mbox-contacts/model"
	"github.com/dhcgn/mbox-contacts/signals"
	"github.com/dhcgn/mbox-contacts/stats"
	"github.com/dhcgn/mbox-contacts/store"
)

// Result is one archive's (or the merged) contact set plus its counters.
type Result struct {
	Contacts    *store.Set
	Stats       stats.Stats
	FilterStats filter.RuleStats
}

// ScanOptions tunes a single archive scan.
type ScanOptions struct {
	// AssumeSent classifies label-less messages as sent. Callers derive it
	// from the archive path or an explicit override.
	AssumeSent bool
	// OnMessage, when non-nil, runs once per raw message before decoding.
	// Drives the progress bar.
	OnMessage func()
}

// ScanArchive streams the archive at path into a fresh Result. An
// unreadable archive is fatal; individual malformed messages are counted
// and skipped.
func ScanArchive(path string, opts ScanOptions) (Result, error) {
	s := newScanner(opts)
	if err := mbox.Open(path, s.fold); err != nil {
		return Result{}, err
	}
	return s.result(), nil
}

// ScanReader is ScanArchive over an already-open container stream.
func ScanReader(r io.Reader, opts ScanOptions) (Result, error) {
	s := newScanner(opts)
	if err := mbox.Read(r, s.fold); err != nil {
		return Result{}, err
	}
	return s.result(), nil
}

type scanner struct {
	opts     ScanOptions
	filter   *filter.Filter
	contacts *store.Set
	stats    stats.Stats
}

func newScanner(opts ScanOptions) *scanner {
	return &scanner{
		opts:     opts,
		filter:   filter.New(),
		contacts: store.NewSet(),
	}
}

func (s *scanner) fold(raw []byte) error {
	if s.opts.OnMessage != nil {
		s.opts.OnMessage()
	}
	s.stats.TotalMessages++

	msg, err := mbox.Decode(raw)
	if err != nil {
		s.stats.ParseErrors++
		return nil
	}

	if !classify.IsSent(msg.Labels, s.opts.AssumeSent) {
		return nil
	}
	s.stats.SentMessages++

	recipients := msg.Recipients()
	if len(recipients) == 0 {
		// No To/Cc pairs: the message contributes no contacts.
		return nil
	}
	s.stats.MessagesWithRecipients++

	// Body-derived facts are computed once and shared by every recipient.
	phone, notes := signals.Extract(msg.Body)

	for _, r := range recipients {
		email := strings.ToLower(strings.TrimSpace(r.Email))
		if email == "" {
			continue
		}
		if s.filter.IsAutomated(email) {
			s.stats.AutomatedFiltered++
			continue
		}

		first, last := SplitName(r.Name)
		incoming := &model.Contact{
			Email:         email,
			FirstName:     first,
			LastName:      last,
			Phone:         phone,
			LastContacted: msg.Date,
			Notes:         notes,
		}

		if existing, ok := s.contacts.Get(email); ok {
			Merge(existing, incoming)
		} else {
			s.contacts.Put(incoming)
		}
	}
	return nil
}

func (s *scanner) result() Result {
	s.stats.UniqueEmails = s.contacts.Len()
	return Result{
		Contacts:    s.contacts,
		Stats:       s.stats,
		FilterStats: s.filter.Stats(),
	}
}

// SplitName derives first/last name tokens from a display name. The first
// whitespace-delimited token becomes the first name and the final token the
// last name; single-token names leave the last name empty. Surrounding
// quote characters are stripped before splitting.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"'`)
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[0], tokens[len(tokens)-1]
	}
}
