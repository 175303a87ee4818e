package model

// Contact is the aggregate record for a single recipient address. Email is
// the identity key; the merge rules in the aggregate package govern every
// other field.
type Contact struct {
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	LastContacted string // RFC 3339 UTC, empty when no message carried a parseable date
	Notes         string
}

// Clone returns a copy so cross-archive merges never alias per-archive state.
func (c *Contact) Clone() *Contact {
	cp := *c
	return &cp
}

// Recipient is a (display name, address) pair parsed from a To or Cc header.
type Recipient struct {
	Name  string
	Email string
}

// Message is the fixed typed record decoded once per archive entry. Only the
// fields the fold consumes are retained; the raw message is discarded after
// decoding.
type Message struct {
	Labels string // X-Gmail-Labels header value, empty when absent
	To     []Recipient
	Cc     []Recipient
	Date   string // RFC 3339 UTC, empty when missing or unparseable
	Body   string // normalized plain text
}

// Recipients returns the To recipients followed by the Cc recipients.
func (m *Message) Recipients() []Recipient {
	out := make([]Recipient, 0, len(m.To)+len(m.Cc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return out
}
