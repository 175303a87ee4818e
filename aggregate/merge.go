package aggregate

import (
	"github.com/dhcgn/mbox-contacts/model"
	"github.com/dhcgn/mbox-contacts/store"
)

// Merge folds src into dst. Names fill blanks only (first seen wins).
// LastContacted and Notes move together when src wins on recency; Phone
// follows recency but may also fill an empty field. Dates compare
// lexicographically, which is sound because every stored date is rendered
// in fixed RFC 3339 UTC; an empty date always loses to a non-empty one.
func Merge(dst, src *model.Contact) {
	if dst.FirstName == "" && src.FirstName != "" {
		dst.FirstName = src.FirstName
	}
	if dst.LastName == "" && src.LastName != "" {
		dst.LastName = src.LastName
	}

	replace := src.LastContacted != "" &&
		(dst.LastContacted == "" || src.LastContacted > dst.LastContacted)
	if replace {
		dst.LastContacted = src.LastContacted
		dst.Notes = src.Notes
	}

	if src.Phone != "" && (replace || dst.Phone == "") {
		dst.Phone = src.Phone
	}
}

// MergeAll combines per-archive results in processing order. Additive
// counters sum; UniqueEmails is recomputed from the final set. Recency
// fields end up identical regardless of archive order; only name filling
// keeps the first-seen-wins tie-break, which is why callers must apply
// archives in a fixed, deterministic order.
func MergeAll(results []Result) Result {
	merged := Result{Contacts: store.NewSet()}
	for _, res := range results {
		merged.Stats.Add(res.Stats)
		merged.FilterStats.Add(res.FilterStats)
		for _, c := range res.Contacts.Snapshot() {
			if existing, ok := merged.Contacts.Get(c.Email); ok {
				Merge(existing, c)
			} else {
				merged.Contacts.Put(c.Clone())
			}
		}
	}
	merged.Stats.UniqueEmails = merged.Contacts.Len()
	return merged
}
