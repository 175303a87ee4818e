package stats

import (
	"fmt"
	"sort"
)

// Stats captures the counters of one archive scan, or of the merged run.
type Stats struct {
	TotalMessages          int
	SentMessages           int
	MessagesWithRecipients int
	ParseErrors            int
	AutomatedFiltered      int
	UniqueEmails           int
}

// Add sums every additive counter from o into s. UniqueEmails is excluded:
// it is always recomputed from the final contact set, never accumulated.
func (s *Stats) Add(o Stats) {
	s.TotalMessages += o.TotalMessages
	s.SentMessages += o.SentMessages
	s.MessagesWithRecipients += o.MessagesWithRecipients
	s.ParseErrors += o.ParseErrors
	s.AutomatedFiltered += o.AutomatedFiltered
}

// LogAttrs renders the counters as slog key/value pairs.
func (s Stats) LogAttrs() []any {
	return []any{
		"totalMessages", s.TotalMessages,
		"sentMessages", s.SentMessages,
		"messagesWithRecipients", s.MessagesWithRecipients,
		"uniqueEmails", s.UniqueEmails,
		"automatedFiltered", s.AutomatedFiltered,
		"parseErrors", s.ParseErrors,
	}
}

// PrettyPrintTop prints the top N most frequent items in a map.
func PrettyPrintTop(m map[string]int, limit int) {
	type pair struct {
		Key   string
		Value int
	}

	var pairs []pair
	for k, v := range m {
		pairs = append(pairs, pair{k, v})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})

	for i := 0; i < limit && i < len(pairs); i++ {
		fmt.Printf("%d. %s (%d)\n", i+1, pairs[i].Key, pairs[i].Value)
	}
}
