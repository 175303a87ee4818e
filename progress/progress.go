package progress

import (
	"github.com/pterm/pterm"

	"github.com/dhcgn/mbox-contacts/filter"
	"github.com/dhcgn/mbox-contacts/stats"
)

// Bar manages a progress bar for one archive scan.
type Bar struct {
	pb      *pterm.ProgressbarPrinter
	total   int
	enabled bool
}

// New creates a progress bar when logLevel is "info"; other levels keep the
// terminal quiet.
func New(title string, total int, logLevel string) *Bar {
	enabled := logLevel == "info"

	bar := &Bar{total: total, enabled: enabled}
	if enabled {
		pb, _ := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle(title).
			Start()
		bar.pb = pb
	}
	return bar
}

// Increment advances the bar by one message.
func (b *Bar) Increment() {
	if !b.enabled || b.pb == nil {
		return
	}
	b.pb.Increment()
}

// Stop finalizes the bar.
func (b *Bar) Stop() {
	if !b.enabled || b.pb == nil {
		return
	}
	if b.pb.Current < b.total {
		b.pb.Current = b.total
	}
	b.pb.Stop()
}

// PrintSummary renders the merged counters after all archives are folded.
func PrintSummary(s stats.Stats, output string, dryRun bool) {
	pterm.Println()
	pterm.DefaultSection.Println("Extraction Summary")
	pterm.Info.Printf("Total messages scanned:      %d\n", s.TotalMessages)
	pterm.Info.Printf("Messages considered Sent:    %d\n", s.SentMessages)
	pterm.Info.Printf("Messages with recipients:    %d\n", s.MessagesWithRecipients)
	pterm.Info.Printf("Unique email addresses:      %d\n", s.UniqueEmails)
	pterm.Info.Printf("Automated emails filtered:   %d\n", s.AutomatedFiltered)
	pterm.Info.Printf("Message parse errors:        %d\n", s.ParseErrors)

	if dryRun {
		pterm.Warning.Printf("Dry run: skipped writing %s\n", output)
	} else {
		pterm.Success.Printf("Wrote %d contacts to %s\n", s.UniqueEmails, output)
	}
}

// PrintTopDomains lists the most frequent recipient domains in the final
// contact set.
func PrintTopDomains(domains map[string]int, limit int) {
	pterm.Println()
	pterm.DefaultSection.Printf("Top %d Recipient Domains\n", limit)
	stats.PrettyPrintTop(domains, limit)
}

// PrintRuleHits lists the automated-address rules that fired.
func PrintRuleHits(rs filter.RuleStats) {
	pterm.Println()
	pterm.DefaultSection.Println("Automated Address Rules")
	fired := false
	for _, name := range rs.Rules {
		if count := rs.Hits[name]; count > 0 {
			fired = true
			pterm.Info.Printf("  %s: %d\n", name, count)
		}
	}
	if !fired {
		pterm.Info.Println("  no rules fired")
	}
}
