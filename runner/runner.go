// Package runner orchestrates a full extraction: scan every archive in
// argument order, merge the results, write the export.
package runner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhcgn/mbox-contacts/aggregate"
	"github.com/dhcgn/mbox-contacts/config"
	"github.com/dhcgn/mbox-contacts/export"
	"github.com/dhcgn/mbox-contacts/mbox"
	"github.com/dhcgn/mbox-contacts/progress"
	"github.com/dhcgn/mbox-contacts/store"
)

type Runner struct {
	cfg    config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Run processes every configured archive and writes the export. An archive
// that cannot be opened aborts the run; per-message errors are counted by
// the scan and never abort. Archives fold into the merge strictly in
// argument order, the deterministic order the name-filling tie-break needs.
func (r *Runner) Run() error {
	started := time.Now()

	results := make([]aggregate.Result, 0, len(r.cfg.MboxPaths))
	for _, path := range r.cfg.MboxPaths {
		res, err := r.scanArchive(path)
		if err != nil {
			return fmt.Errorf("archive %s: %w", path, err)
		}
		results = append(results, res)
	}

	merged := aggregate.MergeAll(results)
	r.logger.Info("archives merged", merged.Stats.LogAttrs()...)

	if !r.cfg.DryRun {
		if err := export.WriteCSV(merged.Contacts, r.cfg.OutputPath); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}

	progress.PrintSummary(merged.Stats, r.cfg.OutputPath, r.cfg.DryRun)
	if r.cfg.ShowStats {
		progress.PrintTopDomains(domainCounts(merged.Contacts), r.cfg.TopDomains)
		progress.PrintRuleHits(merged.FilterStats)
	}

	r.logger.Info("run completed", "duration", time.Since(started), "contacts", merged.Contacts.Len())
	return nil
}

func (r *Runner) scanArchive(path string) (aggregate.Result, error) {
	total, err := mbox.CountMessages(path)
	if err != nil {
		return aggregate.Result{}, err
	}

	assumeSent := r.cfg.AssumeSentFor(path)
	r.logger.Info("scanning archive", "path", path, "messages", total, "assumeSent", assumeSent)

	bar := progress.New(filepath.Base(path), total, r.cfg.LogLevel)
	defer bar.Stop()

	res, err := aggregate.ScanArchive(path, aggregate.ScanOptions{
		AssumeSent: assumeSent,
		OnMessage:  bar.Increment,
	})
	if err != nil {
		return aggregate.Result{}, err
	}

	r.logger.Info("archive scanned", res.Stats.LogAttrs()...)
	return res, nil
}

func domainCounts(set *store.Set) map[string]int {
	counts := make(map[string]int)
	for _, email := range set.Emails() {
		if idx := strings.LastIndex(email, "@"); idx >= 0 && idx+1 < len(email) {
			counts[email[idx+1:]]++
		}
	}
	return counts
}
