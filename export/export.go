// Package export writes the final contact set as a CSV table.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhcgn/mbox-contacts/store"
)

var columns = []string{"email", "first_name", "last_name", "phone", "last_contacted", "notes"}

// WriteCSV writes the contact set to path, one row per contact sorted by
// email ascending, all six fields always present. The table is staged in
// the destination directory and renamed into place, so a failed run never
// leaves a partial export behind.
func WriteCSV(set *store.Set, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.csv")
	if err != nil {
		return fmt.Errorf("create temp export: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range set.Snapshot() {
		row := []string{c.Email, c.FirstName, c.LastName, c.Phone, c.LastContacted, c.Notes}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write contact %s: %w", c.Email, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename export: %w", err)
	}
	return nil
}
