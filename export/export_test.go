package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhcgn/mbox-contacts/model"
	"github.com/dhcgn/mbox-contacts/store"
)

func TestWriteCSV(t *testing.T) {
	set := store.NewSet()
	set.Put(&model.Contact{
		Email:         "b@y.com",
		FirstName:     "Bob",
		LastName:      "Smith",
		Phone:         "555-123-4567",
		LastContacted: "2024-02-01T09:30:00Z",
		Notes:         "notes with, comma and \"quotes\"",
	})
	set.Put(&model.Contact{Email: "a@x.com", FirstName: "Jane"})

	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, WriteCSV(set, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"email", "first_name", "last_name", "phone", "last_contacted", "notes"}, rows[0])
	// Rows sorted by email ascending, all six fields always present.
	assert.Equal(t, []string{"a@x.com", "Jane", "", "", "", ""}, rows[1])
	assert.Equal(t, []string{"b@y.com", "Bob", "Smith", "555-123-4567", "2024-02-01T09:30:00Z", "notes with, comma and \"quotes\""}, rows[2])
}

func TestWriteCSVEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, WriteCSV(store.NewSet(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWriteCSVReplacesExistingFileAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	set := store.NewSet()
	set.Put(&model.Contact{Email: "a@x.com"})
	require.NoError(t, WriteCSV(set, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteCSVUnwritableDirectory(t *testing.T) {
	err := WriteCSV(store.NewSet(), filepath.Join(t.TempDir(), "no-such-dir", "contacts.csv"))
	assert.Error(t, err)
}
