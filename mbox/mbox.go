// Package mbox streams messages out of mbox archive containers and decodes
// each one into the fixed typed record the aggregation fold consumes.
package mbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"os"
	"time"

	mboxlib "github.com/emersion/go-mbox"

	"github.com/dhcgn/mbox-contacts/body"
	"github.com/dhcgn/mbox-contacts/model"
)

// Read streams messages from r, invoking fn with the raw bytes of each.
// Container-level read errors abort the stream; they are archive-fatal,
// unlike per-message decode errors which the caller counts and skips.
func Read(r io.Reader, fn func(raw []byte) error) error {
	reader := mboxlib.NewReader(r)
	for idx := 0; ; idx++ {
		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("message %d: %w", idx, err)
		}

		raw, err := io.ReadAll(msgReader)
		if err != nil {
			return fmt.Errorf("message %d read: %w", idx, err)
		}

		if err := fn(raw); err != nil {
			return err
		}
	}
}

// Open opens the archive at path and streams it through Read. An open
// failure is fatal for the whole run.
func Open(path string, fn func(raw []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mbox: %w", err)
	}
	defer file.Close()
	return Read(file, fn)
}

// CountMessages counts the messages in an mbox file without parsing them.
// Used as the progress-bar total before the real scan.
func CountMessages(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open mbox: %w", err)
	}
	defer file.Close()

	reader := mboxlib.NewReader(file)
	count := 0
	for {
		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return 0, err
		}

		count++
		if _, err := io.Copy(io.Discard, msgReader); err != nil {
			// Keep counting even when a message cannot be read through.
			continue
		}
	}
}

// addressParser decodes RFC 2047 display names in any IANA charset.
var addressParser = mail.AddressParser{
	WordDecoder: &mime.WordDecoder{CharsetReader: body.CharsetReader},
}

// Decode parses raw into the typed record. Header-level failures are
// per-message parse errors; a missing or unparseable Date and malformed
// recipient lists degrade silently.
func Decode(raw []byte) (model.Message, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return model.Message{}, fmt.Errorf("parse message: %w", err)
	}

	return model.Message{
		Labels: msg.Header.Get("X-Gmail-Labels"),
		To:     parseRecipients(msg.Header["To"]),
		Cc:     parseRecipients(msg.Header["Cc"]),
		Date:   parseDate(msg.Header.Get("Date")),
		Body:   body.Extract(raw),
	}, nil
}

func parseRecipients(values []string) []model.Recipient {
	var out []model.Recipient
	for _, value := range values {
		addrs, err := addressParser.ParseList(value)
		if err != nil {
			// A malformed list contributes no recipients; the message is
			// still processed with whatever did parse.
			continue
		}
		for _, a := range addrs {
			out = append(out, model.Recipient{Name: a.Name, Email: a.Address})
		}
	}
	return out
}

// dateLayouts are fallbacks for Date headers mail.ParseDate rejects.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.RFC3339,
}

// parseDate renders the Date header in fixed RFC 3339 UTC so recency can be
// compared lexicographically. Unparseable dates yield the empty string; the
// message is treated as dateless, not failed.
func parseDate(value string) string {
	if value == "" {
		return ""
	}
	if t, err := mail.ParseDate(value); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}
