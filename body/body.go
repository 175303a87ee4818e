// Package body reduces a raw message to a normalized plain-text string.
// Multipart messages contribute only their text/plain leaves; flat messages
// contribute the single payload regardless of its declared type. Parts that
// cannot be decoded are skipped, never fatal.
package body

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-message"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Extract parses raw (headers plus payload) and returns the normalized
// plain-text body. Transfer encodings are undone by go-message; charsets
// are decoded per part with a lossy UTF-8 fallback. An empty result is not
// an error.
func Extract(raw []byte) string {
	entity, err := message.Read(bytes.NewReader(raw))
	if entity == nil || (err != nil && !message.IsUnknownCharset(err)) {
		// Structure too broken for a MIME walk: take whatever follows
		// the header block.
		_, payload := splitRaw(raw)
		return normalize(decodeLossy(payload, ""))
	}

	var parts []string
	collect(entity, &parts, true)
	return normalize(strings.Join(parts, "\n"))
}

func collect(e *message.Entity, parts *[]string, root bool) {
	if mr := e.MultipartReader(); mr != nil {
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				return
			}
			if part == nil || (err != nil && !message.IsUnknownCharset(err)) {
				// Malformed part boundary; stop walking this level.
				return
			}
			collect(part, parts, false)
		}
	}

	mediaType, params, err := e.Header.ContentType()
	if err != nil {
		mediaType = "text/plain"
	}
	// Multipart leaves must be text/plain; a flat message is used as-is.
	if !root && mediaType != "text/plain" {
		return
	}

	payload, err := io.ReadAll(e.Body)
	if err != nil || len(payload) == 0 {
		return
	}
	if text := decodeLossy(payload, params["charset"]); text != "" {
		*parts = append(*parts, text)
	}
}

// CharsetReader returns a reader translating input from the named IANA
// charset to UTF-8. Unknown charsets pass the input through unchanged. It
// also serves as the word decoder hook for RFC 2047 display names.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(strings.TrimSpace(charset)))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// decodeLossy converts payload to UTF-8, substituting undecodable bytes.
func decodeLossy(payload []byte, charset string) string {
	if charset != "" {
		if enc, err := ianaindex.IANA.Encoding(strings.ToLower(strings.TrimSpace(charset))); err == nil && enc != nil {
			if out, err := enc.NewDecoder().Bytes(payload); err == nil {
				return strings.ToValidUTF8(string(out), string(utf8.RuneError))
			}
		}
	}
	return strings.ToValidUTF8(string(payload), string(utf8.RuneError))
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return whitespaceRE.ReplaceAllString(s, " ")
}

func splitRaw(raw []byte) (header, payload []byte) {
	if len(raw) == 0 {
		return nil, nil
	}
	if idx := bytes.Index(raw, []byte("\r\n\r\n")); idx >= 0 {
		return raw[:idx], raw[idx+4:]
	}
	if idx := bytes.Index(raw, []byte("\n\n")); idx >= 0 {
		return raw[:idx], raw[idx+2:]
	}
	return raw, nil
}
