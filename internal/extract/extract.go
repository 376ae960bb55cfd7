// Package extract is the document ingest boundary. It does not perform real
// PDF or DOCX parsing; the contract is raw bytes in, best-effort text out,
// which may be empty or garbled for binary formats.
package extract

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode"
)

var ErrNoData = errors.New("no file data provided")

// FromBase64 decodes a base64 payload (with or without a data-URL prefix) and
// cleans it into plain text. Control characters become spaces and runs of
// whitespace collapse to one.
func FromBase64(fileData string) (string, error) {
	if strings.TrimSpace(fileData) == "" {
		return "", ErrNoData
	}

	// Browsers send data URLs like "data:application/pdf;base64,JVBER...".
	if idx := strings.IndexByte(fileData, ','); idx >= 0 {
		fileData = fileData[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(fileData)
		if err != nil {
			return "", errors.New("invalid base64 payload")
		}
	}

	return CleanText(string(raw)), nil
}

// CleanText strips NUL bytes, maps remaining control characters to spaces,
// and collapses whitespace.
func CleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 0 || r == unicode.ReplacementChar:
			// dropped
		case r < 0x20 || (r >= 0x7F && r <= 0x9F):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
