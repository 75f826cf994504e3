package cv

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxUploadBytes bounds an uploaded CV file.
	MaxUploadBytes = 2 << 20
	// readabilitySample is how many leading characters are inspected.
	readabilitySample = 2000
	// readableRatio is the share of printable characters a sample must exceed.
	readableRatio = 0.7
)

var (
	ErrEmptyText    = errors.New("cv text is empty")
	ErrUploadTooBig = fmt.Errorf("cv file is larger than %d bytes", MaxUploadBytes)
	ErrUnreadable   = errors.New("unrecognised format: cv must be plain readable text")
)

// CheckReadable rejects content that does not look like text: empty after
// trimming, or with too few printable ASCII and whitespace characters in its
// first 2000 characters. Invalid UTF-8 counts as unprintable.
func CheckReadable(content []byte) error {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return ErrEmptyText
	}
	total, printable := 0, 0
	for i := 0; i < len(trimmed) && total < readabilitySample; {
		r, size := utf8.DecodeRuneInString(trimmed[i:])
		i += size
		total++
		if isPrintable(r) {
			printable++
		}
	}
	if float64(printable)/float64(total) <= readableRatio {
		return ErrUnreadable
	}
	return nil
}

// CheckUpload applies the size bound before the readability check.
func CheckUpload(size int64, content []byte) error {
	if size > MaxUploadBytes || int64(len(content)) > MaxUploadBytes {
		return ErrUploadTooBig
	}
	return CheckReadable(content)
}

func isPrintable(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r <= 0x7e)
}
