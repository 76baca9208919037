// SPDX-License-Identifier: GPL-3.0-only

// Package cards holds the lexical grammar of scratch-card identifiers: the public
// serial number (AB-12C4D6) and the secret card code under the scratch-off layer
// (A1B-2C3D-4E5F-6A7B).
package cards

import (
	"regexp"
	"strings"
)

const (
	SerialNumberLength = 9
	CardCodeLength     = 18
)

var (
	serialNumberRegex = regexp.MustCompile(`^[A-Z]{2}-[A-Z0-9]{6}$`)
	cardCodeRegex     = regexp.MustCompile(`^[A-Z0-9]{3}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

	serialGroups = []int{2, 6}
	codeGroups   = []int{3, 4, 4, 4}
)

// FormatSerialNumber upper-cases raw, drops everything outside A-Z0-9 and inserts the
// hyphen after the second character.
func FormatSerialNumber(raw string) string {
	return group(raw, serialGroups)
}

// FormatCardCode upper-cases raw, drops everything outside A-Z0-9 and inserts hyphens
// to form XXX-XXXX-XXXX-XXXX.
func FormatCardCode(raw string) string {
	return group(raw, codeGroups)
}

func ValidateSerialNumber(value string) bool {
	return len(value) == SerialNumberLength && serialNumberRegex.MatchString(value)
}

func ValidateCardCode(value string) bool {
	return len(value) == CardCodeLength && cardCodeRegex.MatchString(value)
}

// group keeps the alphanumerics of raw and lays them out in the given group sizes.
// A delimiter is only written once a character of the following group exists, so
// partially typed input never ends with a hyphen.
func group(raw string, sizes []int) string {
	limit := 0
	for _, s := range sizes {
		limit += s
	}

	chars := make([]byte, 0, limit)
	for i := 0; i < len(raw) && len(chars) < limit; i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			chars = append(chars, c)
		}
	}

	var b strings.Builder
	for _, size := range sizes {
		if len(chars) == 0 {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		n := min(size, len(chars))
		b.Write(chars[:n])
		chars = chars[n:]
	}
	return b.String()
}
