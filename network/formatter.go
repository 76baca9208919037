// SPDX-License-Identifier: GPL-3.0-only

package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const region = "NG"

// FormatPhone keeps the digits of raw, capped at PhoneLength.
func FormatPhone(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < PhoneLength; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// DisplayPhone groups the digits of raw as 0803-123-4567. Partial input is grouped
// as far as it goes.
func DisplayPhone(raw string) string {
	digits := FormatPhone(raw)
	groups := []int{4, 3, 4}

	var parts []string
	for _, size := range groups {
		if digits == "" {
			break
		}
		n := min(size, len(digits))
		parts = append(parts, digits[:n])
		digits = digits[n:]
	}
	return strings.Join(parts, "-")
}

// International returns the E.164 form (+234...) of a valid national number.
func (d *Detector) International(raw string) (string, error) {
	res := d.Detect(raw)
	if !res.IsValid {
		return "", errors.New(res.ErrorMessage)
	}
	num, err := phonenumbers.Parse(res.PhoneNumber, region)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", res.PhoneNumber, err)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func International(raw string) (string, error) {
	return defaultDetector.International(raw)
}
