// SPDX-License-Identifier: GPL-3.0-only

package network

import (
	"strings"
)

// PhoneLength is the length of a national-format Nigerian mobile number.
const PhoneLength = 11

const (
	errRequired    = "Phone number is required"
	errDigitsOnly  = "Phone number must contain digits only"
	errLength      = "Phone number must be exactly 11 digits"
	errLeadingZero = "Phone number must start with 0"
	errSecondDigit = "Phone number must start with 07, 08 or 09"
)

// DetectionResult is the outcome of a single detection. Operator is Unknown whenever
// IsValid is false.
type DetectionResult struct {
	IsValid      bool     `json:"is_valid"`
	PhoneNumber  string   `json:"phone_number"`
	Operator     Operator `json:"operator"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Detector validates Nigerian mobile numbers and resolves their operator from a
// prefix table fixed at construction.
type Detector struct {
	table   PrefixTable
	lengths []int
}

func NewDetector(table PrefixTable) *Detector {
	d := &Detector{table: table.Clone()}
	seen := map[int]bool{}
	for p := range d.table {
		seen[len(p)] = true
	}
	// longest prefixes first
	for l := PhoneLength; l > 0; l-- {
		if seen[l] {
			d.lengths = append(d.lengths, l)
		}
	}
	return d
}

var defaultDetector = NewDetector(defaultPrefixes)

// Default returns the detector over the built-in prefix table.
func Default() *Detector {
	return defaultDetector
}

// Detect runs the default detector.
func Detect(phone string) DetectionResult {
	return defaultDetector.Detect(phone)
}

// Detect strips spaces and hyphens from phone, then validates and classifies it.
func (d *Detector) Detect(phone string) DetectionResult {
	cleaned := stripDelimiters(phone)
	invalid := func(msg string) DetectionResult {
		return DetectionResult{PhoneNumber: cleaned, Operator: Unknown, ErrorMessage: msg}
	}

	if cleaned == "" {
		return invalid(errRequired)
	}
	if !isDigits(cleaned) {
		return invalid(errDigitsOnly)
	}
	if len(cleaned) != PhoneLength {
		return invalid(errLength)
	}
	if cleaned[0] != '0' {
		return invalid(errLeadingZero)
	}
	switch cleaned[1] {
	case '7', '8', '9':
	default:
		return invalid(errSecondDigit)
	}

	return DetectionResult{
		IsValid:     true,
		PhoneNumber: cleaned,
		Operator:    d.lookup(cleaned),
	}
}

// Valid reports whether phone passes the syntactic checks of Detect.
func (d *Detector) Valid(phone string) bool {
	return d.Detect(phone).IsValid
}

func (d *Detector) lookup(number string) Operator {
	for _, l := range d.lengths {
		if op, ok := d.table[number[:l]]; ok {
			return op
		}
	}
	return Unknown
}

func stripDelimiters(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
