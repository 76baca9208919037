// SPDX-License-Identifier: GPL-3.0-only

package network

import "testing"

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"0803":              "0803",
		"0803 123 4567":     "08031234567",
		"0803-123-4567":     "08031234567",
		"(0803) 123-4567 x": "08031234567",
		"080312345678999":   "08031234567",
		"abc":               "",
	}
	for in, want := range cases {
		got := FormatPhone(in)
		if got != want {
			t.Errorf("FormatPhone(%q) = %q, want %q", in, got, want)
		}
		if again := FormatPhone(got); again != got {
			t.Errorf("FormatPhone not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestDisplayPhone(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"080":             "080",
		"08031":           "0803-1",
		"0803123":         "0803-123",
		"08031234":        "0803-123-4",
		"08031234567":     "0803-123-4567",
		"0803 1234 56789": "0803-123-4567",
	}
	for in, want := range cases {
		got := DisplayPhone(in)
		if got != want {
			t.Errorf("DisplayPhone(%q) = %q, want %q", in, got, want)
		}
		if again := DisplayPhone(got); again != got {
			t.Errorf("DisplayPhone not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestDisplayPhoneFeedsDetect(t *testing.T) {
	res := Detect(DisplayPhone("08031234567"))
	if !res.IsValid || res.Operator != MTN {
		t.Errorf("expected displayed number to detect as valid MTN, got %+v", res)
	}
}

func TestInternational(t *testing.T) {
	got, err := International("0803 123 4567")
	if err != nil {
		t.Fatalf("International failed: %v", err)
	}
	if got != "+2348031234567" {
		t.Errorf("expected +2348031234567, got %s", got)
	}

	if _, err := International("12345"); err == nil {
		t.Error("expected error for invalid number")
	}
}
