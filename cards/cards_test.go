// SPDX-License-Identifier: GPL-3.0-only

package cards

import "testing"

func TestFormatSerialNumber(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"a":             "A",
		"ab":            "AB",
		"ab1":           "AB-1",
		"ab123456":      "AB-123456",
		"AB-123456":     "AB-123456",
		"a b_1 2/3456":  "AB-123456",
		"ab1234567890":  "AB-123456",
		"ab-12c4d6-xyz": "AB-12C4D6",
		"ñab123456":     "AB-123456",
		"ſb123456":      "B1-23456",
		"ıa123456":      "A1-23456",
	}
	for in, want := range cases {
		got := FormatSerialNumber(in)
		if got != want {
			t.Errorf("FormatSerialNumber(%q) = %q, want %q", in, got, want)
		}
		if len(got) > SerialNumberLength {
			t.Errorf("FormatSerialNumber(%q) longer than %d: %q", in, SerialNumberLength, got)
		}
		if again := FormatSerialNumber(got); again != got {
			t.Errorf("FormatSerialNumber not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestFormatCardCode(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"a1b":                   "A1B",
		"a1b2":                  "A1B-2",
		"a1b2c3d4e5f6a7b":       "A1B-2C3D-4E5F-6A7B",
		"A1B-2C3D-4E5F-6A7B":    "A1B-2C3D-4E5F-6A7B",
		"a1b 2c3d 4e5f 6a7b 99": "A1B-2C3D-4E5F-6A7B",
		"a1b2c3d4":              "A1B-2C3D-4",
		"--a1b--2c3d--":         "A1B-2C3D",
	}
	for in, want := range cases {
		got := FormatCardCode(in)
		if got != want {
			t.Errorf("FormatCardCode(%q) = %q, want %q", in, got, want)
		}
		if len(got) > CardCodeLength {
			t.Errorf("FormatCardCode(%q) longer than %d: %q", in, CardCodeLength, got)
		}
		if again := FormatCardCode(got); again != got {
			t.Errorf("FormatCardCode not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestValidateSerialNumber(t *testing.T) {
	valid := []string{"AB-123456", "ZZ-ABCDEF", "QX-0A1B2C"}
	invalid := []string{"", "AB123456", "ab-123456", "A1-123456", "AB-12345", "AB-1234567", "AB_123456", "AB-12345!"}

	for _, v := range valid {
		if !ValidateSerialNumber(v) {
			t.Errorf("ValidateSerialNumber(%q): expected true", v)
		}
	}
	for _, v := range invalid {
		if ValidateSerialNumber(v) {
			t.Errorf("ValidateSerialNumber(%q): expected false", v)
		}
	}

	if !ValidateSerialNumber(FormatSerialNumber("ab123456")) {
		t.Error("formatted lower-case serial should validate")
	}
}

func TestValidateCardCode(t *testing.T) {
	valid := []string{"A1B-2C3D-4E5F-6A7B", "000-0000-0000-0000", "XYZ-ABCD-EFGH-IJKL"}
	invalid := []string{"", "A1B2C3D4E5F6A7B", "a1b-2c3d-4e5f-6a7b", "A1B-2C3D-4E5F-6A7", "A1B-2C3D-4E5F-6A7B-", "A1B2-C3D-4E5F-6A7B"}

	for _, v := range valid {
		if !ValidateCardCode(v) {
			t.Errorf("ValidateCardCode(%q): expected true", v)
		}
	}
	for _, v := range invalid {
		if ValidateCardCode(v) {
			t.Errorf("ValidateCardCode(%q): expected false", v)
		}
	}

	if !ValidateCardCode(FormatCardCode("a1b2c3d4e5f6a7b")) {
		t.Error("formatted lower-case card code should validate")
	}
}
