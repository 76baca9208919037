// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"
	"path/filepath"
	"testing"

	"scratchcard-server/network"
)

func TestInitNetworkDetectorWithoutOverwrite(t *testing.T) {
	t.Setenv("NG_PREFIX_OVERWRITE", filepath.Join(t.TempDir(), "missing.json"))

	d := InitNetworkDetector()
	if op := d.Detect("07011111111").Operator; op != network.Unknown {
		t.Errorf("Expected Unknown, got %s", op)
	}
}

func TestInitNetworkDetectorAppliesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.json")
	if err := os.WriteFile(path, []byte(`{"prefixes":[{"prefix":"0701","operator":"Airtel"}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NG_PREFIX_OVERWRITE", path)

	d := InitNetworkDetector()
	if op := d.Detect("07011111111").Operator; op != network.Airtel {
		t.Errorf("Expected Airtel, got %s", op)
	}
}

func TestInitNetworkDetectorIgnoresBrokenOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.json")
	if err := os.WriteFile(path, []byte(`{"prefixes":`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NG_PREFIX_OVERWRITE", path)

	d := InitNetworkDetector()
	if op := d.Detect("08031234567").Operator; op != network.MTN {
		t.Errorf("Expected MTN, got %s", op)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SCRATCHCARD_TEST_KEY", "")
	if v := GetEnv("SCRATCHCARD_TEST_KEY", "fallback"); v != "fallback" {
		t.Errorf("Expected fallback, got %q", v)
	}
	t.Setenv("SCRATCHCARD_TEST_KEY", "set")
	if v := GetEnv("SCRATCHCARD_TEST_KEY", "fallback"); v != "set" {
		t.Errorf("Expected set, got %q", v)
	}
	t.Setenv("SCRATCHCARD_TEST_INT", "x")
	if v := GetEnvInt("SCRATCHCARD_TEST_INT", 7); v != 7 {
		t.Errorf("Expected 7, got %d", v)
	}
}
