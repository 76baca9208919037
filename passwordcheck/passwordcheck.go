// SPDX-License-Identifier: GPL-3.0-only

// Package passwordcheck vets the dashboard password before it is hashed into
// ADMIN_PASSWORD_HASH.
package passwordcheck

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"scratchcard-server/commons"
)

const (
	MinLength = 12

	defaultRangeURL = "https://api.pwnedpasswords.com/range/"
)

type rule struct {
	ok      func(rune) bool
	message string
}

var rules = []rule{
	{unicode.IsUpper, "password must contain at least one uppercase letter"},
	{unicode.IsLower, "password must contain at least one lowercase letter"},
	{unicode.IsDigit, "password must contain at least one digit"},
	{func(r rune) bool { return unicode.IsSymbol(r) || unicode.IsPunct(r) }, "password must contain at least one special character (e.g., !@#$%)"},
}

// Checker applies the composition rules and, when PwnedCheck is set, the Have I Been
// Pwned k-anonymity range lookup.
type Checker struct {
	PwnedCheck bool
	RangeURL   string
	Client     *http.Client
}

func NewChecker() *Checker {
	return &Checker{
		PwnedCheck: commons.GetEnv("PWNED_PASSWORDS_ENABLED", "true") == "true",
		RangeURL:   commons.GetEnv("PWNED_PASSWORDS_URL", defaultRangeURL),
		Client:     http.DefaultClient,
	}
}

// Validate returns the first rule password breaks. A failed breach lookup is
// logged and does not reject the password.
func (c *Checker) Validate(ctx context.Context, password string) error {
	if len([]rune(password)) < MinLength {
		return fmt.Errorf("password must be at least %d characters long", MinLength)
	}
	for _, r := range rules {
		if !strings.ContainsFunc(password, r.ok) {
			return errors.New(r.message)
		}
	}

	if c.PwnedCheck {
		pwned, err := c.pwned(ctx, password)
		if err != nil {
			commons.Logger.Warn("Error checking pwned passwords: ", err)
		}
		if pwned {
			return errors.New("password has been found in data breaches (pwned); choose a different one")
		}
	}
	return nil
}

func (c *Checker) pwned(ctx context.Context, password string) (bool, error) {
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := hash[:5], hash[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RangeURL+prefix, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("HIBP API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HIBP API returned %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		candidate, _, ok := strings.Cut(scanner.Text(), ":")
		if ok && strings.TrimSpace(candidate) == suffix {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read HIBP response: %w", err)
	}
	return false, nil
}
