// SPDX-License-Identifier: GPL-3.0-only

// Command adminhash checks a dashboard password and prints the ADMIN_PASSWORD_HASH
// line for it. The password is read from the first line of standard input.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"scratchcard-server/commons"
	"scratchcard-server/crypto"
	"scratchcard-server/passwordcheck"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	skipCheck := flag.Bool("skip-check", false, "Hash the password without vetting it")
	flag.String("env-file", "", "Environment file to load")
	flag.Parse()

	fmt.Fprint(os.Stderr, "Dashboard password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		commons.Logger.Fatalf("Failed to read password: %v", err)
	}
	password := strings.TrimRight(line, "\r\n")

	if !*skipCheck {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := passwordcheck.NewChecker().Validate(ctx, password); err != nil {
			commons.Logger.Fatalf("Password rejected: %v", err)
		}
	}

	hash, err := crypto.NewCrypto().Hash(password)
	if err != nil {
		commons.Logger.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
