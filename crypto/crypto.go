// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"

	"scratchcard-server/commons"
)

func NewCrypto() *Crypto {
	return &Crypto{
		ArgonTime:    uint32(commons.GetEnvInt("ARGON2_TIME", 1)),
		ArgonMemory:  uint32(commons.GetEnvInt("ARGON2_MEMORY", 65536)),
		ArgonThreads: uint8(commons.GetEnvInt("ARGON2_THREADS", 2)),
		ArgonKeyLen:  uint32(commons.GetEnvInt("ARGON2_KEYLEN", 32)),
		ArgonSaltLen: uint32(commons.GetEnvInt("ARGON2_SALTLEN", 16)),
	}
}

func (c *Crypto) params() *argon2id.Params {
	return &argon2id.Params{
		Memory:      c.ArgonMemory,
		Iterations:  c.ArgonTime,
		Parallelism: c.ArgonThreads,
		SaltLength:  c.ArgonSaltLen,
		KeyLength:   c.ArgonKeyLen,
	}
}

// Hash returns an encoded argon2id hash of secret. Used for the admin password and
// for identity numbers (BVN, NIN) that must never be stored in clear.
func (c *Crypto) Hash(secret string) (string, error) {
	commons.Logger.Debug("Hashing secret")
	hash, err := argon2id.CreateHash(secret, c.params())
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Crypto) Verify(secret, encodedHash string) error {
	commons.Logger.Debug("Verifying secret")
	match, err := argon2id.ComparePasswordAndHash(secret, encodedHash)
	if err != nil {
		return err
	}
	if !match {
		return fmt.Errorf("secret verification failed")
	}
	return nil
}

// randomHex returns n random bytes hex encoded.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateReference returns an upper-case reference such as ORD-9F3A1C2B7E4D.
func GenerateReference(prefix string) (string, error) {
	s, err := randomHex(6)
	if err != nil {
		return "", err
	}
	return prefix + "-" + strings.ToUpper(s), nil
}
