package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword checks a plaintext password against a stored hash whose
// format is not known in advance. The store carries hashes from several
// seeding generations, so the rules are tried in order and the first
// applicable one decides:
//
//  1. bcrypt ($2a$/$2b$/$2y$ prefix) — salt embedded in the hash
//  2. legacy hex-encoded SHA-256 (exactly 64 hex chars)
//  3. raw equality with the stored value
//
// Rule 3 exists only for plaintext development seed data and is insecure;
// it must never decide for production accounts.
//
// VerifyPassword never fails: any internal error counts as "does not match".
func VerifyPassword(plain, hashed string) bool {
	if hashed == "" {
		return false
	}

	if isBcryptHash(hashed) {
		err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
		switch {
		case err == nil:
			return true
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			// A well-formed bcrypt hash decides: a mismatch must not
			// reach the legacy rules, or the stored hash string itself
			// would pass via raw equality.
			return false
		}
		// A malformed bcrypt hash falls through to the legacy rules,
		// matching how historical deployments behaved.
	}

	if isHexDigest(hashed) {
		sum := sha256.Sum256([]byte(plain))
		return strings.EqualFold(hex.EncodeToString(sum[:]), hashed)
	}

	return plain == hashed
}

// HashPassword produces a bcrypt hash for new or re-seeded accounts.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}

func isHexDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
