package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassphrase hashes a plaintext passphrase with the configured cost.
func HashPassphrase(passphrase string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassphrase checks a candidate against the configured region secret.
// The secret may be a bcrypt hash or, for locally managed deployments, the
// plaintext itself; plaintext comparison is constant-time.
func VerifyPassphrase(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}
