// Package credential performs one-way password hashing and verification.
// Plaintext secrets never leave this package's call frames and are never logged.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for newly issued hashes. 12 keeps a
// single verification in the tens of milliseconds on current hardware, which
// is the point: brute force has to pay it too.
const DefaultCost = 12

// Verifier hashes and verifies secrets with a configurable bcrypt cost.
// The zero value is not usable; construct with New.
type Verifier struct {
	cost int
}

// New returns a Verifier with the given cost. Costs outside bcrypt's accepted
// range fall back to DefaultCost.
func New(cost int) *Verifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Verifier{cost: cost}
}

// Hash produces a self-describing bcrypt hash of secret. Each call draws a
// fresh random salt, so hashing the same secret twice yields different output.
func (v *Verifier) Hash(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored hash. It returns false for
// empty secrets, malformed stored hashes, and mismatches alike; none of those
// are errors the caller can act on differently. The digest comparison inside
// bcrypt is constant-time.
func (v *Verifier) Verify(secret, storedHash string) bool {
	if secret == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
