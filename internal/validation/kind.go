// Package validation implements whitelist field validation for the protected
// surface. Every grammar is a positive whitelist: input that is not explicitly
// permitted is rejected, regardless of how harmless it looks.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies a semantic field type. Each kind carries its own grammar,
// normalization, and rejection message, so callers dispatch on the kind rather
// than on field-name strings.
type Kind int

const (
	// KindName covers person and recipient names: 2-100 code points of
	// Unicode letters, combining marks, separators, and digits.
	KindName Kind = iota
	// KindIDNumber is a national ID: exactly 13 ASCII digits.
	KindIDNumber
	// KindAccountNumber is a bank account number: 8-18 ASCII digits.
	KindAccountNumber
	// KindSWIFT is a SWIFT/BIC code: 8 or 11 uppercase alphanumerics.
	// Lowercase input is uppercased before matching.
	KindSWIFT
	// KindAmount is an unbounded monetary amount: 1-14 integer digits with an
	// optional 1-2 digit fraction. No sign, no thousands separators.
	KindAmount
	// KindBoundedAmount is the same decimal shape, additionally required to
	// parse into the open-closed range (0, 10000].
	KindBoundedAmount
	// KindCurrency is exact membership in the allowed currency whitelist.
	KindCurrency
	// KindMemo is a free-text reference: 0-150 alphanumerics, whitespace,
	// and punctuation. Empty is valid.
	KindMemo
	// KindUsername is 5-20 ASCII alphanumerics.
	KindUsername
	// KindPassword is the provisioning-time strength policy: 8+ characters
	// drawn from explicit classes, with at least one lowercase, one
	// uppercase, one digit, and one symbol.
	KindPassword
	// KindLoginSecret is presence-only: a login attempt must carry a
	// password, but verification happens against the stored hash, not
	// against the strength policy. Capped at 72 bytes, bcrypt's input limit.
	KindLoginSecret
)

var (
	namePattern          = regexp.MustCompile(`^[\p{L}\p{M}\p{Z}\p{N}]{2,100}$`)
	idNumberPattern      = regexp.MustCompile(`^[0-9]{13}$`)
	accountNumberPattern = regexp.MustCompile(`^[0-9]{8,18}$`)
	swiftPattern         = regexp.MustCompile(`^[A-Z0-9]{8}(?:[A-Z0-9]{3})?$`)
	amountPattern        = regexp.MustCompile(`^[0-9]{1,14}(?:\.[0-9]{1,2})?$`)
	memoPattern          = regexp.MustCompile(`^[a-zA-Z0-9\s\p{P}]{0,150}$`)
	usernamePattern      = regexp.MustCompile(`^[a-zA-Z0-9]{5,20}$`)
)

// allowedCurrencies is the complete whitelist; anything else is rejected.
var allowedCurrencies = map[string]bool{
	"ZAR": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
}

const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

const maxSecretBytes = 72

// Matches reports whether raw satisfies the kind's grammar. It assumes the
// caller already applied Normalize; it performs no normalization itself.
func (k Kind) Matches(raw string) bool {
	switch k {
	case KindName:
		return namePattern.MatchString(raw)
	case KindIDNumber:
		return idNumberPattern.MatchString(raw)
	case KindAccountNumber:
		return accountNumberPattern.MatchString(raw)
	case KindSWIFT:
		return swiftPattern.MatchString(raw)
	case KindAmount:
		return amountPattern.MatchString(raw)
	case KindBoundedAmount:
		if !amountPattern.MatchString(raw) {
			return false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		return v > 0 && v <= 10000
	case KindCurrency:
		return allowedCurrencies[raw]
	case KindMemo:
		return memoPattern.MatchString(raw)
	case KindUsername:
		return usernamePattern.MatchString(raw)
	case KindPassword:
		return strongPassword(raw)
	case KindLoginSecret:
		return raw != "" && len(raw) <= maxSecretBytes
	}
	return false
}

// Normalize applies the kind's canonical form before matching. Only SWIFT
// codes are transformed; every other kind is matched as provided.
func (k Kind) Normalize(raw string) string {
	if k == KindSWIFT {
		return strings.ToUpper(raw)
	}
	return raw
}

// Message is the single caller-facing rejection message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindName:
		return "must be 2-100 characters and contain only letters, numbers, and spaces"
	case KindIDNumber:
		return "must be exactly 13 digits"
	case KindAccountNumber:
		return "must be between 8 and 18 digits with no spaces or special characters"
	case KindSWIFT:
		return "must be 8 or 11 uppercase alphanumeric characters"
	case KindAmount:
		return "must be a valid amount with up to 2 decimal places (e.g. 1234.56)"
	case KindBoundedAmount:
		return "must be an amount between 0.01 and 10000.00"
	case KindCurrency:
		return "must be one of: ZAR, USD, EUR, GBP"
	case KindMemo:
		return "must be 0-150 characters of letters, numbers, whitespace, and basic punctuation"
	case KindUsername:
		return "must be alphanumeric and between 5-20 characters"
	case KindPassword:
		return "needs 8+ characters with 1 uppercase, 1 lowercase, 1 number, and 1 symbol"
	case KindLoginSecret:
		return "is required"
	}
	return "is not valid"
}

// strongPassword enforces the provisioning strength policy. Characters outside
// the four explicit classes fail the check outright; this stays a whitelist
// rather than a minimum-entropy heuristic.
func strongPassword(raw string) bool {
	if len(raw) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
