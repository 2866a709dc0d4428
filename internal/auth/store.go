package auth

import (
	"context"

	dErrors "payguard/pkg/domain-errors"
)

// ErrNotFound keeps unknown-identity lookups consistent across store
// implementations. The message deliberately does not reveal which stored
// fields exist.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "user not found")

// CredentialStore is the read-only port to wherever credentials live. The
// service never mutates a stored credential.
type CredentialStore interface {
	FindByIDNumber(ctx context.Context, idNumber string) (*Credential, error)
}
