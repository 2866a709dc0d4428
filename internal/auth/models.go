// Package auth verifies customer credentials against the provisioned store.
// Accounts are created out-of-band; there is no registration surface.
package auth

// Credential is a provisioned customer identity. HashedSecret is a
// self-describing bcrypt hash; it is immutable once issued (rotation writes a
// new hash) and must never be logged or serialized into a response.
type Credential struct {
	SubjectID     string `json:"id"`
	FullName      string `json:"fullName"`
	IDNumber      string `json:"-"`
	AccountNumber string `json:"-"`
	HashedSecret  string `json:"-"`
}

// LoginResult is the caller-visible outcome of a successful login. It carries
// only what the response needs; the credential itself stays inside the service.
type LoginResult struct {
	SubjectID string
	FullName  string
}
