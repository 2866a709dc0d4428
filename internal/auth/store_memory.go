package auth

import "context"

// MemoryStore is an immutable in-memory credential store. The map is built at
// construction and only read afterwards, so concurrent lookups need no lock.
type MemoryStore struct {
	byIDNumber map[string]Credential
}

// NewMemoryStore builds a store from the given credentials.
func NewMemoryStore(creds ...Credential) *MemoryStore {
	m := make(map[string]Credential, len(creds))
	for _, c := range creds {
		m[c.IDNumber] = c
	}
	return &MemoryStore{byIDNumber: m}
}

// SeededStore returns the demo accounts used when no database is configured.
// Secrets are stored as bcrypt hashes only.
func SeededStore() *MemoryStore {
	return NewMemoryStore(
		Credential{
			SubjectID:     "1",
			FullName:      "John Doe",
			IDNumber:      "9001015009087",
			AccountNumber: "1234567890",
			HashedSecret:  "$2b$12$7SkAcG5NroTqFUb4YfmRmu0Pnd90T5jdm7fZbkh6icJ2RPHE9aHYC",
		},
		Credential{
			SubjectID:     "2",
			FullName:      "Jane Smith",
			IDNumber:      "8505125432109",
			AccountNumber: "2345678901",
			HashedSecret:  "$2b$12$Xdefbkyv6eKxVEG1jfgM..XFN67neuYpwFgFFvoplXE3H1RRSf3fm",
		},
		Credential{
			SubjectID:     "3",
			FullName:      "Alice Johnson",
			IDNumber:      "9208304567123",
			AccountNumber: "3456789012",
			HashedSecret:  "$2b$12$akcXukjv1mViLTyZOvl7FOEjpMxgwo1jPN8ADJArGq0cpHsGBQ0/O",
		},
	)
}

// FindByIDNumber implements CredentialStore.
func (s *MemoryStore) FindByIDNumber(ctx context.Context, idNumber string) (*Credential, error) {
	c, ok := s.byIDNumber[idNumber]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}
