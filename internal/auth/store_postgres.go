package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads credentials from PostgreSQL. Pure I/O; unknown-identity
// handling stays aligned with the memory store via ErrNotFound.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed credential store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByIDNumber implements CredentialStore.
func (s *PostgresStore) FindByIDNumber(ctx context.Context, idNumber string) (*Credential, error) {
	const query = `
		SELECT subject_id, full_name, id_number, account_number, secret_hash
		FROM credentials
		WHERE id_number = $1
	`
	var c Credential
	err := s.pool.QueryRow(ctx, query, idNumber).Scan(
		&c.SubjectID,
		&c.FullName,
		&c.IDNumber,
		&c.AccountNumber,
		&c.HashedSecret,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &c, nil
}
