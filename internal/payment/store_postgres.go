package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore appends transactions to PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed transaction store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Append implements TransactionStore.
func (s *PostgresStore) Append(ctx context.Context, tx Transaction) error {
	const query = `
		INSERT INTO transactions
			(id, recipient_name, payee_account, swift_code, amount, currency, memo, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.pool.Exec(ctx, query,
		tx.ID,
		tx.RecipientName,
		tx.PayeeAccount,
		tx.SwiftCode,
		tx.Amount,
		tx.Currency,
		tx.Memo,
		tx.Status,
		tx.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}
