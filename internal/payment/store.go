package payment

import "context"

// TransactionStore is the append-only port to wherever transactions live.
// This core never updates or deletes what it has appended.
type TransactionStore interface {
	Append(ctx context.Context, tx Transaction) error
}
