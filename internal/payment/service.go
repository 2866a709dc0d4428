package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"payguard/internal/validation"
	dErrors "payguard/pkg/domain-errors"
)

// Service turns a validated, normalized payment record into a Pending
// transaction and appends it to the store.
type Service struct {
	store  TransactionStore
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store TransactionStore, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit builds the Pending transaction from normalized fields and appends it.
// Field validation has already happened; Submit trusts its input record to be
// the engine's normalized output, never the raw request.
func (s *Service) Submit(ctx context.Context, fields map[string]string) (*Transaction, error) {
	tx := Transaction{
		ID:            uuid.NewString(),
		RecipientName: fields["recipientName"],
		PayeeAccount:  fields["payeeAccountNumber"],
		SwiftCode:     fields["swiftCode"],
		Amount:        fields["amount"],
		Currency:      fields["currency"],
		Memo:          fields["memo"],
		Status:        StatusPending,
		SubmittedAt:   s.now().UTC(),
	}

	if err := s.store.Append(ctx, tx); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not record transaction")
	}

	s.logger.Info("payment accepted",
		"transaction_id", tx.ID,
		"currency", tx.Currency,
		"amount", tx.Amount,
	)
	return &tx, nil
}

// Rules exposes the canonical payment rule set so the handler and the service
// agree on exactly which fields exist.
func Rules() validation.RuleSet {
	return validation.PaymentRules()
}
