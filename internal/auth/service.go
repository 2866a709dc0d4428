package auth

import (
	"context"
	"errors"
	"log/slog"

	"payguard/internal/auth/metrics"
	"payguard/internal/credential"
	dErrors "payguard/pkg/domain-errors"
)

// ErrInvalidCredentials is returned when the identity exists but the secret
// fails verification. Kept distinct from ErrNotFound so transport can map 401
// vs 404, but neither message reveals stored fields.
var ErrInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")

// Service performs the credential check. It treats the store as read-only and
// never logs or returns the secret or the stored hash.
type Service struct {
	store    CredentialStore
	verifier *credential.Verifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

// WithMetrics attaches login counters. Optional so tests can run without the
// default prometheus registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store CredentialStore, verifier *credential.Verifier, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, verifier: verifier, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies the secret for the identity behind idNumber. Field shapes
// are the caller's concern; this only decides unknown identity vs bad secret.
// The bcrypt comparison costs tens of milliseconds per call, so callers must
// not hold latency-sensitive locks across it.
func (s *Service) Login(ctx context.Context, idNumber, secret string) (*LoginResult, error) {
	cred, err := s.store.FindByIDNumber(ctx, idNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.failure("unknown_identity")
			return nil, ErrNotFound
		}
		s.failure("store_error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "credential lookup failed")
	}

	if !s.verifier.Verify(secret, cred.HashedSecret) {
		s.failure("bad_secret")
		s.logger.Warn("login rejected", "subject_id", cred.SubjectID)
		return nil, ErrInvalidCredentials
	}

	if s.metrics != nil {
		s.metrics.IncrementSuccess()
	}
	s.logger.Info("login succeeded", "subject_id", cred.SubjectID)
	return &LoginResult{SubjectID: cred.SubjectID, FullName: cred.FullName}, nil
}

func (s *Service) failure(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementFailure(reason)
	}
}
