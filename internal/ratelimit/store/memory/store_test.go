package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 5
	testWindow = time.Minute
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	clock time.Time
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.store = New(testLimit, testWindow, WithClock(func() time.Time { return s.clock }))
}

func (s *MemoryStoreSuite) TestFirstRequestAllowed() {
	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(d.Allowed)
	s.Equal(testLimit, d.Limit)
	s.Equal(testLimit-1, d.Remaining)
	s.Equal(s.clock.Add(testWindow), d.ResetAt)
}

func (s *MemoryStoreSuite) TestRequestOverCeilingDenied() {
	for i := 0; i < testLimit; i++ {
		d, err := s.store.Check(s.ctx, "10.0.0.1")
		s.Require().NoError(err)
		s.Require().True(d.Allowed)
	}

	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.False(d.Allowed)
	s.Equal(0, d.Remaining)
	s.Positive(d.RetryAfter)
}

func (s *MemoryStoreSuite) TestElapsedWindowResetsCount() {
	for i := 0; i < testLimit+1; i++ {
		_, err := s.store.Check(s.ctx, "10.0.0.1")
		s.Require().NoError(err)
	}

	s.clock = s.clock.Add(testWindow)

	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(d.Allowed)
	s.Equal(testLimit-1, d.Remaining)
	s.Equal(s.clock.Add(testWindow), d.ResetAt)
}

func (s *MemoryStoreSuite) TestKeysAreIndependent() {
	for i := 0; i < testLimit+1; i++ {
		_, err := s.store.Check(s.ctx, "10.0.0.1")
		s.Require().NoError(err)
	}

	d, err := s.store.Check(s.ctx, "10.0.0.2")
	s.Require().NoError(err)
	s.True(d.Allowed)
}

func (s *MemoryStoreSuite) TestConcurrentChecksAdmitExactlyLimit() {
	store := New(testLimit, testWindow)

	var wg sync.WaitGroup
	allowed := make(chan bool, testLimit*4)
	for i := 0; i < testLimit*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := store.Check(context.Background(), "10.0.0.1")
			if err == nil {
				allowed <- d.Allowed
			}
		}()
	}
	wg.Wait()
	close(allowed)

	admitted := 0
	for ok := range allowed {
		if ok {
			admitted++
		}
	}
	s.Equal(testLimit, admitted)
}

func (s *MemoryStoreSuite) TestSweepDropsIdleClients() {
	_, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)

	s.store.sweep(s.clock.Add(2*testWindow + time.Second))

	s.store.mu.Lock()
	_, exists := s.store.windows["10.0.0.1"]
	s.store.mu.Unlock()
	s.False(exists)
}

func (s *MemoryStoreSuite) TestSweepKeepsActiveClients() {
	_, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)

	s.store.sweep(s.clock.Add(testWindow))

	s.store.mu.Lock()
	_, exists := s.store.windows["10.0.0.1"]
	s.store.mu.Unlock()
	s.True(exists)
}
