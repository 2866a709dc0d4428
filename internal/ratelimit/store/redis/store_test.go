package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 5
	testWindow = time.Minute
)

type RedisStoreSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *goredis.Client
	store  *Store
	ctx    context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.mini = miniredis.RunT(s.T())
	s.client = goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.store = New(s.client, testLimit, testWindow)
}

func (s *RedisStoreSuite) TestFirstRequestAllowed() {
	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(d.Allowed)
	s.Equal(testLimit, d.Limit)
	s.Equal(testLimit-1, d.Remaining)
}

func (s *RedisStoreSuite) TestRequestOverCeilingDenied() {
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

func (s *RedisStoreSuite) TestWindowExpiryResetsCount() {
	for i := 0; i < testLimit+1; i++ {
		_, err := s.store.Check(s.ctx, "10.0.0.1")
		s.Require().NoError(err)
	}

	s.mini.FastForward(testWindow + time.Second)

	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(d.Allowed)
	s.Equal(testLimit-1, d.Remaining)
}

func (s *RedisStoreSuite) TestKeysAreIndependent() {
	for i := 0; i < testLimit+1; i++ {
		_, err := s.store.Check(s.ctx, "10.0.0.1")
		s.Require().NoError(err)
	}

	d, err := s.store.Check(s.ctx, "10.0.0.2")
	s.Require().NoError(err)
	s.True(d.Allowed)
}

func (s *RedisStoreSuite) TestCounterWithoutExpiryIsRearmed() {
	_, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)

	// Simulate a crash between INCR and EXPIRE.
	s.Require().NoError(s.client.Persist(s.ctx, keyPrefix+"10.0.0.1").Err())

	d, err := s.store.Check(s.ctx, "10.0.0.1")
	s.Require().NoError(err)
	s.True(d.Allowed)
	s.Greater(s.mini.TTL(keyPrefix+"10.0.0.1"), time.Duration(0))
}
