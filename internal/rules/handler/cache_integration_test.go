//go:build integration

package handler

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	platformredis "complyd/internal/platform/redis"
	"complyd/internal/rules"
	"complyd/pkg/testutil/containers"
)

type CacheIntegrationSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *Cache
}

func TestCacheIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CacheIntegrationSuite))
}

func (s *CacheIntegrationSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	client := &platformredis.Client{Client: s.redis.Client}
	s.cache = NewCache(client, time.Minute, slog.New(slog.DiscardHandler))
}

func (s *CacheIntegrationSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.T().Context()))
}

func (s *CacheIntegrationSuite) TestSetThenGet() {
	ctx := s.T().Context()
	key := cacheKey("content under review", []string{"gdpr"})
	resp := CheckResponse{
		Score:         85,
		OverallStatus: rules.StatusNeedsReview,
		Results: map[string]FrameworkResult{
			"gdpr": {Score: 85, Findings: []rules.Finding{}},
		},
		Summary: rules.Summary{Total: 5, NeedsReview: 5},
	}

	s.cache.Set(ctx, key, resp)

	got, hit := s.cache.Get(ctx, key)
	s.Require().True(hit)
	s.Equal(resp, got)
}

func (s *CacheIntegrationSuite) TestMissOnUnknownKey() {
	_, hit := s.cache.Get(s.T().Context(), cacheKey("never stored", []string{"aml"}))
	s.False(hit)
}

func (s *CacheIntegrationSuite) TestUndecodableEntryIsAMiss() {
	ctx := s.T().Context()
	key := cacheKey("poisoned", []string{"gdpr"})
	s.Require().NoError(s.redis.Client.Set(ctx, key, "not json", time.Minute).Err())

	_, hit := s.cache.Get(ctx, key)
	s.False(hit)
}
