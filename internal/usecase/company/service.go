// Package company serves the public, cacheable company lookups.
package company

import (
	"context"
	"errors"
	"time"

	"pcd-jobs/internal/domain/company"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/usecase"

	"github.com/google/uuid"
)

type Service struct {
	companies company.Repository
	cache     usecase.Cache
	ttl       time.Duration
	logger    logging.Logger
	metrics   *metrics.Metrics
}

func NewService(companies company.Repository, cache usecase.Cache, ttl time.Duration, logger logging.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{companies: companies, cache: cache, ttl: ttl, logger: logger.With("component", "company"), metrics: m}
}

// PublicProfile returns {id, companyName}, read through the cache.
func (s *Service) PublicProfile(ctx context.Context, id uuid.UUID) (company.PublicProfile, error) {
	key := usecase.CompanyPublicCacheKey(id)

	var cached company.PublicProfile
	if s.get(ctx, "companies_public", key, &cached) {
		return cached, nil
	}

	p, err := s.companies.GetPublicProfile(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.PublicProfile{}, usecase.ErrNotFound
		}
		s.logger.Error(ctx, "public profile read failed", "company_id", id, "err", err)
		return company.PublicProfile{}, usecase.Storage("get public profile", err)
	}

	s.set(ctx, key, p)
	return p, nil
}

// Search lists companies with at least one job whose name contains term.
func (s *Service) Search(ctx context.Context, term string) ([]company.PublicProfile, error) {
	key := usecase.CompanySearchCacheKey(term)

	var cached []company.PublicProfile
	if s.get(ctx, "companies_search", key, &cached) && cached != nil {
		return cached, nil
	}

	out, err := s.companies.SearchWithJobs(ctx, term)
	if err != nil {
		s.logger.Error(ctx, "company search failed", "err", err)
		return nil, usecase.Storage("search companies", err)
	}
	if out == nil {
		out = []company.PublicProfile{}
	}

	s.set(ctx, key, out)
	return out, nil
}

// get treats any cache error as a miss.
func (s *Service) get(ctx context.Context, name, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.logger.Warn(ctx, "cache read failed", "key", key, "err", err)
		hit = false
	}
	s.metrics.Cache(name, hit)
	return hit
}

func (s *Service) set(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.ttl); err != nil {
		s.logger.Warn(ctx, "cache write failed", "key", key, "err", err)
	}
}
