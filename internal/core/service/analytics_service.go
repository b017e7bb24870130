package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargotrack/cargo-api/internal/api/metrics"
	"github.com/cargotrack/cargo-api/internal/core/domain"
	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// expiringWindow is how far ahead a validity date counts as "expiring soon".
const expiringWindow = 30 * 24 * time.Hour

// AnalyticsService computes aggregate product statistics with a short-lived
// cache in front. Cache failures degrade to a direct recompute; they never
// fail the request.
type AnalyticsService struct {
	repo   ports.ProductRepository
	cache  ports.StatsCache
	logger zerolog.Logger
}

func NewAnalyticsService(repo ports.ProductRepository, cache ports.StatsCache, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, logger: logger}
}

// Snapshot returns the current aggregate view of the product collection.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*ports.ProductStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeStats(products, time.Now().UTC())
	metrics.StatsCacheTotal.WithLabelValues("miss").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, nil
}

// computeStats aggregates over the full collection. Validity strings that do
// not parse as 2006-01-02 dates are left out of the expiry counts.
func computeStats(products []*domain.Product, now time.Time) *ports.ProductStats {
	stats := &ports.ProductStats{
		Total:       len(products),
		ByType:      make(map[string]int),
		GeneratedAt: now,
	}

	today := now.Truncate(24 * time.Hour)
	for _, p := range products {
		stats.ByType[p.ProductType]++

		if p.Validity == "" {
			continue
		}
		validity, err := time.Parse("2006-01-02", p.Validity)
		if err != nil {
			continue
		}
		switch {
		case validity.Before(today):
			stats.Expired++
		case validity.Before(today.Add(expiringWindow)):
			stats.ExpiringSoon++
		}
	}

	return stats
}
