package ports

import (
	"context"
	"time"
)

// ProductStats is an aggregate snapshot over the whole product collection.
// Expiry counts come from parsing each record's validity as a 2006-01-02
// date; records with an empty or unparseable validity are excluded.
type ProductStats struct {
	Total        int            `json:"total"`
	ByType       map[string]int `json:"byType"`
	Expired      int            `json:"expired"`
	ExpiringSoon int            `json:"expiringSoon"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// StatsCache holds a short-lived snapshot so repeated dashboard refreshes do
// not rescan the collection. A nil snapshot with a nil error is a cache miss.
type StatsCache interface {
	Get(ctx context.Context) (*ProductStats, error)
	Set(ctx context.Context, stats *ProductStats) error
}

// AnalyticsService computes the product aggregate snapshot.
type AnalyticsService interface {
	Snapshot(ctx context.Context) (*ProductStats, error)
}
