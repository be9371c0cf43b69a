package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

type MetricsService struct {
	applicationRepo MetricsReader
	cache           SnapshotCache
}

// NewMetricsService builds the aggregation service. cache may be nil, in
// which case every call recomputes from the store.
func NewMetricsService(applicationRepo MetricsReader, cache SnapshotCache) *MetricsService {
	return &MetricsService{
		applicationRepo: applicationRepo,
		cache:           cache,
	}
}

// Snapshot computes the operational metrics over today and the trailing
// seven days. The only failure path is the data layer.
func (s *MetricsService) Snapshot(ctx context.Context, now time.Time) (*models.MetricsSnapshot, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)

	todayCount, err := s.applicationRepo.CountCreatedSince(ctx, startOfToday)
	if err != nil {
		logger.Error(ctx, "metrics : counting today's records failed: %v", err)
		return nil, consts.ErrorMetricsAggregationFailed
	}

	last7dCount, err := s.applicationRepo.CountCreatedSince(ctx, sevenDaysAgo)
	if err != nil {
		logger.Error(ctx, "metrics : counting 7-day records failed: %v", err)
		return nil, consts.ErrorMetricsAggregationFailed
	}

	bandCounts, err := s.applicationRepo.RiskBandCountsSince(ctx, sevenDaysAgo)
	if err != nil {
		logger.Error(ctx, "metrics : risk band aggregation failed: %v", err)
		return nil, consts.ErrorMetricsAggregationFailed
	}
	risk := bucketRiskBands(bandCounts)

	scoredCount, err := s.applicationRepo.CountScoredSince(ctx, sevenDaysAgo)
	if err != nil {
		logger.Error(ctx, "metrics : counting scored records failed: %v", err)
		return nil, consts.ErrorMetricsAggregationFailed
	}
	scoringRate := 0
	if last7dCount > 0 {
		scoringRate = int(math.Round(float64(scoredCount) / float64(last7dCount) * 100))
	}

	latencies, err := s.applicationRepo.ScoreLatenciesSince(ctx, sevenDaysAgo)
	if err != nil {
		logger.Error(ctx, "metrics : loading score latencies failed: %v", err)
		return nil, consts.ErrorMetricsAggregationFailed
	}

	snapshot := &models.MetricsSnapshot{
		Totals:      models.MetricTotals{Today: todayCount, Last7d: last7dCount},
		Risk:        risk,
		ScoringRate: scoringRate,
		Latency: models.LatencyPercentiles{
			P50: Percentile(latencies, 50),
			P95: Percentile(latencies, 95),
		},
		GeneratedAt: now.UTC(),
	}

	if s.cache != nil {
		s.cache.Set(ctx, *snapshot)
	}

	return snapshot, nil
}

// bucketRiskBands folds the group-by-band counts into the five fixed
// buckets. Absent bands and free-form values land in unknown; a free-form
// value that happens to equal a known band is counted under that band (no
// schema enforcement at write time).
func bucketRiskBands(counts []models.RiskBandCount) models.RiskMix {
	var mix models.RiskMix
	for _, c := range counts {
		switch c.Band {
		case consts.BandLow:
			mix.Low += c.Count
		case consts.BandMedium:
			mix.Medium += c.Count
		case consts.BandHigh:
			mix.High += c.Count
		case consts.BandVeryHigh:
			mix.VeryHigh += c.Count
		default:
			mix.Unknown += c.Count
		}
	}
	return mix
}

// Percentile picks the value at index floor(p/100*(n-1)), clamped to the
// valid range, from the ascending-sorted samples. Nil when there are none.
func Percentile(values []int64, p float64) *int64 {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(math.Floor(p / 100 * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}

	v := sorted[idx]
	return &v
}
