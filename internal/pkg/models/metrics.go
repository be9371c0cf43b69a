package models

import "time"

type MetricTotals struct {
	Today  int64 `bson:"today" json:"today"`
	Last7d int64 `bson:"last7d" json:"last7d"`
}

// RiskMix always carries all five buckets. Bands that are absent or not one
// of the recognized values are counted under Unknown.
type RiskMix struct {
	Low      int64 `bson:"low" json:"low"`
	Medium   int64 `bson:"medium" json:"medium"`
	High     int64 `bson:"high" json:"high"`
	VeryHigh int64 `bson:"very-high" json:"very-high"`
	Unknown  int64 `bson:"unknown" json:"unknown"`
}

// LatencyPercentiles values are nil when the window holds no latency
// samples; JSON renders them as null rather than zero.
type LatencyPercentiles struct {
	P50 *int64 `bson:"p50" json:"p50"`
	P95 *int64 `bson:"p95" json:"p95"`
}

type MetricsSnapshot struct {
	Totals      MetricTotals       `json:"totals"`
	Risk        RiskMix            `json:"risk"`
	ScoringRate int                `json:"scoringRate"`
	Latency     LatencyPercentiles `json:"latency"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// RiskBandCount is one bucket of the decision.band group aggregation.
type RiskBandCount struct {
	Band  string `bson:"_id"`
	Count int64  `bson:"c"`
}
