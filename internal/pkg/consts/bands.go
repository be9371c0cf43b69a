package consts

// Recognized risk bands. decision.band is not validated against this set at
// write time; the metrics aggregation folds everything else into "unknown".
const (
	BandLow      = "low"
	BandMedium   = "medium"
	BandHigh     = "high"
	BandVeryHigh = "very-high"
	BandUnknown  = "unknown"
)
