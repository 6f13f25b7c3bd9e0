package query

// RoundingMode selects how per-season point averages are rounded.
type RoundingMode string

// Supported rounding modes. Historical exports of the ledger tooling
// disagreed between half-up and ceiling, so the mode is configuration
// rather than a constant.
const (
	RoundHalfUp RoundingMode = "half-up"
	RoundCeil   RoundingMode = "ceil"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRounding sets the rounding mode and fractional digits used by
// AveragePointsPerSeason. Unknown modes and negative digit counts are
// ignored, keeping the defaults.
func WithRounding(mode RoundingMode, digits int32) Option {
	return func(e *Engine) {
		if mode == RoundHalfUp || mode == RoundCeil {
			e.mode = mode
		}
		if digits >= 0 {
			e.digits = digits
		}
	}
}
