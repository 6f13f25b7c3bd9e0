// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// LedgerPath points at the season-results ledger file to load at startup.
	LedgerPath string `koanf:"ledger_path"`

	// RoundingMode selects how point averages are rounded: half-up or ceil.
	RoundingMode string `koanf:"rounding_mode"`

	// RoundingDigits sets the fractional digits kept by point averages.
	RoundingDigits int32 `koanf:"rounding_digits"`

	// NameMatch selects the driver-name validation policy: any-case or canonical.
	NameMatch string `koanf:"name_match"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		LedgerPath:     "ledger.txt",
		RoundingMode:   "half-up",
		RoundingDigits: 2,
		NameMatch:      "any-case",
	}
}
