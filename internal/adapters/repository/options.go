// Package repository defines the read-only ledger store interface.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMetricsPublish controls whether the store publishes ledger size
// gauges at construction time. Enabled by default; tests turn it off.
func WithMetricsPublish(enabled bool) Option {
	return func(s *MemStore) {
		s.publishMetrics = enabled
	}
}
