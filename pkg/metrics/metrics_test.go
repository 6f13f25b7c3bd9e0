package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/podium/pkg/metrics"
)

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording through every helper", func() {
			Convey("Then no helper panics", func() {
				So(func() {
					metrics.UpdateLedgerSeasons(3)
					metrics.UpdateLedgerEntries(42)
					metrics.UpdateLedgerDrivers(12)
					metrics.RecordParseDuration(1.5)
					metrics.RecordParseFailure()
					metrics.RecordLedgerLoaded(time.Now())
					metrics.RecordQuery("season_winners")
					metrics.RecordValidationFailure("name")
					metrics.RecordHTTPRequest("winners", "GET", "200")
					metrics.RecordHTTPRequestDuration("winners", "GET", "200", 2.5)
					metrics.UpdateSystemMemoryUsage(1024)
					metrics.UpdateSystemGoroutineCount(8)
				}, ShouldNotPanic)
			})
		})

		Convey("When asking for the registry", func() {
			Convey("Then the custom registry is returned", func() {
				So(metrics.GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When building a manager with options", func() {
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(registry),
				metrics.WithNamespace("test"),
				metrics.WithSubsystem("unit"),
				metrics.WithHistogramBuckets([]float64{1, 5, 10}),
				metrics.WithMetricsEnabled(true),
				metrics.WithRefreshInterval(time.Second),
			)

			Convey("Then the manager registers its metrics there", func() {
				So(m, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
