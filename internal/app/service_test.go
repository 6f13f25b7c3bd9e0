package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/query"
	"github.com/okian/podium/internal/domain/validate"
	"github.com/okian/podium/pkg/logger"
)

const fixture = `2022, Max Verstappen: 454 15, Charles Leclerc: 308 3
2023, Max Verstappen: 575 19, Sergio Perez: 285 2
2023, Lewis Hamilton: 234 1
`

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write ledger: %v", err)
	}
	return path
}

func newLoaded(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc := service.New(opts...)
	if err := svc.Load(context.Background(), writeLedger(t, fixture)); err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	return svc
}

func TestServiceLoad(t *testing.T) {
	Convey("Given a service over a valid ledger file", t, func() {
		svc := newLoaded(t)
		ctx := context.Background()

		Convey("When querying season winners", func() {
			winners := svc.SeasonWinners(ctx)

			Convey("Then the loaded ledger answers", func() {
				So(winners[2023].Name, ShouldEqual, "Max Verstappen")
			})
		})

		Convey("When querying total wins", func() {
			totals := svc.TotalWinsPerSeason(ctx)

			Convey("Then the repeated-season line was merged", func() {
				So(totals[2023], ShouldEqual, 22)
			})
		})

		Convey("When asking for stats", func() {
			stats := svc.GetStats()

			Convey("Then ledger shape and configuration are reported", func() {
				So(stats["seasonCount"], ShouldEqual, 2)
				So(stats["entryCount"], ShouldEqual, 5)
				So(stats["driverCount"], ShouldEqual, 4)
				So(stats["firstSeason"], ShouldEqual, 2022)
				So(stats["lastSeason"], ShouldEqual, 2023)
				So(stats["roundingMode"], ShouldEqual, "half-up")
			})
		})

		Convey("When validating tokens", func() {
			Convey("Then menu, season, and name validation all work", func() {
				opt, err := svc.ValidateMenuOption("2")
				So(err, ShouldBeNil)
				So(opt, ShouldEqual, 2)

				year, err := svc.ValidateSeason("2022")
				So(err, ShouldBeNil)
				So(year, ShouldEqual, 2022)

				name, err := svc.ValidateName("sergio perez")
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "Sergio Perez")
			})
		})
	})

	Convey("Given a service configured for ceiling rounding", t, func() {
		svc := newLoaded(t, service.WithRounding(query.RoundCeil, 2))
		ctx := context.Background()

		Convey("When querying average points", func() {
			averages := svc.AveragePointsPerSeason(ctx)

			Convey("Then the configured mode applies", func() {
				// 2023: 1094 / 3 = 364.666... -> ceil 364.67
				So(averages[2023].String(), ShouldEqual, "364.67")
				// 2022: 762 / 2 = 381
				So(averages[2022].String(), ShouldEqual, "381")
			})
		})
	})

	Convey("Given a service with the canonical name policy", t, func() {
		svc := newLoaded(t, service.WithNamePolicy(validate.RequireCanonical))

		Convey("When validating a miscapitalized name", func() {
			_, err := svc.ValidateName("max verstappen")

			Convey("Then the token is rejected", func() {
				So(errors.Is(err, validate.ErrNameFormat), ShouldBeTrue)
			})
		})
	})

	Convey("Given a ledger file that cannot be parsed", t, func() {
		if err := logger.Init(); err != nil {
			t.Fatalf("init logger: %v", err)
		}
		svc := service.New()

		Convey("When loading a malformed file", func() {
			err := svc.Load(context.Background(), writeLedger(t, "2023, broken line\n"))

			Convey("Then loading fails with a parse error", func() {
				So(errors.Is(err, parse.ErrMalformed), ShouldBeTrue)
			})
		})

		Convey("When loading an empty file", func() {
			err := svc.Load(context.Background(), writeLedger(t, ""))

			Convey("Then loading fails rather than yielding an empty ledger", func() {
				So(errors.Is(err, parse.ErrEmptyLedger), ShouldBeTrue)
			})
		})

		Convey("When loading a missing file", func() {
			err := svc.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

			Convey("Then loading fails with an open error", func() {
				So(errors.Is(err, parse.ErrOpenLedger), ShouldBeTrue)
			})
		})
	})
}
