package query_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/query"
)

// buildStore parses ledger text into a frozen store for engine tests.
func buildStore(t *testing.T, ledger string) repository.Store {
	t.Helper()
	records, err := parse.Parse(strings.NewReader(ledger))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return repository.New(records, repository.WithMetricsPublish(false))
}

const fixture = `2021, Max Verstappen: 395.5 10, Lewis Hamilton: 387.5 8
2022, Max Verstappen: 454 15, Charles Leclerc: 308 3
2023, Max Verstappen: 575 19, Sergio Perez: 285 2
2023, Lewis Hamilton: 234 1
`

func TestSeasonWinners(t *testing.T) {
	Convey("Given an engine over a three-season ledger", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When computing season winners", func() {
			winners := engine.SeasonWinners()

			Convey("Then each season maps to its highest-points entry", func() {
				So(winners, ShouldHaveLength, 3)
				So(winners[2021].Name, ShouldEqual, "Max Verstappen")
				So(winners[2023].Name, ShouldEqual, "Max Verstappen")
				So(winners[2023].Points.String(), ShouldEqual, "575")
				So(winners[2023].Wins, ShouldEqual, 19)
			})
		})
	})

	Convey("Given a season with a points tie", t, func() {
		// Second entry has more wins; first encountered must still win.
		engine := query.New(buildStore(t, "2019, Valtteri Bottas: 326 4, Lewis Hamilton: 326 11\n"))

		Convey("When computing season winners", func() {
			winners := engine.SeasonWinners()

			Convey("Then the first entry in ledger order takes the season", func() {
				So(winners[2019].Name, ShouldEqual, "Valtteri Bottas")
			})
		})
	})

	Convey("Given a season without entries", t, func() {
		engine := query.New(buildStore(t, "2020,\n2021, Max Verstappen: 395.5 10\n"))

		Convey("When computing season winners", func() {
			winners := engine.SeasonWinners()

			Convey("Then the empty season is omitted", func() {
				So(winners, ShouldHaveLength, 1)
				_, ok := winners[2020]
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestTotalWinsPerSeason(t *testing.T) {
	Convey("Given an engine over the fixture ledger", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When summing wins per season", func() {
			totals := engine.TotalWinsPerSeason()

			Convey("Then wins add up across all of a season's entries", func() {
				So(totals[2021], ShouldEqual, 18)
				So(totals[2022], ShouldEqual, 18)
				So(totals[2023], ShouldEqual, 22)
			})
		})
	})

	Convey("Given a season without entries", t, func() {
		engine := query.New(buildStore(t, "2020,\n"))

		Convey("When summing wins", func() {
			totals := engine.TotalWinsPerSeason()

			Convey("Then the empty season reports zero", func() {
				So(totals[2020], ShouldEqual, 0)
			})
		})
	})
}

func TestAveragePointsPerSeason(t *testing.T) {
	Convey("Given the default half-up rounding with two digits", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When averaging points per season", func() {
			averages := engine.AveragePointsPerSeason()

			Convey("Then means are rounded half-up", func() {
				// 2021: (395.5 + 387.5) / 2 = 391.5
				So(averages[2021].String(), ShouldEqual, "391.5")
				// 2023: (575 + 285 + 234) / 3 = 364.666... -> 364.67
				So(averages[2023].String(), ShouldEqual, "364.67")
			})
		})
	})

	Convey("Given an engine configured for ceiling rounding", t, func() {
		store := buildStore(t, "2023, Max Verstappen: 1 0, Sergio Perez: 0 0, Lewis Hamilton: 0 0\n")

		Convey("When comparing the two modes on 1/3", func() {
			halfUp := query.New(store).AveragePointsPerSeason()
			ceil := query.New(store, query.WithRounding(query.RoundCeil, 2)).AveragePointsPerSeason()

			Convey("Then half-up truncates down and ceil rounds up", func() {
				So(halfUp[2023].String(), ShouldEqual, "0.33")
				So(ceil[2023].String(), ShouldEqual, "0.34")
			})
		})
	})

	Convey("Given zero rounding digits", t, func() {
		store := buildStore(t, "2018, Sebastian Vettel: 10.2 5, Kimi Raikkonen: 4.6 1\n")
		engine := query.New(store, query.WithRounding(query.RoundHalfUp, 0))

		Convey("When averaging 7.4", func() {
			averages := engine.AveragePointsPerSeason()

			Convey("Then half-up keeps it at 7", func() {
				So(averages[2018].String(), ShouldEqual, "7")
			})
		})
	})

	Convey("Given a season without entries", t, func() {
		engine := query.New(buildStore(t, "2020,\n"))

		Convey("When averaging points", func() {
			averages := engine.AveragePointsPerSeason()

			Convey("Then the empty season is exactly zero, not an error", func() {
				So(averages[2020].IsZero(), ShouldBeTrue)
			})
		})
	})
}

func TestSeasonsByTotalPointsAscending(t *testing.T) {
	Convey("Given an engine over the fixture ledger", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When ranking seasons by total points", func() {
			standings := engine.SeasonsByTotalPointsAscending()

			Convey("Then the order is ascending by total", func() {
				// 2022: 762, 2021: 783, 2023: 1094
				So(standings, ShouldHaveLength, 3)
				So(standings[0].Season, ShouldEqual, 2022)
				So(standings[0].Points.String(), ShouldEqual, "762")
				So(standings[1].Season, ShouldEqual, 2021)
				So(standings[2].Season, ShouldEqual, 2023)
				So(standings[2].Points.String(), ShouldEqual, "1094")
			})

			Convey("And the result covers every season exactly once", func() {
				seen := make(map[int]bool)
				for _, sp := range standings {
					seen[sp.Season] = true
				}
				So(seen, ShouldResemble, map[int]bool{2021: true, 2022: true, 2023: true})
			})
		})
	})

	Convey("Given seasons with equal totals", t, func() {
		// 2002 appears before 2001 in the ledger and must stay first.
		engine := query.New(buildStore(t, "2002, Michael Schumacher: 100 5\n2001, Mika Hakkinen: 100 3\n"))

		Convey("When ranking seasons", func() {
			standings := engine.SeasonsByTotalPointsAscending()

			Convey("Then ties keep ledger encounter order", func() {
				So(standings[0].Season, ShouldEqual, 2002)
				So(standings[1].Season, ShouldEqual, 2001)
			})
		})
	})
}

func TestDriverCareerPoints(t *testing.T) {
	Convey("Given an engine over the fixture ledger", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When summing a driver's career points", func() {
			total := engine.DriverCareerPoints("Max Verstappen")

			Convey("Then entries across all seasons are included", func() {
				// 395.5 + 454 + 575
				So(total.String(), ShouldEqual, "1424.5")
			})
		})

		Convey("When the name differs only in case", func() {
			total := engine.DriverCareerPoints("mAx vERSTAPPEN")

			Convey("Then the total is unchanged", func() {
				So(total.String(), ShouldEqual, "1424.5")
			})
		})

		Convey("When the name carries extra interior whitespace", func() {
			total := engine.DriverCareerPoints("  max   verstappen ")

			Convey("Then the total is unchanged", func() {
				So(total.String(), ShouldEqual, "1424.5")
			})
		})

		Convey("When the name is unknown", func() {
			total := engine.DriverCareerPoints("Ayrton Senna")

			Convey("Then the total is zero rather than an error", func() {
				So(total.IsZero(), ShouldBeTrue)
			})
		})
	})
}

func TestSeasonEntries(t *testing.T) {
	Convey("Given an engine over the fixture ledger", t, func() {
		engine := query.New(buildStore(t, fixture))

		Convey("When fetching a known season", func() {
			entries, ok := engine.SeasonEntries(2023)

			Convey("Then the entries come back in ledger order", func() {
				So(ok, ShouldBeTrue)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Name, ShouldEqual, "Max Verstappen")
				So(entries[2].Name, ShouldEqual, "Lewis Hamilton")
			})
		})

		Convey("When fetching an unknown season", func() {
			_, ok := engine.SeasonEntries(1950)

			Convey("Then the lookup reports absence", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
