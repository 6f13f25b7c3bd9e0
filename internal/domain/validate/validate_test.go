package validate_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/validate"
)

const fixture = `2022, Max Verstappen: 454 15, Charles Leclerc: 308 3
2023, Max Verstappen: 575 19, Sergio Perez: 285 2
`

func buildValidator(t *testing.T, opts ...validate.Option) *validate.Validator {
	t.Helper()
	records, err := parse.Parse(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	store := repository.New(records, repository.WithMetricsPublish(false))
	return validate.New(store, opts...)
}

func TestMenuOption(t *testing.T) {
	Convey("Given a validator with a five-action menu", t, func() {
		v := buildValidator(t, validate.WithMenuSize(5))

		Convey("When validating tokens inside the range", func() {
			for _, token := range []string{"1", "3", "5", " 2 "} {
				n, err := v.MenuOption(token)
				So(err, ShouldBeNil)
				So(n, ShouldBeBetweenOrEqual, 1, 5)
			}
		})

		Convey("When validating tokens outside the range", func() {
			for _, token := range []string{"0", "6", "-1", "abc", "", "1.5"} {
				_, err := v.MenuOption(token)

				So(errors.Is(err, validate.ErrMenuOption), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "between 1 and 5")
			}
		})
	})
}

func TestSeason(t *testing.T) {
	Convey("Given a validator over a 2022-2023 ledger", t, func() {
		v := buildValidator(t)

		Convey("When validating a known season", func() {
			year, err := v.Season(" 2023 ")

			Convey("Then it accepts and returns the year", func() {
				So(err, ShouldBeNil)
				So(year, ShouldEqual, 2023)
			})
		})

		Convey("When validating an unknown season", func() {
			_, err := v.Season("1950")

			Convey("Then the error names the valid range", func() {
				So(errors.Is(err, validate.ErrUnknownSeason), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "2022")
				So(err.Error(), ShouldContainSubstring, "2023")
			})
		})

		Convey("When the token is not a number", func() {
			_, err := v.Season("lastyear")

			Convey("Then the error still names the valid range", func() {
				So(errors.Is(err, validate.ErrUnknownSeason), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "2022")
			})
		})
	})
}

func TestName(t *testing.T) {
	Convey("Given the default any-case policy", t, func() {
		v := buildValidator(t)

		Convey("When validating the canonical spelling", func() {
			name, err := v.Name("Max Verstappen")

			Convey("Then it accepts and returns the canonical form", func() {
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "Max Verstappen")
			})
		})

		Convey("When validating a miscapitalized spelling", func() {
			name, err := v.Name("max verstappen")

			Convey("Then it accepts and canonicalizes", func() {
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "Max Verstappen")
			})
		})

		Convey("When the token carries stray whitespace", func() {
			name, err := v.Name("  max   VERSTAPPEN ")

			Convey("Then whitespace is collapsed before matching", func() {
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "Max Verstappen")
			})
		})

		Convey("When validating an unknown name", func() {
			_, err := v.Name("Ayrton Senna")

			Convey("Then the error shows an example of the expected format", func() {
				So(errors.Is(err, validate.ErrUnknownName), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "Charles Leclerc")
			})
		})
	})

	Convey("Given the canonical-form policy", t, func() {
		v := buildValidator(t, validate.WithNamePolicy(validate.RequireCanonical))

		Convey("When validating the canonical spelling", func() {
			name, err := v.Name("Max Verstappen")

			Convey("Then it accepts", func() {
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "Max Verstappen")
			})
		})

		Convey("When the spelling is right but the casing is not", func() {
			_, err := v.Name("max verstappen")

			Convey("Then the token is rejected with a format hint", func() {
				So(errors.Is(err, validate.ErrNameFormat), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "Charles Leclerc")
			})
		})
	})
}

func TestCanonicalize(t *testing.T) {
	Convey("Given assorted raw name tokens", t, func() {
		cases := map[string]string{
			"max verstappen":       "Max Verstappen",
			"  MAX   VERSTAPPEN  ": "Max Verstappen",
			"lewis":                "Lewis",
			"jean-eric vergne":     "Jean-eric Vergne",
		}

		Convey("When canonicalizing them", func() {
			for in, want := range cases {
				So(validate.Canonicalize(in), ShouldEqual, want)
			}
		})
	})
}

func TestParseNamePolicy(t *testing.T) {
	Convey("Given policy configuration strings", t, func() {
		Convey("When parsing valid values", func() {
			p, err := validate.ParseNamePolicy("any-case")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, validate.AcceptAnyCase)

			p, err = validate.ParseNamePolicy("canonical")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, validate.RequireCanonical)
		})

		Convey("When parsing the empty string", func() {
			p, err := validate.ParseNamePolicy("")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, validate.AcceptAnyCase)
		})

		Convey("When parsing an unknown value", func() {
			_, err := validate.ParseNamePolicy("strict")
			So(err, ShouldNotBeNil)
		})
	})
}
