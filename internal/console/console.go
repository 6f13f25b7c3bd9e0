// Package console implements the interactive menu loop over the ledger
// service: read one token, validate it, run exactly one query, print, loop.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/pkg/logger"
)

// Run loads the ledger and drives the menu loop until the user quits or
// the input stream ends. A ledger that cannot be parsed aborts immediately;
// rejected tokens are reported and the loop continues.
func Run(ctx context.Context, cfg *Config) error {
	svc := service.New(
		service.WithLogger(logger.Get()),
		service.WithRounding(cfg.RoundingMode, cfg.RoundingDigits),
		service.WithNamePolicy(cfg.NamePolicy),
		service.WithMenuSize(menuSize),
	)
	if err := svc.Load(ctx, cfg.LedgerPath); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cfg.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(cfg.Out, menuText)
		fmt.Fprint(cfg.Out, "> ")

		token, ok := readToken(scanner)
		if !ok {
			break
		}
		opt, err := svc.ValidateMenuOption(token)
		if err != nil {
			fmt.Fprintln(cfg.Out, err)
			continue
		}
		if action(opt) == actionQuit {
			fmt.Fprintln(cfg.Out, "bye")
			return nil
		}
		dispatch(ctx, cfg, svc, scanner, action(opt))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// dispatch runs the selected query and renders its result. Validation
// failures on follow-up tokens (season year, driver name) are printed and
// control returns to the menu.
func dispatch(ctx context.Context, cfg *Config, svc *service.Service, scanner *bufio.Scanner, act action) {
	switch act {
	case actionSeasonWinners:
		winners := svc.SeasonWinners(ctx)
		for _, season := range svc.Seasons() {
			if w, ok := winners[season]; ok {
				fmt.Fprintf(cfg.Out, "%d: %s (%s points, %d wins)\n", season, w.Name, w.Points, w.Wins)
			}
		}
	case actionTotalWins:
		totals := svc.TotalWinsPerSeason(ctx)
		for _, season := range svc.Seasons() {
			fmt.Fprintf(cfg.Out, "%d: %d wins\n", season, totals[season])
		}
	case actionAveragePoints:
		averages := svc.AveragePointsPerSeason(ctx)
		for _, season := range svc.Seasons() {
			fmt.Fprintf(cfg.Out, "%d: %s points on average\n", season, averages[season])
		}
	case actionSeasonsByPoints:
		for i, sp := range svc.SeasonsByTotalPointsAscending(ctx) {
			fmt.Fprintf(cfg.Out, "%2d. %d (%s points)\n", i+1, sp.Season, sp.Points)
		}
	case actionCareerPoints:
		fmt.Fprint(cfg.Out, "driver name: ")
		token, ok := readToken(scanner)
		if !ok {
			return
		}
		name, err := svc.ValidateName(token)
		if err != nil {
			fmt.Fprintln(cfg.Out, err)
			return
		}
		fmt.Fprintf(cfg.Out, "%s: %s career points\n", name, svc.DriverCareerPoints(ctx, name))
	case actionSeasonEntries:
		fmt.Fprint(cfg.Out, "season year: ")
		token, ok := readToken(scanner)
		if !ok {
			return
		}
		season, err := svc.ValidateSeason(token)
		if err != nil {
			fmt.Fprintln(cfg.Out, err)
			return
		}
		entries, _ := svc.SeasonEntries(ctx, season)
		if len(entries) == 0 {
			fmt.Fprintf(cfg.Out, "%d: no entries on record\n", season)
			return
		}
		for _, e := range entries {
			fmt.Fprintf(cfg.Out, "%d: %s - %s points, %d wins\n", season, e.Name, e.Points, e.Wins)
		}
	}
}

// readToken reads one input line; ok is false when the stream ends.
func readToken(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// ShowHelp prints usage information for the console.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `podium console

An interactive query console over a season-results ledger file.

Usage:
  go run cmd/podium-console/main.go [options]

Options:
  -ledger string
        Path to the ledger file (default "ledger.txt")
  -digits int
        Fractional digits for average points (default 2)
  -rounding string
        Rounding mode for averages: half-up or ceil (default "half-up")
  -names string
        Driver-name matching policy: any-case or canonical (default "any-case")
  -seed string
        Write a randomly generated sample ledger to this path and exit
  -seasons int
        Number of seasons the seeded ledger spans (default 5)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Query an existing ledger
  go run cmd/podium-console/main.go -ledger results.txt

  # Generate a sample ledger, then explore it
  go run cmd/podium-console/main.go -seed sample.txt -seasons 8
  go run cmd/podium-console/main.go -ledger sample.txt
`)
}
