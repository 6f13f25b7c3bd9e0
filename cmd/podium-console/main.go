package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/podium/internal/console"
	"github.com/okian/podium/internal/domain/query"
	"github.com/okian/podium/internal/domain/validate"
	"github.com/okian/podium/pkg/logger"
)

// Default configuration constants.
const (
	defaultLedgerPath  = "ledger.txt"
	defaultDigits      = 2
	defaultSeedSeasons = 5
)

func main() {
	var (
		ledgerPath = flag.String("ledger", defaultLedgerPath, "Path to the ledger file")
		digits     = flag.Int("digits", defaultDigits, "Fractional digits for average points")
		rounding   = flag.String("rounding", "half-up", "Rounding mode for averages: half-up or ceil")
		names      = flag.String("names", "any-case", "Driver-name matching policy: any-case or canonical")
		seedPath   = flag.String("seed", "", "Write a randomly generated sample ledger to this path and exit")
		seasons    = flag.Int("seasons", defaultSeedSeasons, "Number of seasons the seeded ledger spans")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		console.ShowHelp(os.Stdout)
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *seedPath != "" {
		if err := console.WriteSample(ctx, *seedPath, *seasons); err != nil {
			os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
			os.Exit(1)
		}
		return
	}

	policy, err := validate.ParseNamePolicy(*names)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &console.Config{
		LedgerPath:     *ledgerPath,
		RoundingMode:   query.RoundingMode(*rounding),
		RoundingDigits: int32(*digits),
		NamePolicy:     policy,
		In:             os.Stdin,
		Out:            os.Stdout,
		Verbose:        *verbose,
	}

	if err := console.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("console failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
