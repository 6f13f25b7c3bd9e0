package console

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/okian/podium/pkg/logger"
)

// Seeded-ledger generation bounds.
const (
	seedFilePermission = 0600
	randomFloatDivisor = 1_000_000
	firstSeedSeason    = 2015
	minSeedDrivers     = 3
	maxExtraDrivers    = 4
	maxSeasonPoints    = 600.0
	maxSeasonWins      = 15
)

// seedDrivers is the name pool for generated ledgers.
var seedDrivers = []string{
	"Max Verstappen", "Sergio Perez", "Lewis Hamilton", "Charles Leclerc",
	"Carlos Sainz", "Lando Norris", "George Russell", "Fernando Alonso",
	"Oscar Piastri", "Valtteri Bottas",
}

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0, n).
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// WriteSample generates a plausible ledger file spanning the given number
// of seasons and writes it to path. Useful for demos and manual testing.
func WriteSample(ctx context.Context, path string, seasons int) error {
	if seasons < 1 {
		seasons = 1
	}

	var b strings.Builder
	for season := firstSeedSeason; season < firstSeedSeason+seasons; season++ {
		drivers := minSeedDrivers + randomInt(maxExtraDrivers)
		parts := make([]string, 0, drivers)
		for _, name := range pickDrivers(drivers) {
			points := randomFloat() * maxSeasonPoints
			wins := randomInt(maxSeasonWins)
			parts = append(parts, fmt.Sprintf("%s: %.1f %d", name, points, wins))
		}
		fmt.Fprintf(&b, "%d, %s\n", season, strings.Join(parts, ", "))
	}

	if err := os.WriteFile(path, []byte(b.String()), seedFilePermission); err != nil {
		return fmt.Errorf("write sample ledger: %w", err)
	}
	logger.Get().Info(ctx, "sample ledger written",
		logger.String("path", path),
		logger.Int("seasons", seasons),
	)
	return nil
}

// pickDrivers returns n distinct names from the pool in shuffled order.
func pickDrivers(n int) []string {
	if n > len(seedDrivers) {
		n = len(seedDrivers)
	}
	pool := append([]string(nil), seedDrivers...)
	for i := len(pool) - 1; i > 0; i-- {
		j := randomInt(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
