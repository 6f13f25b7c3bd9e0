// Package validate checks raw user tokens against the ledger's known
// domains before a query runs.
//
// A Validator reads domains computed once at construction and never writes
// anything, so concurrent use needs no locking. Failures come back as
// errors whose messages name the valid domain, letting the user
// self-correct.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/metrics"
)

const defaultMenuSize = 5

// Validator validates menu, season and driver-name tokens.
type Validator struct {
	menuSize  int
	seasons   map[int]struct{}
	minSeason int
	maxSeason int
	names     []string          // canonical forms, for error examples
	byFolded  map[string]string // folded name -> canonical form
	policy    NamePolicy
}

// New builds a Validator from the store's season and name domains.
func New(store repository.Store, opts ...Option) *Validator {
	v := &Validator{
		menuSize: defaultMenuSize,
		seasons:  make(map[int]struct{}),
		byFolded: make(map[string]string),
		policy:   AcceptAnyCase,
	}

	for _, opt := range opts {
		opt(v)
	}

	seasons := store.Seasons()
	for _, s := range seasons {
		v.seasons[s] = struct{}{}
	}
	if len(seasons) > 0 {
		v.minSeason = seasons[0]
		v.maxSeason = seasons[len(seasons)-1]
	}

	for _, name := range store.DriverNames() {
		canonical := Canonicalize(name)
		folded := model.FoldName(name)
		if _, ok := v.byFolded[folded]; !ok {
			v.byFolded[folded] = canonical
			v.names = append(v.names, canonical)
		}
	}

	return v
}

// MenuOption validates a menu token as an action number in [1, N].
func (v *Validator) MenuOption(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 1 || n > v.menuSize {
		metrics.RecordValidationFailure("menu")
		return 0, fmt.Errorf("%w: enter a number between 1 and %d", ErrMenuOption, v.menuSize)
	}
	return n, nil
}

// Season validates a season token against the ledger's season keys.
func (v *Validator) Season(token string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		metrics.RecordValidationFailure("season")
		return 0, fmt.Errorf("%w: enter a year between %d and %d", ErrUnknownSeason, v.minSeason, v.maxSeason)
	}
	if _, ok := v.seasons[year]; !ok {
		metrics.RecordValidationFailure("season")
		return 0, fmt.Errorf("%w: %d is not on record; seasons run %d to %d", ErrUnknownSeason, year, v.minSeason, v.maxSeason)
	}
	return year, nil
}

// Name validates a driver-name token and returns its canonical form.
// Matching against the known names is case-insensitive; under the
// RequireCanonical policy the trimmed token must additionally equal its
// own canonical rendering.
func (v *Validator) Name(token string) (string, error) {
	canonical := Canonicalize(token)

	if v.policy == RequireCanonical && strings.TrimSpace(token) != canonical {
		metrics.RecordValidationFailure("name")
		return "", fmt.Errorf("%w: write it like %q", ErrNameFormat, v.example())
	}

	found, ok := v.byFolded[model.FoldName(token)]
	if !ok {
		metrics.RecordValidationFailure("name")
		return "", fmt.Errorf("%w: %q is not on record; expected a name like %q", ErrUnknownName, canonical, v.example())
	}
	return found, nil
}

// example returns one known name to show in error messages.
func (v *Validator) example() string {
	if len(v.names) == 0 {
		return "Max Verstappen"
	}
	return v.names[0]
}

// Canonicalize returns the display form of a driver name: trimmed,
// interior whitespace collapsed, each word title-cased.
func Canonicalize(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
