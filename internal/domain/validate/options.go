package validate

import "fmt"

// NamePolicy selects how strictly driver-name tokens are matched.
type NamePolicy string

const (
	// AcceptAnyCase accepts any token that case-insensitively matches a
	// known name, whatever its capitalization. This is the default; a
	// correctly spelled name should not bounce on casing alone.
	AcceptAnyCase NamePolicy = "any-case"

	// RequireCanonical additionally demands the token already be in
	// canonical "First Last" form. Earlier revisions of the ledger
	// tooling enforced this.
	RequireCanonical NamePolicy = "canonical"
)

// ParseNamePolicy maps a configuration string to a NamePolicy.
func ParseNamePolicy(s string) (NamePolicy, error) {
	switch NamePolicy(s) {
	case AcceptAnyCase, RequireCanonical:
		return NamePolicy(s), nil
	case "":
		return AcceptAnyCase, nil
	default:
		return "", fmt.Errorf("unknown name policy: %q", s)
	}
}

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithMenuSize sets the number of menu actions accepted by MenuOption.
func WithMenuSize(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.menuSize = n
		}
	}
}

// WithNamePolicy sets the driver-name matching policy.
func WithNamePolicy(p NamePolicy) Option {
	return func(v *Validator) {
		if p == AcceptAnyCase || p == RequireCanonical {
			v.policy = p
		}
	}
}
