package parse

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMalformed   = errors.New("malformed ledger line")
	ErrEmptyLedger = errors.New("ledger contains no records")
	ErrOpenLedger  = errors.New("open ledger file failed")
)

// ParseError describes a single unparsable ledger line.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Text   string // the offending line as read
	Reason string // what was wrong with it
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap lets callers match the sentinel kind with errors.Is.
func (e *ParseError) Unwrap() error { return ErrMalformed }
