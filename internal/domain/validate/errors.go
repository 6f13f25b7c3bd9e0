package validate

import "errors"

// Sentinel kinds for validation failures. All of them are recoverable: the
// caller reports the message and asks again.
var (
	ErrMenuOption    = errors.New("invalid menu option")
	ErrUnknownSeason = errors.New("unknown season")
	ErrUnknownName   = errors.New("unknown driver name")
	ErrNameFormat    = errors.New("driver name not in expected format")
)
