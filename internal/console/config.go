package console

import (
	"io"

	"github.com/okian/podium/internal/domain/query"
	"github.com/okian/podium/internal/domain/validate"
)

// Config holds configuration for an interactive console session.
type Config struct {
	LedgerPath     string             // ledger file to load at startup
	RoundingMode   query.RoundingMode // average-points rounding mode
	RoundingDigits int32              // fractional digits for averages
	NamePolicy     validate.NamePolicy
	In             io.Reader // token source, normally os.Stdin
	Out            io.Writer // rendering target, normally os.Stdout
	Verbose        bool      // enable debug logging
}
