// Package parse turns the flat ledger text format into season records.
//
// One line holds one record group:
//
//	<season>, <name>: <points> <wins>, <name>: <points> <wins>, ...
//
// Consecutive lines repeating the same season extend that season's entry
// sequence. Parsing is a pure fold over the input lines; no state survives
// a call.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okian/podium/internal/domain/model"
)

// Scanner buffer bounds; ledger lines can carry a whole grid of drivers.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// Parse reads ledger text from r and returns the season records in exact
// encounter order. It returns a *ParseError on the first malformed line and
// ErrEmptyLedger when no record could be read at all.
func Parse(r io.Reader) ([]model.SeasonRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)

	var records []model.SeasonRecord
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		season, entries, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}

		// A line repeating the previous line's season extends that
		// season instead of opening a new record.
		if n := len(records); n > 0 && records[n-1].Season == season {
			records[n-1].Entries = append(records[n-1].Entries, entries...)
			continue
		}
		records = append(records, model.SeasonRecord{Season: season, Entries: entries})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyLedger
	}
	return records, nil
}

// ParseFile opens path and parses its contents. The file handle is released
// on every path, including parse failure.
func ParseFile(path string) ([]model.SeasonRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpenLedger, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// parseLine decodes one ledger line into its season and driver entries.
func parseLine(lineNo int, line string) (int, []model.Entry, error) {
	seasonPart := line
	rest := ""
	if i := strings.IndexByte(line, ','); i >= 0 {
		seasonPart, rest = line[:i], line[i+1:]
	}

	season, err := strconv.Atoi(strings.TrimSpace(seasonPart))
	if err != nil {
		return 0, nil, &ParseError{Line: lineNo, Text: line, Reason: "malformed season"}
	}

	var entries []model.Entry
	for _, raw := range strings.Split(rest, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			// Trailing comma or a season-only line; both are legal.
			continue
		}
		entry, err := parseEntry(lineNo, line, raw)
		if err != nil {
			return 0, nil, err
		}
		entries = append(entries, entry)
	}
	return season, entries, nil
}

// parseEntry decodes a single "<name>: <points> <wins>" fragment.
func parseEntry(lineNo int, line, raw string) (model.Entry, error) {
	colon := strings.IndexByte(raw, ':')
	if colon < 0 {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "driver entry missing ':'"}
	}

	name := strings.TrimSpace(raw[:colon])
	if name == "" {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "empty driver name"}
	}

	stats := strings.Fields(raw[colon+1:])
	if len(stats) != 2 {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "expected exactly points and wins after ':'"}
	}

	points, err := decimal.NewFromString(stats[0])
	if err != nil {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "invalid points value"}
	}
	if points.IsNegative() {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "negative points value"}
	}

	wins, err := strconv.Atoi(stats[1])
	if err != nil {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "invalid wins value"}
	}
	if wins < 0 {
		return model.Entry{}, &ParseError{Line: lineNo, Text: line, Reason: "negative wins value"}
	}

	return model.Entry{Name: name, Points: points, Wins: wins}, nil
}
