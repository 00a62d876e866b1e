package lhe

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the dimension scan finds no events,
// no weights, or no particles. Nothing is allocated in that case.
var ErrEmptyInput = errors.New("found no events, weights, or particles")

// ScanError reports a dimension-scan failure at a specific input line.
type ScanError struct {
	Line int
	Msg  string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("dimension scan failed on line %d: %s", e.Line, e.Msg)
}

// HeaderError reports an event whose header is missing a parsable
// particle count. The particle count is the one mandatory field.
type HeaderError struct {
	Event int
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("failed to parse particle count from event %d", e.Event)
}

// BoundsError reports a row cursor about to run past the array bounds
// established by the dimension scan. This means the scanned counts and
// the counts encountered during extraction disagree.
type BoundsError struct {
	Array string
	Row   int
	Limit int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s row %d exceeds scanned size %d", e.Array, e.Row, e.Limit)
}

// MarkupError reports malformed markup encountered during the second pass.
// It wraps the underlying tokenizer diagnostic.
type MarkupError struct {
	Line int
	Msg  string
	err  error
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("malformed markup on line %d: %s", e.Line, e.Msg)
}

func (e *MarkupError) Unwrap() error { return e.err }
