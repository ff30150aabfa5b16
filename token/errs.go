package token

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedLiteral reports a quoted or triple-quoted
	// literal with no matching closing delimiter before input end.
	ErrUnterminatedLiteral = errors.New("unterminated literal")

	// ErrInconsistentIndentation reports leading whitespace that is
	// not an exact multiple of the subtree's inferred unit, or mixes
	// spaces and tabs within one top-level subtree.
	ErrInconsistentIndentation = errors.New("inconsistent indentation")

	// ErrQuoteSyntax reports a malformed quoted literal: an unknown
	// escape, or non-whitespace trailing a closing delimiter.
	ErrQuoteSyntax = errors.New("malformed quoted literal")
)

// ScanError wraps one of the sentinel scan errors with the position at
// which it was detected.
type ScanError struct {
	Err error
	Pos Pos
}

func NewScanError(err error, p *Pos) *ScanError {
	return &ScanError{Err: err, Pos: *p}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
