// internal/parser/parser.go
package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a row cannot be bound to a ballot record
var ErrMalformedRecord = errors.New("malformed record")

// ParseError represents a parsing error with a specific stage
type ParseError struct {
	Stage string
	Line  int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at %s stage, line %d: %v", e.Stage, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error at %s stage: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(stage string, err error) *ParseError {
	return &ParseError{
		Stage: stage,
		Err:   err,
	}
}

func malformed(stage string, line int, err error) *ParseError {
	return &ParseError{
		Stage: stage,
		Line:  line,
		Err:   fmt.Errorf("%w: %v", ErrMalformedRecord, err),
	}
}
