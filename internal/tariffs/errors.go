package tariffs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNotNumeric = errors.New("not a number")
	errNotFinite  = errors.New("not a finite number")
	errOutOfRange = errors.New("out of range")
)

// FormatError reports a source file that cannot be used as a table: it is unreadable,
// lacks a required column, has a row of the wrong arity, or has no data rows.
type FormatError struct {
	Source string
	Line   int
	Column string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Column != "" {
		fmt.Fprintf(&b, " %q", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports a numeric cell with non-numeric residue after its
// formatting characters were stripped.
type ParseError struct {
	Column string
	Line   int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("parse %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: parse %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// annotate attaches the cell position to a ParseError coming out of the cleaner.
func annotate(err error, column string, line int) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Column = column
		perr.Line = line
	}
	return err
}
