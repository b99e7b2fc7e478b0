package duetasm

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax    = errors.New("syntax error")
	ErrUnknownOp = errors.New("unknown op")
)

type ParseError struct {
	Name string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Name, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
