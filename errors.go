package arbor

import (
	"fmt"
	"strings"
)

// Position marks a location in source text for diagnostics.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ReadError is a tokenizer failure: unterminated strings, stray close
// parens, or unrecognized # forms.
type ReadError struct {
	Pos Position
	Msg string
}

func (e *ReadError) Error() string { return fmt.Sprintf("read error at %v: %s", e.Pos, e.Msg) }

// ParseError is a syntactic failure above the token level: a misplaced
// dot, an unbalanced paren, or a malformed quote shorthand.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error at %v: %s", e.Pos, e.Msg) }

// UnboundError reports a reference to (or mutation of) an identifier that
// is not bound in any enclosing frame.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string { return fmt.Sprintf("%s is not bound", e.Name) }

// ArityError reports a procedure applied with the wrong number of
// arguments.
type ArityError struct {
	Name     string
	AtLeast  bool
	Expected int
	Got      int
}

func newArityError(name string, atLeast bool, expected, got int) *ArityError {
	return &ArityError{Name: name, AtLeast: atLeast, Expected: expected, Got: got}
}

func (e *ArityError) Error() string {
	qualifier := ""
	if e.AtLeast {
		qualifier = "at least "
	}
	plural := "s"
	if e.Expected == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s expects %s%d argument%s, got %d", e.Name, qualifier, e.Expected, plural, e.Got)
}

// TypeError reports a primitive that received an argument of the wrong
// kind, e.g. car on a non-pair.
type TypeError struct {
	Proc     string
	Expected string
	Got      Value
}

func newTypeError(proc, expected string, got Value) *TypeError {
	return &TypeError{Proc: proc, Expected: expected, Got: got}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s expects a %s, got %s", e.Proc, e.Expected, WriteToString(e.Got))
}

// DivisionByZeroError reports / or remainder/modulo/quotient with a zero
// divisor.
type DivisionByZeroError struct {
	Proc string
}

func (e *DivisionByZeroError) Error() string { return fmt.Sprintf("%s: division by zero", e.Proc) }

// UserError is raised explicitly by a built-in (e.g. (error "message")).
type UserError struct {
	Msg string
}

func (e *UserError) Error() string { return e.Msg }

// UserRaise implements the error procedure: (error msg irritant...) stops
// evaluation of the current form with a UserError carrying msg and the
// written form of each irritant appended.
func UserRaise(args []Value) Value {
	if len(args) == 0 {
		panic(newArityError("error", true, 1, 0))
	}
	msg, ok := args[0].(*String)
	if !ok {
		panic(newTypeError("error", "string", args[0]))
	}
	var b strings.Builder
	b.WriteString(msg.s)
	for _, irritant := range args[1:] {
		b.WriteByte(' ')
		b.WriteString(WriteToString(irritant))
	}
	panic(&UserError{Msg: b.String()})
}

// IsIncomplete reports whether err reflects input that was cut short
// mid-form — the cue a REPL uses to keep reading continuation lines
// instead of reporting a parse failure.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && strings.Contains(pe.Msg, "unexpected end of input")
}
