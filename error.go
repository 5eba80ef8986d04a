package parsec

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	multierror "github.com/hashicorp/go-multierror"
)

// Error is the payload of a Failure ParseResult: the label(s) of what
// the grammar expected at Pos, the Stream snapshot at the point of
// failure, and — when a branch of Either/Choice failed because of a
// configuration error rather than a plain mismatch — the wrapped fatal
// cause.
//
// Sibling causes are aggregated through *multierror.Error instead of a
// single slot, so a verbose caller can walk every attempted branch's
// underlying cause rather than only the first one seen.
type Error struct {
	Expected []string
	Got      *Stream
	Pos      Position
	cause    error
	siblings *multierror.Error
}

// NewError builds a plain (non-fatal) Failure: this parser did not
// match, but sibling alternatives may still be tried.
func NewError(got *Stream, expected ...string) *Error {
	snap := *got
	snap.checkpoints = nil
	return &Error{Expected: expected, Got: &snap, Pos: got.Position()}
}

// NewFatalError builds a Failure wrapping an underlying configuration
// or conversion error: parsing is to be considered invalid and no
// sibling alternative should be tried.
func NewFatalError(got *Stream, cause error, expected ...string) *Error {
	snap := *got
	snap.checkpoints = nil
	return &Error{Expected: expected, Got: &snap, Pos: got.Position(), cause: cause}
}

// Error renders a compact, end-user-facing message.
func (e *Error) Error() string {
	switch len(e.Expected) {
	case 0:
		return "parse failed"
	case 1:
		return fmt.Sprintf("expected %s", e.Expected[0])
	default:
		return fmt.Sprintf("expected one of: %s", strings.Join(e.Expected, ", "))
	}
}

// Unwrap exposes the wrapped fatal cause, or nil for a plain Failure.
func (e *Error) Unwrap() error { return e.cause }

// IsFatal reports whether this Failure carries a wrapped cause, meaning
// Either/Choice must not try the next branch.
func (e *Error) IsFatal() bool { return e.cause != nil }

// Add merges another Failure's expected labels and fatal cause into e,
// used by Either/Choice when combining sibling branch failures that
// occurred at the same input position.
func (e *Error) Add(from *Error) {
	e.Expected = append(e.Expected, from.Expected...)
	if from.cause != nil {
		e.siblings = multierror.Append(e.siblings, from.cause)
	}
	if e.cause == nil {
		e.cause = from.cause
	}
}

// Causes returns every fatal cause accumulated across sibling branches
// via Add, oldest first.
func (e *Error) Causes() []error {
	if e.siblings == nil {
		return nil
	}
	return e.siblings.Errors
}

// Clone returns a shallow copy of e, safe to mutate with Add without
// disturbing the original — Either tries branches against a shared
// Stream, and each branch's ParseResult still references its own
// *Error after the other branch has been attempted.
func (e *Error) Clone() *Error {
	c := *e
	c.Expected = append([]string(nil), e.Expected...)
	if e.siblings != nil {
		siblings := *e.siblings
		siblings.Errors = append([]error(nil), e.siblings.Errors...)
		c.siblings = &siblings
	}
	return &c
}

// ParserFailure is the boundary error Parser.TryRun raises: a Failure
// the caller asked to receive as an exception-style error rather than
// by discriminating a ParseResult.
type ParserFailure struct {
	Err *Error
}

func (f *ParserFailure) Error() string { return FormatFailure(f.Err) }

func (f *ParserFailure) Unwrap() error { return f.Err }

// FormatFailure renders a Failure the way the CLI reports it: filename,
// line, column, the compact expected-message, a source excerpt, and a
// caret under the failing column. The caret is colorized with
// fatih/color, which detects a non-TTY destination and disables color
// automatically.
func FormatFailure(err *Error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder

	loc := fmt.Sprintf("%d:%d", err.Pos.Line, err.Pos.Column)
	if err.Got != nil && err.Got.Filename() != "" {
		loc = fmt.Sprintf("%s:%s", err.Got.Filename(), loc)
	}
	fmt.Fprintf(&b, "%s: %s\n", loc, err.Error())

	if err.Got != nil {
		excerpt := err.Got.LineExcerpt()
		if excerpt != "" {
			fmt.Fprintf(&b, "    %s\n", excerpt)
			col := int(err.Pos.Column)
			if col < 1 {
				col = 1
			}
			b.WriteString(strings.Repeat(" ", 4+col-1))
			b.WriteString(color.RedString("^"))
		}
	}

	return b.String()
}
