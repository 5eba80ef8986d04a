package parsec

import (
	"fmt"
	"sync"
)

type recursionState int

const (
	stateNormal recursionState = iota
	stateAwaitingRecurse
	stateBound
)

// cell is the interior-mutable slot a recursive Parser's body lives in.
// Recursive grammars need a forward reference whose function pointer is
// filled in after the fact; Go offers no way to mutate a function
// variable captured by multiple closures except through a shared
// pointer, so Parser wraps one instead of holding the function
// directly.
type cell[T any] struct {
	mu    sync.Mutex
	fn    func(*Stream) ParseResult[T]
	state recursionState
}

// Parser is a named, typed parsing function. Construct one with Make
// for an ordinary parser, or Recursive/Recurse for a forward-referenced
// one used in mutually recursive grammars.
//
// Parser values are cheap to copy (they hold a label and a pointer) and,
// once every Recursive parser involved has had Recurse called, are
// immutable and safe to share across goroutines for concurrent,
// independent parses — each parse owns its own Stream.
type Parser[T any] struct {
	label string
	cell  *cell[T]
}

// Make wraps fn as a non-recursive Parser under the given label.
func Make[T any](label string, fn func(*Stream) ParseResult[T]) Parser[T] {
	return Parser[T]{label: label, cell: &cell[T]{fn: fn, state: stateNormal}}
}

// Recursive returns a forward-referenced Parser awaiting a body.
// Running it before Recurse binds the body is a configuration error
// and panics.
func Recursive[T any](label string) Parser[T] {
	return Parser[T]{label: label, cell: &cell[T]{state: stateAwaitingRecurse}}
}

// Recurse binds p's body to inner. It may be called only once, and only
// on a Parser built by Recursive; either violation is a fatal
// configuration error and panics.
func (p Parser[T]) Recurse(inner Parser[T]) {
	p.cell.mu.Lock()
	defer p.cell.mu.Unlock()
	if p.cell.state != stateAwaitingRecurse {
		panic(fmt.Sprintf("parsec: Recurse called on parser %q which is not awaiting recursion", p.label))
	}
	p.cell.fn = func(s *Stream) ParseResult[T] { return inner.Run(s) }
	p.cell.state = stateBound
}

// Label returns p's human-readable label.
func (p Parser[T]) Label() string { return p.label }

// WithLabel returns a copy of p whose Failure results report name as
// the expected production instead of whatever label p's internals
// produced; Success results pass through unchanged.
func (p Parser[T]) WithLabel(name string) Parser[T] {
	return Make(name, func(s *Stream) ParseResult[T] {
		res := p.Run(s)
		if res.IsFailure() {
			relabeled := res.failure.Clone()
			relabeled.Expected = []string{name}
			return FailureFrom[T](relabeled)
		}
		return res
	})
}

// Run invokes p's wrapped function against s.
func (p Parser[T]) Run(s *Stream) ParseResult[T] {
	p.cell.mu.Lock()
	state := p.cell.state
	fn := p.cell.fn
	p.cell.mu.Unlock()
	if state == stateAwaitingRecurse {
		panic(fmt.Sprintf("parsec: parser %q run before Recurse bound its body", p.label))
	}
	return fn(s)
}

// TryRun runs p on a fresh Stream over input, starting at offset zero,
// and, on Failure, returns a *ParserFailure instead of a ParseResult —
// for callers who prefer an idiomatic Go (value, error) return over
// discriminating the sum type themselves. Input left unconsumed after a
// Success is not an error; append Eof to the grammar to require it.
func (p Parser[T]) TryRun(input string, filename ...string) (T, error) {
	name := ""
	if len(filename) > 0 {
		name = filename[0]
	}
	s := NewStream(input, name)
	res := p.Run(s)
	if res.IsFailure() {
		var zero T
		return zero, &ParserFailure{Err: res.FailureInfo()}
	}
	return res.Value(), nil
}
