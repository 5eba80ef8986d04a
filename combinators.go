package parsec

// Map transforms a successful parse's value through f; a Failure passes
// through unchanged. Map is a free function rather than a method
// because Go's generic methods cannot introduce a new type parameter.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Make(p.label, func(s *Stream) ParseResult[U] {
		return MapResult(p.Run(s), f)
	})
}

// Construct is shorthand for Map(p, build), named for its common use
// wrapping a parsed value in an AST node constructor.
func Construct[T, U any](p Parser[T], build func(T) U) Parser[U] {
	return Map(p, build)
}

// Assign replaces a successful parse's value with the constant v,
// discarding whatever p actually matched. It is the combinator behind
// keyword-literal parsers such as `null` / `true` / `false` in the JSON
// demo grammar (internal/jsonexample).
func Assign[T, V any](v V, p Parser[T]) Parser[V] {
	return VoidLeft(p, v)
}

// Bind is the monadic bind: it runs p, feeds its value to f to obtain
// the next parser, and runs that parser on the remainder. Because the
// continuation's parser depends on a runtime value, Bind cannot be
// statically monomorphized the way Map or Sequence can — this is the
// one place in the core where indirection through a function value is
// unavoidable.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return Make(p.label, func(s *Stream) ParseResult[U] {
		res := p.Run(s)
		if res.IsFailure() {
			return FailureFrom[U](res.FailureInfo())
		}
		return f(res.Value()).Run(s)
	})
}

// Apply is applicative application: pf must produce a function of one
// argument, which is applied to px's value.
func Apply[A, B any](pf Parser[func(A) B], px Parser[A]) Parser[B] {
	return Make(pf.label, func(s *Stream) ParseResult[B] {
		fRes := pf.Run(s)
		if fRes.IsFailure() {
			return FailureFrom[B](fRes.FailureInfo())
		}
		xRes := px.Run(s)
		if xRes.IsFailure() {
			return FailureFrom[B](xRes.FailureInfo())
		}
		return Success(fRes.Value()(xRes.Value()), s)
	})
}

// Label replaces p's expected-label on failure with name, leaving a
// Success untouched — the free-function form of Parser.WithLabel.
func Label[T any](p Parser[T], name string) Parser[T] {
	return p.WithLabel(name)
}

// Emit is the identity combinator in terms of parse result, but calls
// sink with every successfully parsed value — an observation hook for
// tracing (see internal/trace) without perturbing the grammar.
func Emit[T any](p Parser[T], sink func(T)) Parser[T] {
	return Make(p.label, func(s *Stream) ParseResult[T] {
		res := p.Run(s)
		if res.IsSuccess() {
			sink(res.Value())
		}
		return res
	})
}
