package parsec

import "fmt"

// FollowedBy runs p, then q on the remainder, returning q's value. A
// failure from either propagates with a label indicating which of the
// two failed.
func FollowedBy[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	label := fmt.Sprintf("%s followed by %s", p.label, q.label)
	return Make(label, func(s *Stream) ParseResult[B] {
		first := p.Run(s)
		if first.IsFailure() {
			return FailureFrom[B](first.FailureInfo())
		}
		return q.Run(s)
	})
}

// KeepFirst runs both p and q in order, but returns p's value; it fails
// if either fails.
func KeepFirst[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	label := fmt.Sprintf("%s (then discard %s)", p.label, q.label)
	return Make(label, func(s *Stream) ParseResult[A] {
		first := p.Run(s)
		if first.IsFailure() {
			return first
		}
		second := q.Run(s)
		if second.IsFailure() {
			return FailureFrom[A](second.FailureInfo())
		}
		return Success(first.Value(), s)
	})
}

// Sequence runs a homogeneous list of parsers in order, returning their
// values as a slice. It is atomic: any failure rolls the Stream back to
// the position Sequence started at.
func Sequence[T any](parsers ...Parser[T]) Parser[[]T] {
	return Make("sequence", func(s *Stream) ParseResult[[]T] {
		s.BeginTransaction()
		values := make([]T, 0, len(parsers))
		for _, p := range parsers {
			res := p.Run(s)
			if res.IsFailure() {
				s.Rollback()
				return FailureFrom[[]T](res.FailureInfo())
			}
			values = append(values, res.Value())
		}
		s.Commit()
		return Success(values, s)
	})
}

// Pair runs left then right, returning both values together.
func Pair[L, R any](left Parser[L], right Parser[R]) Parser[PairContainer[L, R]] {
	label := fmt.Sprintf("pair(%s, %s)", left.label, right.label)
	return Make(label, func(s *Stream) ParseResult[PairContainer[L, R]] {
		s.BeginTransaction()
		l := left.Run(s)
		if l.IsFailure() {
			s.Rollback()
			return FailureFrom[PairContainer[L, R]](l.FailureInfo())
		}
		r := right.Run(s)
		if r.IsFailure() {
			s.Rollback()
			return FailureFrom[PairContainer[L, R]](r.FailureInfo())
		}
		s.Commit()
		return Success(PairContainer[L, R]{Left: l.Value(), Right: r.Value()}, s)
	})
}

// SeparatedPair runs left, then sep (discarding its value), then right,
// returning the left and right values together.
func SeparatedPair[L, S, R any](left Parser[L], sep Parser[S], right Parser[R]) Parser[PairContainer[L, R]] {
	label := fmt.Sprintf("separated pair(%s, %s)", left.label, right.label)
	return Make(label, func(s *Stream) ParseResult[PairContainer[L, R]] {
		s.BeginTransaction()
		l := left.Run(s)
		if l.IsFailure() {
			s.Rollback()
			return FailureFrom[PairContainer[L, R]](l.FailureInfo())
		}
		sepRes := sep.Run(s)
		if sepRes.IsFailure() {
			s.Rollback()
			return FailureFrom[PairContainer[L, R]](sepRes.FailureInfo())
		}
		r := right.Run(s)
		if r.IsFailure() {
			s.Rollback()
			return FailureFrom[PairContainer[L, R]](r.FailureInfo())
		}
		s.Commit()
		return Success(PairContainer[L, R]{Left: l.Value(), Right: r.Value()}, s)
	})
}

// Preceded parses and discards a result from the prefix parser, then
// parses and returns a result from the main parser.
func Preceded[P, O any](prefix Parser[P], parser Parser[O]) Parser[O] {
	return Make(parser.label, func(s *Stream) ParseResult[O] {
		s.BeginTransaction()
		prefixRes := prefix.Run(s)
		if prefixRes.IsFailure() {
			s.Rollback()
			return FailureFrom[O](prefixRes.FailureInfo())
		}
		res := parser.Run(s)
		if res.IsFailure() {
			s.Rollback()
			return FailureFrom[O](res.FailureInfo())
		}
		s.Commit()
		return res
	})
}

// Terminated parses a result from the main parser, then parses and
// discards a result from the suffix parser, returning the main result.
func Terminated[O, Suf any](parser Parser[O], suffix Parser[Suf]) Parser[O] {
	return Make(parser.label, func(s *Stream) ParseResult[O] {
		s.BeginTransaction()
		res := parser.Run(s)
		if res.IsFailure() {
			s.Rollback()
			return res
		}
		suffixRes := suffix.Run(s)
		if suffixRes.IsFailure() {
			s.Rollback()
			return FailureFrom[O](suffixRes.FailureInfo())
		}
		s.Commit()
		return Success(res.Value(), s)
	})
}

// Between runs open, then p, then close, returning p's value.
func Between[OP, O, CP any](open Parser[OP], close_ Parser[CP], p Parser[O]) Parser[O] {
	return Terminated(Preceded(open, p), close_)
}

// Append concatenates two string-valued parsers' outputs.
func Append(p, q Parser[string]) Parser[string] {
	label := p.label + q.label
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		l := p.Run(s)
		if l.IsFailure() {
			s.Rollback()
			return l
		}
		r := q.Run(s)
		if r.IsFailure() {
			s.Rollback()
			return r
		}
		s.Commit()
		return Success(l.Value()+r.Value(), s)
	})
}

// Assemble concatenates an arbitrary number of string-valued parsers'
// outputs, in order.
func Assemble(parsers ...Parser[string]) Parser[string] {
	return Make("assemble", func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		var b []byte
		for _, p := range parsers {
			res := p.Run(s)
			if res.IsFailure() {
				s.Rollback()
				return res
			}
			b = append(b, res.Value()...)
		}
		s.Commit()
		return Success(string(b), s)
	})
}

// VoidLeft replaces a successful parse's value with the constant v.
func VoidLeft[T, V any](p Parser[T], v V) Parser[V] {
	return Make(p.label, func(s *Stream) ParseResult[V] {
		res := p.Run(s)
		if res.IsFailure() {
			return FailureFrom[V](res.FailureInfo())
		}
		return Success(v, s)
	})
}
