package parsec

import "fmt"

// Many collects zero or more successive matches of p, stopping at the
// first failure. A failure that consumed input is a hard failure and
// propagates (predictive parsing, matching Either's discipline);
// otherwise Many simply stops there and succeeds with what it has so
// far.
//
// A success that consumes no input is treated as a configuration error
// rather than looped forever, since a grammar like Many(Optional(...))
// would otherwise never terminate.
func Many[T any](p Parser[T]) Parser[[]T] {
	label := "many(" + p.label + ")"
	return Make(label, func(s *Stream) ParseResult[[]T] {
		values := make([]T, 0)
		for {
			before := markOffset(s)
			res := p.Run(s)
			if res.IsFailure() {
				if markOffset(s) != before {
					return FailureFrom[[]T](res.FailureInfo())
				}
				return Success(values, s)
			}
			if markOffset(s) == before {
				panic(fmt.Sprintf("parsec: Many(%s) made no progress; wrap the inner parser so it always consumes or fails", p.label))
			}
			values = append(values, res.Value())
		}
	})
}

// Many1 is Many but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	label := "many1(" + p.label + ")"
	many := Many(p)
	return Make(label, func(s *Stream) ParseResult[[]T] {
		res := many.Run(s)
		if res.IsFailure() {
			return res
		}
		if len(res.Value()) == 0 {
			return Failure[[]T](label, s)
		}
		return res
	})
}

// Repeat applies p exactly n times, failing if any application fails.
func Repeat[T any](n int, p Parser[T]) Parser[[]T] {
	label := fmt.Sprintf("repeat(%d, %s)", n, p.label)
	return Make(label, func(s *Stream) ParseResult[[]T] {
		values := make([]T, 0, n)
		for i := 0; i < n; i++ {
			res := p.Run(s)
			if res.IsFailure() {
				return FailureFrom[[]T](res.FailureInfo())
			}
			values = append(values, res.Value())
		}
		return Success(values, s)
	})
}

// SepBy collects zero or more matches of p separated by sep, returning
// just the element values. It succeeds with an empty slice if p does
// not match at all.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	label := "sepBy(" + p.label + ")"
	return Make(label, func(s *Stream) ParseResult[[]T] {
		values := make([]T, 0)

		first := p.Run(s)
		if first.IsFailure() {
			return Success(values, s)
		}
		values = append(values, first.Value())

		for {
			before := markOffset(s)
			sepRes := sep.Run(s)
			if sepRes.IsFailure() {
				if markOffset(s) != before {
					return FailureFrom[[]T](sepRes.FailureInfo())
				}
				return Success(values, s)
			}
			elemRes := p.Run(s)
			if elemRes.IsFailure() {
				return FailureFrom[[]T](elemRes.FailureInfo())
			}
			values = append(values, elemRes.Value())
		}
	})
}

// SepBy1 is SepBy but requires at least one element.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	label := "sepBy1(" + p.label + ")"
	many := SepBy(p, sep)
	return Make(label, func(s *Stream) ParseResult[[]T] {
		res := many.Run(s)
		if res.IsFailure() {
			return res
		}
		if len(res.Value()) == 0 {
			return Failure[[]T](label, s)
		}
		return res
	})
}
