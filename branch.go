package parsec

import "fmt"

// Try wraps p so that it always restores the Stream on failure,
// regardless of how much input p's internals consumed before failing.
// Either/Choice only retries a sibling branch when the failed branch
// consumed nothing (predictive, LL(1)-style commitment); Try is how a
// grammar author opts a branch into full backtracking instead.
func Try[T any](p Parser[T]) Parser[T] {
	return Make(p.label, func(s *Stream) ParseResult[T] {
		s.BeginTransaction()
		res := p.Run(s)
		if res.IsFailure() {
			s.Rollback()
			return res
		}
		s.Commit()
		return res
	})
}

// Either tries p, and only if p failed without consuming any input,
// tries q. If p consumed input before failing, that failure is reported
// directly — the caller must wrap p in Try for unbounded backtracking.
// If both fail without consuming input, the combined expected label is
// "(expected-of-p or expected-of-q)", anchored at the original position.
func Either[T any](p, q Parser[T]) Parser[T] {
	label := fmt.Sprintf("(%s or %s)", p.label, q.label)
	return Make(label, func(s *Stream) ParseResult[T] {
		before := markOffset(s)

		res := p.Run(s)
		if res.IsSuccess() {
			return res
		}
		if markOffset(s) != before {
			return res
		}
		if res.FailureInfo().IsFatal() {
			return res
		}

		res2 := q.Run(s)
		if res2.IsSuccess() {
			return res2
		}
		if markOffset(s) != before {
			return res2
		}

		combined := res.FailureInfo().Clone()
		combined.Add(res2.FailureInfo())
		combined.Expected = []string{fmt.Sprintf("(%s)", joinExpected(combined.Expected))}
		at := NewError(s)
		combined.Got, combined.Pos = at.Got, at.Pos
		return FailureFrom[T](combined)
	})
}

// Choice tries each parser in order, returning the first success; if
// every alternative fails, it reports the combined expected set the way
// Either does, folding left to right.
func Choice[T any](first Parser[T], rest ...Parser[T]) Parser[T] {
	acc := first
	for _, p := range rest {
		acc = Either(acc, p)
	}
	return acc
}

// Optional succeeds with p's value if p succeeds; otherwise it succeeds
// with the zero value of T and consumes nothing (p must have consumed
// nothing to fail, or the zero-value fallback would hide a partial,
// predictively-committed parse — callers needing that still see the
// underlying Failure instead).
func Optional[T any](p Parser[T]) Parser[T] {
	return Make("optional "+p.label, func(s *Stream) ParseResult[T] {
		before := markOffset(s)
		res := p.Run(s)
		if res.IsSuccess() {
			return res
		}
		if markOffset(s) != before {
			return res
		}
		var zero T
		return Success(zero, s)
	})
}

// NotFollowedBy succeeds, consuming nothing, iff p would fail at the
// current position. It always restores the Stream, whether p succeeded
// or failed.
func NotFollowedBy[T any](p Parser[T]) Parser[struct{}] {
	label := "not followed by " + p.label
	return Make(label, func(s *Stream) ParseResult[struct{}] {
		s.BeginTransaction()
		res := p.Run(s)
		s.Rollback()
		if res.IsSuccess() {
			return Failure[struct{}](label, s)
		}
		return Success(struct{}{}, s)
	})
}

// LookAhead runs p for its value or failure but always restores the
// Stream afterward, whether p succeeded or failed.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return Make(p.label, func(s *Stream) ParseResult[T] {
		s.BeginTransaction()
		res := p.Run(s)
		s.Rollback()
		if res.IsFailure() {
			return res
		}
		return Success(res.Value(), s)
	})
}

func markOffset(s *Stream) int { return s.offset }

func joinExpected(labels []string) string {
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += " or "
		}
		out += l
	}
	return out
}
