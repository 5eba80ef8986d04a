package parsec

import "fmt"

// String consumes s verbatim. It is atomic: on failure the Stream is
// left exactly where it started, regardless of how many characters
// matched before the mismatch.
func String(s string) Parser[string] {
	if s == "" {
		panic("parsec: String called with an empty string")
	}
	label := fmt.Sprintf("%q", s)
	n := len([]rune(s))
	return Make(label, func(in *Stream) ParseResult[string] {
		in.BeginTransaction()
		got, ok := in.PeekN(n)
		if !ok || got != s {
			in.Rollback()
			return Failure[string](label, in)
		}
		in.TakeN(n)
		in.Commit()
		return Success(got, in)
	})
}

// StringI is String, case-insensitively: it matches s regardless of
// case but returns the text actually consumed, case preserved.
func StringI(s string) Parser[string] {
	if s == "" {
		panic("parsec: StringI called with an empty string")
	}
	label := fmt.Sprintf("%q (case-insensitive)", s)
	want := []rune(s)
	folded := make([]rune, len(want))
	for i, r := range want {
		folded[i] = foldRune(r)
	}
	n := len(want)
	return Make(label, func(in *Stream) ParseResult[string] {
		in.BeginTransaction()
		got, ok := in.PeekN(n)
		if !ok {
			in.Rollback()
			return Failure[string](label, in)
		}
		gotRunes := []rune(got)
		if len(gotRunes) != n {
			in.Rollback()
			return Failure[string](label, in)
		}
		for i, r := range gotRunes {
			if foldRune(r) != folded[i] {
				in.Rollback()
				return Failure[string](label, in)
			}
		}
		in.TakeN(n)
		in.Commit()
		return Success(got, in)
	})
}
