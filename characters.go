package parsec

import (
	"fmt"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

func foldRune(r rune) rune {
	folded := foldCaser.String(string(r))
	for _, f := range folded {
		return f
	}
	return r
}

// Char consumes exactly c, failing with expected="'c'" otherwise.
func Char(c rune) Parser[string] {
	label := fmt.Sprintf("'%c'", c)
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		ch, ok := s.Peek1()
		if !ok || []rune(ch)[0] != c {
			s.Rollback()
			return Failure[string](label, s)
		}
		s.Take1()
		s.Commit()
		return Success(ch, s)
	})
}

// CharI is Char, case-insensitively: it matches either case of c but
// returns the character actually consumed, case preserved. Case folding
// is Unicode-aware via golang.org/x/text/cases, since the standard
// library's case folding only handles ASCII correctly.
func CharI(c rune) Parser[string] {
	label := fmt.Sprintf("'%c' (case-insensitive)", c)
	want := foldRune(c)
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		ch, ok := s.Peek1()
		if !ok || foldRune([]rune(ch)[0]) != want {
			s.Rollback()
			return Failure[string](label, s)
		}
		s.Take1()
		s.Commit()
		return Success(ch, s)
	})
}

// AnySingle consumes any single character, failing only at EOF.
func AnySingle() Parser[string] {
	label := "any character"
	return Make(label, func(s *Stream) ParseResult[string] {
		ch, ok := s.Take1()
		if !ok {
			return Failure[string](label, s)
		}
		return Success(ch, s)
	})
}

// AnySingleBut consumes any single character except c.
func AnySingleBut(c rune) Parser[string] {
	label := fmt.Sprintf("any character but %q", string(c))
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		ch, ok := s.Peek1()
		if !ok || []rune(ch)[0] == c {
			s.Rollback()
			return Failure[string](label, s)
		}
		s.Take1()
		s.Commit()
		return Success(ch, s)
	})
}

// Satisfy consumes any single character for which pred holds.
func Satisfy(label string, pred func(rune) bool) Parser[string] {
	return Make(label, func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		ch, ok := s.Peek1()
		if !ok || !pred([]rune(ch)[0]) {
			s.Rollback()
			return Failure[string](label, s)
		}
		s.Take1()
		s.Commit()
		return Success(ch, s)
	})
}

func isDigit(r rune) bool        { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool     { return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
func isAlpha(r rune) bool        { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAlphaNumeric(r rune) bool { return isAlpha(r) || isDigit(r) }

// DigitChar parses a single decimal digit: 0-9.
func DigitChar() Parser[string] { return Satisfy("digit", isDigit) }

// HexDigitChar parses a single hexadecimal digit: 0-9, a-f, A-F.
func HexDigitChar() Parser[string] { return Satisfy("hexadecimal digit", isHexDigit) }

// AlphaChar parses a single ASCII letter: a-z, A-Z.
func AlphaChar() Parser[string] { return Satisfy("letter", isAlpha) }

// AlphaNumChar parses a single ASCII letter or digit.
func AlphaNumChar() Parser[string] { return Satisfy("letter or digit", isAlphaNumeric) }

// Space parses a single ASCII space character.
func Space() Parser[string] { return Satisfy("space", func(r rune) bool { return r == ' ' }) }

// Tab parses a single tab character.
func Tab() Parser[string] { return Satisfy("tab", func(r rune) bool { return r == '\t' }) }

// Newline parses a single line feed character.
func Newline() Parser[string] { return Satisfy("newline", func(r rune) bool { return r == '\n' }) }

// Eol parses a newline symbol: either LF ("\n") or CRLF ("\r\n"),
// always returning "\n".
func Eol() Parser[string] {
	crlf := Make[string]("CRLF", func(s *Stream) ParseResult[string] {
		s.BeginTransaction()
		two, ok := s.PeekN(2)
		if !ok || two != "\r\n" {
			s.Rollback()
			return Failure[string]("CRLF", s)
		}
		s.TakeN(2)
		s.Commit()
		return Success("\n", s)
	})
	return Either(Newline(), crlf).WithLabel("end of line")
}

// Eof succeeds, consuming nothing, iff the Stream is at EOF.
func Eof() Parser[struct{}] {
	label := "end of input"
	return Make(label, func(s *Stream) ParseResult[struct{}] {
		if !s.IsEOF() {
			return Failure[struct{}](label, s)
		}
		return Success(struct{}{}, s)
	})
}

// OneOfS matches any single character present in chars.
func OneOfS(chars string) Parser[string] {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	label := fmt.Sprintf("one of %q", chars)
	return Satisfy(label, func(r rune) bool {
		_, ok := set[r]
		return ok
	})
}

// NoneOfS matches any single character absent from chars.
func NoneOfS(chars string) Parser[string] {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	label := fmt.Sprintf("none of %q", chars)
	return Satisfy(label, func(r rune) bool {
		_, bad := set[r]
		return !bad
	})
}

// Pure always succeeds with value v, consuming nothing.
func Pure[T any](v T) Parser[T] {
	return Make("pure", func(s *Stream) ParseResult[T] {
		return Success(v, s)
	})
}

// Succeed always succeeds with the empty string, consuming nothing.
func Succeed() Parser[string] { return Pure("") }

// Fail always fails with the given label, consuming nothing.
func Fail[T any](label string) Parser[T] {
	return Make(label, func(s *Stream) ParseResult[T] {
		return Failure[T](label, s)
	})
}
