package parsec

import "fmt"

// LevelKind names the five shapes a precedence level can take.
type LevelKind int

const (
	InfixLeft LevelKind = iota
	InfixRight
	InfixNone
	Prefix
	Postfix
)

// BinaryOperator pairs a symbol parser with the two-argument function
// it builds when matched, for an infix level.
type BinaryOperator[T any] struct {
	Symbol Parser[string]
	Apply  func(left, right T) T
}

// UnaryOperator pairs a symbol parser with the one-argument function it
// builds when matched, for a prefix or postfix level.
type UnaryOperator[T any] struct {
	Symbol Parser[string]
	Apply  func(operand T) T
}

// Level is one precedence level: InfixLeft/InfixRight/InfixNone levels
// carry Binary operators, Prefix/Postfix levels carry Unary ones.
type Level[T any] struct {
	Kind   LevelKind
	Binary []BinaryOperator[T]
	Unary  []UnaryOperator[T]
}

// InfixLeftLevel builds a left-associative infix level: a op b op c =
// (a op b) op c.
func InfixLeftLevel[T any](ops ...BinaryOperator[T]) Level[T] {
	return Level[T]{Kind: InfixLeft, Binary: ops}
}

// InfixRightLevel builds a right-associative infix level: a op b op c =
// a op (b op c).
func InfixRightLevel[T any](ops ...BinaryOperator[T]) Level[T] {
	return Level[T]{Kind: InfixRight, Binary: ops}
}

// InfixNoneLevel builds a non-associative infix level: at most one
// application of an operator from this level is allowed; chaining two
// is a parse failure.
func InfixNoneLevel[T any](ops ...BinaryOperator[T]) Level[T] {
	return Level[T]{Kind: InfixNone, Binary: ops}
}

// PrefixLevel builds a prefix level, folded right to left: `- - x` =
// `-(-(x))`.
func PrefixLevel[T any](ops ...UnaryOperator[T]) Level[T] {
	return Level[T]{Kind: Prefix, Unary: ops}
}

// PostfixLevel builds a postfix level, folded left to right: `x ! !` =
// `(x!)!`.
func PostfixLevel[T any](ops ...UnaryOperator[T]) Level[T] {
	return Level[T]{Kind: Postfix, Unary: ops}
}

// Expression builds a single Parser for expressions, given a parser for
// terms (atoms: literals, identifiers, parenthesized sub-expressions)
// and an ordered table of precedence levels from lowest to highest
// precedence. table is processed back to front: the last (highest
// precedence) level wraps term directly, so it binds tightest, and each
// preceding level wraps that in turn, ending with the first (lowest
// precedence) level on the outside.
func Expression[T any](term Parser[T], table []Level[T]) Parser[T] {
	current := term
	for i := len(table) - 1; i >= 0; i-- {
		level := table[i]
		switch level.Kind {
		case Prefix:
			current = prefixLevel(level.Unary, current)
		case Postfix:
			current = postfixLevel(level.Unary, current)
		case InfixLeft:
			current = infixLeftLevel(level.Binary, current)
		case InfixRight:
			current = infixRightLevel(level.Binary, current)
		case InfixNone:
			current = infixNoneLevel(level.Binary, current)
		default:
			panic(fmt.Sprintf("parsec: unknown precedence level kind %d", level.Kind))
		}
	}
	return current
}

func unaryOpParser[T any](ops []UnaryOperator[T]) Parser[func(T) T] {
	choices := make([]Parser[func(T) T], len(ops))
	for i, op := range ops {
		choices[i] = VoidLeft(op.Symbol, op.Apply)
	}
	return Choice(choices[0], choices[1:]...)
}

func binaryOpParser[T any](ops []BinaryOperator[T]) Parser[func(T, T) T] {
	choices := make([]Parser[func(T, T) T], len(ops))
	for i, op := range ops {
		choices[i] = VoidLeft(op.Symbol, op.Apply)
	}
	return Choice(choices[0], choices[1:]...)
}

func prefixLevel[T any](ops []UnaryOperator[T], inner Parser[T]) Parser[T] {
	opParser := unaryOpParser(ops)
	prefixes := Many(opParser)
	return Make("prefix expression", func(s *Stream) ParseResult[T] {
		prefixRes := prefixes.Run(s)
		if prefixRes.IsFailure() {
			return FailureFrom[T](prefixRes.FailureInfo())
		}
		innerRes := inner.Run(s)
		if innerRes.IsFailure() {
			return innerRes
		}
		value := innerRes.Value()
		fns := prefixRes.Value()
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return Success(value, s)
	})
}

func postfixLevel[T any](ops []UnaryOperator[T], inner Parser[T]) Parser[T] {
	opParser := unaryOpParser(ops)
	suffixes := Many(opParser)
	return Make("postfix expression", func(s *Stream) ParseResult[T] {
		innerRes := inner.Run(s)
		if innerRes.IsFailure() {
			return innerRes
		}
		suffixRes := suffixes.Run(s)
		if suffixRes.IsFailure() {
			return FailureFrom[T](suffixRes.FailureInfo())
		}
		value := innerRes.Value()
		for _, fn := range suffixRes.Value() {
			value = fn(value)
		}
		return Success(value, s)
	})
}

func infixLeftLevel[T any](ops []BinaryOperator[T], inner Parser[T]) Parser[T] {
	opParser := binaryOpParser(ops)
	rest := Many(Pair(opParser, inner))
	return Make("left-associative infix expression", func(s *Stream) ParseResult[T] {
		firstRes := inner.Run(s)
		if firstRes.IsFailure() {
			return firstRes
		}
		restRes := rest.Run(s)
		if restRes.IsFailure() {
			return FailureFrom[T](restRes.FailureInfo())
		}
		acc := firstRes.Value()
		for _, pc := range restRes.Value() {
			acc = pc.Left(acc, pc.Right)
		}
		return Success(acc, s)
	})
}

func infixRightLevel[T any](ops []BinaryOperator[T], inner Parser[T]) Parser[T] {
	opParser := binaryOpParser(ops)
	rest := Many(Pair(opParser, inner))
	return Make("right-associative infix expression", func(s *Stream) ParseResult[T] {
		firstRes := inner.Run(s)
		if firstRes.IsFailure() {
			return firstRes
		}
		restRes := rest.Run(s)
		if restRes.IsFailure() {
			return FailureFrom[T](restRes.FailureInfo())
		}
		pairs := restRes.Value()
		if len(pairs) == 0 {
			return Success(firstRes.Value(), s)
		}

		values := make([]T, 0, len(pairs)+1)
		ops := make([]func(T, T) T, 0, len(pairs))
		values = append(values, firstRes.Value())
		for _, pc := range pairs {
			ops = append(ops, pc.Left)
			values = append(values, pc.Right)
		}

		acc := values[len(values)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			acc = ops[i](values[i], acc)
		}
		return Success(acc, s)
	})
}

func infixNoneLevel[T any](ops []BinaryOperator[T], inner Parser[T]) Parser[T] {
	opParser := binaryOpParser(ops)
	return Make("non-associative infix expression", func(s *Stream) ParseResult[T] {
		firstRes := inner.Run(s)
		if firstRes.IsFailure() {
			return firstRes
		}

		before := markOffset(s)
		opRes := opParser.Run(s)
		if opRes.IsFailure() {
			if markOffset(s) != before {
				return FailureFrom[T](opRes.FailureInfo())
			}
			return Success(firstRes.Value(), s)
		}

		secondRes := inner.Run(s)
		if secondRes.IsFailure() {
			return secondRes
		}
		combined := opRes.Value()(firstRes.Value(), secondRes.Value())

		// A second consecutive application at the same non-associative
		// level is a parse failure, reported at the position just past that
		// second operator rather than at the start of the whole expression.
		again := opParser.Run(s)
		if again.IsSuccess() {
			return Failure[T]("non-associative operator used associatively", s)
		}

		return Success(combined, s)
	})
}
