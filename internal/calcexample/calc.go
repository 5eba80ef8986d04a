// Package calcexample is a small arithmetic grammar built purely over
// parsec's combinators and its Expression precedence-climbing builder,
// exercising InfixLeft and Prefix levels together.
package calcexample

import (
	"strconv"

	"github.com/gopherparse/parsec"
)

// Eval parses and evaluates a single arithmetic expression: `+ - * /`
// at their usual precedence and associativity, unary `-`, and
// parenthesized sub-expressions.
func Eval(input string) (float64, error) {
	return expr.TryRun(input)
}

var expr = parsec.Terminated(expression, parsec.Preceded(ws(), parsec.Eof()))

var expression = parsec.Recursive[float64]("arithmetic expression")

func init() {
	plus := parsec.BinaryOperator[float64]{Symbol: symbol("+"), Apply: func(l, r float64) float64 { return l + r }}
	minus := parsec.BinaryOperator[float64]{Symbol: symbol("-"), Apply: func(l, r float64) float64 { return l - r }}
	times := parsec.BinaryOperator[float64]{Symbol: symbol("*"), Apply: func(l, r float64) float64 { return l * r }}
	divide := parsec.BinaryOperator[float64]{Symbol: symbol("/"), Apply: func(l, r float64) float64 { return l / r }}
	negate := parsec.UnaryOperator[float64]{Symbol: symbol("-"), Apply: func(v float64) float64 { return -v }}

	table := []parsec.Level[float64]{
		parsec.InfixLeftLevel(plus, minus),
		parsec.InfixLeftLevel(times, divide),
		parsec.PrefixLevel(negate),
	}

	expression.Recurse(parsec.Expression(term(), table))
}

func term() parsec.Parser[float64] {
	return parsec.Choice(
		parenthesized(),
		number(),
	)
}

func parenthesized() parsec.Parser[float64] {
	return parsec.Between(symbol("("), symbol(")"), expression)
}

func number() parsec.Parser[float64] {
	digits := parsec.Map(parsec.Many1(parsec.DigitChar()), joinDigits)
	fraction := parsec.Optional(parsec.Map(
		parsec.Pair(parsec.Char('.'), digits),
		func(pc parsec.PairContainer[string, string]) string { return "." + pc.Right },
	))
	literal := parsec.Assemble(digits, fraction)
	return parsec.Bind(token(literal), func(s string) parsec.Parser[float64] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return parsec.Fail[float64]("a valid number")
		}
		return parsec.Pure(f)
	})
}

func ws() parsec.Parser[struct{}] {
	return parsec.Make("whitespace", func(s *parsec.Stream) parsec.ParseResult[struct{}] {
		s.TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
		return parsec.Success(struct{}{}, s)
	})
}

func token[T any](p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Preceded(ws(), p)
}

func symbol(s string) parsec.Parser[string] { return token(parsec.String(s)) }

func joinDigits(ds []string) string {
	out := ""
	for _, d := range ds {
		out += d
	}
	return out
}
