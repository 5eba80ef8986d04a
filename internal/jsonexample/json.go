// Package jsonexample is a JSON parser defined purely as a composition
// over parsec's combinators: full escape handling in strings, full
// number syntax (sign, fraction, exponent), arrays and objects.
package jsonexample

import (
	"strconv"
	"strings"

	"github.com/gopherparse/parsec"
)

// Kind discriminates the variant a Value holds.
type Kind string

const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Value is a parsed JSON value. Exactly the fields matching Kind are
// meaningful; the rest hold zero values.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	String string
	Array  []Value
	Object map[string]Value
}

// ParseJSON parses input as a single JSON value, failing if trailing
// non-whitespace remains.
func ParseJSON(input string) (Value, error) {
	return root.TryRun(input)
}

var root = parsec.Terminated(value, parsec.Preceded(ws(), parsec.Eof()))

var value = parsec.Recursive[Value]("json value")

func init() {
	value.Recurse(valueBody(value, nil))
}

// valueBody builds the production Choice shared by the package's plain
// grammar and TracedValue. self is the recursive reference array/object
// elements parse through; passing the traced cell in from TracedValue is
// what makes wrap observe nested matches too, not just the outermost one.
//
// wrap, if non-nil, is applied around each named production before it
// joins the Choice — trace.Attach is the production consumer of this
// seam, but any parsec.Emit-based observer fits the same shape.
func valueBody(self parsec.Parser[Value], wrap func(label string, p parsec.Parser[Value]) parsec.Parser[Value]) parsec.Parser[Value] {
	if wrap == nil {
		wrap = func(_ string, p parsec.Parser[Value]) parsec.Parser[Value] { return p }
	}
	return parsec.Preceded(ws(), parsec.Choice(
		wrap("null", nullValue()),
		wrap("bool", boolValue()),
		wrap("number", numberValue()),
		wrap("string", stringValue()),
		wrap("array", arrayValue(self)),
		wrap("object", objectValue(self)),
	))
}

// TracedValue returns a fresh top-level JSON value parser (independent
// of the one ParseJSON uses) with wrap applied around every production —
// including nested array/object elements, since those recurse through
// the same cell this grammar is built on. Callers that don't need
// tracing should use ParseJSON instead; this exists for consumers like
// the CLI's trace command that want to observe each match as it happens.
func TracedValue(wrap func(label string, p parsec.Parser[Value]) parsec.Parser[Value]) parsec.Parser[Value] {
	traced := parsec.Recursive[Value]("json value")
	traced.Recurse(valueBody(traced, wrap))
	return parsec.Terminated(traced, parsec.Preceded(ws(), parsec.Eof()))
}

func ws() parsec.Parser[struct{}] {
	return parsec.Make("whitespace", func(s *parsec.Stream) parsec.ParseResult[struct{}] {
		s.TakeWhile(func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		return parsec.Success(struct{}{}, s)
	})
}

// token lexes p preceded by (and, for punctuation, trailed by the next
// token's own leading) whitespace — the usual recursive-descent trick
// of attaching skip-whitespace to every token rather than threading it
// explicitly through every grammar rule.
func token[T any](p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Preceded(ws(), p)
}

func symbol(s string) parsec.Parser[string] { return token(parsec.String(s)) }
func punct(c rune) parsec.Parser[string]    { return token(parsec.Char(c)) }

func joinStrings(parts []string) string { return strings.Join(parts, "") }

func nullValue() parsec.Parser[Value] {
	return parsec.Assign(Value{Kind: KindNull}, symbol("null"))
}

func boolValue() parsec.Parser[Value] {
	return parsec.Either(
		parsec.Assign(Value{Kind: KindBool, Bool: true}, symbol("true")),
		parsec.Assign(Value{Kind: KindBool, Bool: false}, symbol("false")),
	)
}

// numberValue parses a sign, an integer part, an optional fractional
// part, and an optional exponent, converting to a float64 via the
// monadic Bind (the conversion can fail, which is why it cannot be a
// plain Map).
func numberValue() parsec.Parser[Value] {
	digits := parsec.Map(parsec.Many1(parsec.DigitChar()), joinStrings)

	sign := parsec.Optional(parsec.Char('-'))
	intPart := parsec.Choice(parsec.String("0"), digits)
	fracPart := parsec.Optional(parsec.Map(
		parsec.Pair(parsec.Char('.'), digits),
		func(pc parsec.PairContainer[string, string]) string { return pc.Left + pc.Right },
	))
	expPart := parsec.Optional(parsec.Map(
		parsec.Pair(
			parsec.Either(parsec.Char('e'), parsec.Char('E')),
			parsec.Pair(parsec.Optional(parsec.Either(parsec.Char('+'), parsec.Char('-'))), digits),
		),
		func(pc parsec.PairContainer[string, parsec.PairContainer[string, string]]) string {
			return "e" + pc.Right.Left + pc.Right.Right
		},
	))

	raw := token(parsec.Assemble(sign, intPart, fracPart, expPart))

	return parsec.Bind(raw, func(literal string) parsec.Parser[Value] {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return parsec.Fail[Value]("a valid JSON number")
		}
		return parsec.Pure(Value{Kind: KindNumber, Number: f})
	})
}

func stringValue() parsec.Parser[Value] {
	return parsec.Map(stringLiteral(), func(s string) Value {
		return Value{Kind: KindString, String: s}
	})
}

// stringLiteral parses a double-quoted string with backslash escapes
// for `"`, `\`, `/`, `n`, `t`, `r`, `b`, `f`, and `uXXXX`.
func stringLiteral() parsec.Parser[string] {
	normalChar := parsec.Satisfy("character", func(r rune) bool { return r != '"' && r != '\\' })
	escapeChar := parsec.Preceded(parsec.Char('\\'), parsec.Bind(parsec.AnySingle(), decodeEscape))
	chars := parsec.Map(parsec.Many(parsec.Either(escapeChar, normalChar)), joinStrings)
	return token(parsec.Between(parsec.Char('"'), parsec.Char('"'), chars))
}

func decodeEscape(esc string) parsec.Parser[string] {
	switch esc {
	case `"`:
		return parsec.Pure(`"`)
	case `\`:
		return parsec.Pure(`\`)
	case "/":
		return parsec.Pure("/")
	case "n":
		return parsec.Pure("\n")
	case "t":
		return parsec.Pure("\t")
	case "r":
		return parsec.Pure("\r")
	case "b":
		return parsec.Pure("\b")
	case "f":
		return parsec.Pure("\f")
	case "u":
		return unicodeEscape()
	default:
		return parsec.Fail[string]("a valid escape sequence")
	}
}

func unicodeEscape() parsec.Parser[string] {
	hex := parsec.Map(parsec.Repeat(4, parsec.HexDigitChar()), joinStrings)
	return parsec.Bind(hex, func(digits string) parsec.Parser[string] {
		n, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return parsec.Fail[string]("4 hexadecimal digits")
		}
		return parsec.Pure(string(rune(n)))
	})
}

func arrayValue(self parsec.Parser[Value]) parsec.Parser[Value] {
	elements := parsec.SepBy(self, punct(','))
	return parsec.Map(
		parsec.Between(symbol("["), punct(']'), elements),
		func(vs []Value) Value { return Value{Kind: KindArray, Array: vs} },
	)
}

func objectValue(self parsec.Parser[Value]) parsec.Parser[Value] {
	key := stringLiteral()
	entry := parsec.SeparatedPair(key, punct(':'), self)
	entries := parsec.SepBy(entry, punct(','))
	return parsec.Map(
		parsec.Between(symbol("{"), punct('}'), entries),
		func(pairs []parsec.PairContainer[string, Value]) Value {
			obj := make(map[string]Value, len(pairs))
			for _, kv := range pairs {
				obj[kv.Left] = kv.Right
			}
			return Value{Kind: KindObject, Object: obj}
		},
	)
}
