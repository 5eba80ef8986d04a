package calcexample

import (
	"fmt"
	"math"

	"github.com/gopherparse/parsec"
)

// LevelConfig describes one precedence level of a custom operator
// table as loaded from YAML by cmd/parsec's --table flag: a level kind
// ("infixLeft", "infixRight" or "prefix") and the operator symbols that
// belong to it, drawn from a fixed set (binary `+ - * / %`, unary `-`).
// Levels are listed lowest to highest precedence, same as Expression's
// table parameter.
type LevelConfig struct {
	Kind      string   `yaml:"kind"`
	Operators []string `yaml:"operators"`
}

// TableConfig is the top-level shape of a custom operator-table file.
type TableConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

var knownBinary = map[string]func(l, r float64) float64{
	"+": func(l, r float64) float64 { return l + r },
	"-": func(l, r float64) float64 { return l - r },
	"*": func(l, r float64) float64 { return l * r },
	"/": func(l, r float64) float64 { return l / r },
	"%": math.Mod,
}

var knownUnary = map[string]func(v float64) float64{
	"-": func(v float64) float64 { return -v },
}

// BuildTable turns a TableConfig into a parsec precedence table, for
// callers that want a custom operator arrangement instead of Eval's
// built-in `+ - * /` table. Every operator symbol must come from the
// fixed set BuildTable knows how to evaluate: Eval's operators plus
// binary `%` (floating-point remainder, which Eval itself does not
// accept). Any other symbol or level kind is an error.
func BuildTable(cfg TableConfig) ([]parsec.Level[float64], error) {
	table := make([]parsec.Level[float64], 0, len(cfg.Levels))
	for _, lvl := range cfg.Levels {
		switch lvl.Kind {
		case "infixLeft", "infixRight":
			ops, err := binaryOperators(lvl.Operators)
			if err != nil {
				return nil, err
			}
			if lvl.Kind == "infixLeft" {
				table = append(table, parsec.InfixLeftLevel(ops...))
			} else {
				table = append(table, parsec.InfixRightLevel(ops...))
			}
		case "prefix":
			ops, err := unaryOperators(lvl.Operators)
			if err != nil {
				return nil, err
			}
			table = append(table, parsec.PrefixLevel(ops...))
		default:
			return nil, fmt.Errorf("calcexample: unknown level kind %q", lvl.Kind)
		}
	}
	return table, nil
}

func binaryOperators(symbols []string) ([]parsec.BinaryOperator[float64], error) {
	ops := make([]parsec.BinaryOperator[float64], 0, len(symbols))
	for _, sym := range symbols {
		apply, ok := knownBinary[sym]
		if !ok {
			return nil, fmt.Errorf("calcexample: unknown binary operator %q", sym)
		}
		ops = append(ops, parsec.BinaryOperator[float64]{Symbol: symbol(sym), Apply: apply})
	}
	return ops, nil
}

func unaryOperators(symbols []string) ([]parsec.UnaryOperator[float64], error) {
	ops := make([]parsec.UnaryOperator[float64], 0, len(symbols))
	for _, sym := range symbols {
		apply, ok := knownUnary[sym]
		if !ok {
			return nil, fmt.Errorf("calcexample: unknown unary operator %q", sym)
		}
		ops = append(ops, parsec.UnaryOperator[float64]{Symbol: symbol(sym), Apply: apply})
	}
	return ops, nil
}

// EvalWithTable parses and evaluates input using a custom precedence
// table instead of Eval's built-in one.
func EvalWithTable(input string, table []parsec.Level[float64]) (float64, error) {
	body := parsec.Expression(term(), table)
	full := parsec.Terminated(body, parsec.Preceded(ws(), parsec.Eof()))
	return full.TryRun(input)
}
