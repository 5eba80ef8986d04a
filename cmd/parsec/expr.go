package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/gopherparse/parsec"
	"github.com/gopherparse/parsec/internal/calcexample"
)

var tableFile string

var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluate a small arithmetic expression (+ - * /, unary -, parens) built on
parsec's Expression precedence-climbing combinator.

Pass --table to load a custom operator precedence table from a YAML file
instead of the built-in one, e.g.:

  levels:
    - kind: infixLeft
      operators: ["*", "/"]
    - kind: infixLeft
      operators: ["+", "-"]`,
	Args: cobra.ExactArgs(1),
	RunE: runExpr,
}

func init() {
	exprCmd.Flags().StringVar(&tableFile, "table", "", "YAML file describing a custom operator precedence table")
	rootCmd.AddCommand(exprCmd)
}

func runExpr(cmd *cobra.Command, args []string) error {
	input := args[0]

	var (
		value float64
		err   error
	)

	if tableFile != "" {
		data, readErr := os.ReadFile(tableFile)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", tableFile, readErr)
		}
		var cfg calcexample.TableConfig
		if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
			return fmt.Errorf("parsing %s: %w", tableFile, unmarshalErr)
		}
		table, buildErr := calcexample.BuildTable(cfg)
		if buildErr != nil {
			return buildErr
		}
		value, err = calcexample.EvalWithTable(input, table)
	} else {
		value, err = calcexample.Eval(input)
	}

	if err != nil {
		if pf, ok := err.(*parsec.ParserFailure); ok {
			return fmt.Errorf("%s", parsec.FormatFailure(pf.Err))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
