package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherparse/parsec"
	"github.com/gopherparse/parsec/internal/jsonexample"
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Parse a JSON document and print it back out",
	Long: `Parse a JSON document with parsec's bundled JSON grammar and print the
result as Go-native JSON, confirming the grammar accepted the input.

If no file is given, input is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	value, err := jsonexample.ParseJSON(input)
	if err != nil {
		if pf, ok := err.(*parsec.ParserFailure); ok {
			return fmt.Errorf("%s", parsec.FormatFailure(pf.Err))
		}
		return err
	}

	out, err := json.MarshalIndent(toNative(value), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func toNative(v jsonexample.Value) any {
	switch v.Kind {
	case jsonexample.KindNull:
		return nil
	case jsonexample.KindBool:
		return v.Bool
	case jsonexample.KindNumber:
		return v.Number
	case jsonexample.KindString:
		return v.String
	case jsonexample.KindArray:
		out := make([]any, len(v.Array))
		for i, el := range v.Array {
			out[i] = toNative(el)
		}
		return out
	case jsonexample.KindObject:
		out := make(map[string]any, len(v.Object))
		for k, el := range v.Object {
			out[k] = toNative(el)
		}
		return out
	default:
		return nil
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
