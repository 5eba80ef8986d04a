package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gopherparse/parsec"
	"github.com/gopherparse/parsec/internal/jsonexample"
	"github.com/gopherparse/parsec/internal/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Parse a JSON document while logging timing and outcome",
	Long: `Like "parsec json", but logs the attempt through internal/trace's
zerolog-backed Logger: one structured line reporting success or the
formatted failure, with elapsed duration. Nothing is logged when the
parse starts.

With --verbose, every matched production (null/bool/number/string/array/
object, including ones nested inside arrays and objects) is additionally
logged at debug level as it is matched, via trace.Attach wrapping the
grammar's productions with parsec's Emit combinator.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	source := "<stdin>"
	if len(args) == 1 {
		source = args[0]
	}

	logger := trace.New(os.Stderr, verbose)

	grammar := jsonexample.TracedValue(func(label string, p parsec.Parser[jsonexample.Value]) parsec.Parser[jsonexample.Value] {
		return trace.Attach(logger, label, p)
	})

	start := time.Now()
	_, parseErr := grammar.TryRun(input)
	elapsed := time.Since(start)

	if parseErr != nil {
		pf, ok := parseErr.(*parsec.ParserFailure)
		if !ok {
			return parseErr
		}
		logger.ParseFailed(source, pf.Err, elapsed)
		return fmt.Errorf("%s", parsec.FormatFailure(pf.Err))
	}

	logger.ParseSucceeded(source, elapsed)
	return nil
}
