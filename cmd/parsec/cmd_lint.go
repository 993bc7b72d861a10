package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/parsec/grammars/csv"
	"github.com/dhamidi/parsec/grammars/jsonish"
	"github.com/dhamidi/parsec/grammars/keypath"
	"github.com/dhamidi/parsec/internal/gramdev"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// lintTargets names each bundled grammar's EBNF documentation (embedded by
// its own package) and top-level production, so gramdev.Check can both
// parse and verify it.
var lintTargets = []struct {
	name  string
	ebnf  string
	start string
}{
	{"jsonish", jsonish.EBNF, "Value"},
	{"csv", csv.EBNF, "Table"},
	{"keypath", keypath.EBNF, "Path"},
}

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lint <file>",
		Short:         "Try every bundled grammar against a file and report which ones accept it",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			profile := termenv.EnvColorProfile()
			ok := termenv.String("ok").Foreground(profile.Color("2")).Bold()
			bad := termenv.String("fail").Foreground(profile.Color("1")).Bold()

			results := []struct {
				name string
				err  error
			}{
				{"jsonish", tryParse(func() error { _, err := jsonish.Parse(string(data)); return err })},
				{"csv", tryParse(func() error { _, err := csv.ParseAll(string(data), csv.DefaultOptions()); return err })},
				{"keypath", tryParse(func() error { _, err := keypath.Parse(string(data)); return err })},
			}

			for _, r := range results {
				label := ok
				detail := ""
				if r.err != nil {
					label = bad
					detail = ": " + r.err.Error()
				}
				fmt.Printf("%-10s %s%s\n", r.name, label, detail)
			}

			return nil
		},
	}

	cmd.AddCommand(newLintGrammarCmd())

	return cmd
}

func tryParse(f func() error) error {
	return f()
}

func newLintGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "grammars",
		Short:         "Verify the bundled EBNF grammar documentation parses cleanly",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := termenv.EnvColorProfile()
			ok := termenv.String("ok").Foreground(profile.Color("2")).Bold()
			bad := termenv.String("fail").Foreground(profile.Color("1")).Bold()

			anyFailed := false
			for _, target := range lintTargets {
				result := gramdev.Check(target.name, strings.NewReader(target.ebnf), target.start)
				if result.OK() {
					fmt.Printf("%-10s %s\n", target.name, ok)
					continue
				}
				anyFailed = true
				fmt.Printf("%-10s %s\n", target.name, bad)
				for _, e := range result.Errs {
					fmt.Printf("  %s\n", e)
				}
			}
			if anyFailed {
				return fmt.Errorf("one or more grammars failed verification")
			}
			return nil
		},
	}
}
