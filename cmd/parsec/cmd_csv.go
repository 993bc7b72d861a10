package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/parsec/grammars/csv"
	"github.com/spf13/cobra"
)

func newCSVCmd() *cobra.Command {
	var fieldSep, quote string
	var header bool

	cmd := &cobra.Command{
		Use:           "csv <file>",
		Short:         "Parse a delimiter-separated file and print it as JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			opts := csv.DefaultOptions()
			opts.Header = header
			if fieldSep != "" {
				opts.FieldSep = []rune(fieldSep)[0]
			}
			if quote != "" {
				opts.Quote = []rune(quote)[0]
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if header {
				rows, err := csv.ParseHeadered(string(data), opts)
				if err != nil {
					return fmt.Errorf("parse csv: %w", err)
				}
				return enc.Encode(rows)
			}

			rows, err := csv.ParseAll(string(data), opts)
			if err != nil {
				return fmt.Errorf("parse csv: %w", err)
			}
			return enc.Encode(rows)
		},
	}

	cmd.Flags().StringVar(&fieldSep, "field-sep", "", "field separator (default ,)")
	cmd.Flags().StringVar(&quote, "quote", "", "quote character (default \")")
	cmd.Flags().BoolVar(&header, "header", false, "treat the first row as column names")

	return cmd
}
