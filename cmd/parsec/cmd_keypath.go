package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/parsec/grammars/jsonish"
	"github.com/dhamidi/parsec/grammars/keypath"
	"github.com/spf13/cobra"
)

func newKeypathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "keypath <file> <path>",
		Short:         "Evaluate a key-path against a jsonish document",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			doc, err := jsonish.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			result, err := keypath.Get(doc, args[1])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	return cmd
}
