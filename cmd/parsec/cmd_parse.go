package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/parsec"
	"github.com/dhamidi/parsec/grammars/jsonish"
	"github.com/spf13/cobra"
)

// jsonishTreeOptions mirrors jsonish.Parse's own driver configuration
// (parsec.New's Trim/ConsumeAll/Detailed/Causes), so --format=tree parses
// under the exact same rules as --format=value, just keeping the tree.
var jsonishTreeOptions = parsec.Options{Trim: true, ConsumeAll: true, Detailed: true, Causes: true}

func newParseCmd() *cobra.Command {
	var outputJSON bool
	var format string
	var treeFlag bool
	var at int

	cmd := &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse a jsonish document and print it back out",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			if treeFlag {
				format = "tree"
			}

			switch format {
			case "", "value":
				return runParseValue(string(data), outputJSON)
			case "tree":
				return runParseTree(string(data), at)
			default:
				return fmt.Errorf("unknown --format %q, want \"value\" or \"tree\"", format)
			}
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "print using encoding/json instead of jsonish's own marshaler")
	cmd.Flags().StringVar(&format, "format", "value", `output format: "value" or "tree"`)
	cmd.Flags().BoolVar(&treeFlag, "tree", false, `shorthand for --format=tree`)
	cmd.Flags().IntVar(&at, "at", -1, "with --format=tree, print only the named node path enclosing this byte offset")

	return cmd
}

func runParseValue(input string, outputJSON bool) error {
	value, err := jsonish.Parse(input)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonishToAny(value))
	}

	fmt.Println(jsonish.Marshal(value))
	return nil
}

// runParseTree parses input with a tree-mode driver and prints the resulting
// parsec.ParseNode tree as JSON. With --at set, it instead prints the path
// of named nodes enclosing that byte offset, via parsec.NodeForPosition.
func runParseTree(input string, at int) error {
	driver := parsec.NewTree(jsonish.Document(), jsonishTreeOptions)
	_, root, err := driver.Run(input)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if at >= 0 {
		path := parsec.NodeForPosition(root, at, true)
		names := make([]string, len(path))
		for i, n := range path {
			names[i] = n.Name.Label
		}
		return enc.Encode(names)
	}

	return enc.Encode(nodeToAny(root))
}

func nodeToAny(n *parsec.ParseNode) any {
	if n == nil {
		return nil
	}
	out := map[string]any{"start": n.Start, "end": n.End}
	if n.IsNamed() {
		out["name"] = n.Name.Label
	}
	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = nodeToAny(c)
		}
		out["children"] = children
	}
	return out
}

func jsonishToAny(v jsonish.Value) any {
	switch v.Kind {
	case jsonish.KindNull:
		return nil
	case jsonish.KindBool:
		return v.Bool
	case jsonish.KindNumber:
		return v.Number
	case jsonish.KindString:
		return v.Str
	case jsonish.KindArray:
		out := make([]any, len(v.Array))
		for i, item := range v.Array {
			out[i] = jsonishToAny(item)
		}
		return out
	case jsonish.KindObject:
		out := make(map[string]any, len(v.Object))
		for _, m := range v.Object {
			out[m.Key] = jsonishToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
