package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/urlenc"
)

// field is one entry of the input mapping, kept in document order. It
// encodes as a pair.
type field struct {
	Name  string
	Value any
}

func newEncodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "encode a JSON or YAML mapping as a query string",
		Long: `encode reads a flat JSON or YAML mapping, from file or stdin, and
prints it as a query string. Keys keep their document order. Sequences
repeat their key and null values are left out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
			case "json":
				if !json.Valid(data) {
					return errors.New("input is not valid JSON")
				}
			default:
				return fmt.Errorf("unknown input format %q, want json or yaml", format)
			}
			fields, err := parseFields(data)
			if err != nil {
				return err
			}
			Logger().Debug("parsed mapping", zap.Int("fields", len(fields)))

			s, err := urlenc.EncodeToString(fields)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "input-format", "f", "yaml", "input format: json or yaml (yaml also reads JSON)")
	return cmd
}

// parseFields reads a YAML document, which includes JSON, whose root is a
// mapping. Values are decoded to their natural Go types; nested mappings
// are kept as maps and rejected later by the encoder.
func parseFields(data []byte) ([]field, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	for root.Kind == yaml.AliasNode {
		root = root.Alias
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("input must be a mapping")
	}

	fields := make([]field, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", v.Line, err)
		}
		fields = append(fields, field{Name: k.Value, Value: value})
	}
	return fields, nil
}
