// Package cli implements the urlenc command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Main runs the urlenc command with the process arguments and returns its
// exit status.
func Main() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd returns the urlenc root command with its subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "urlenc",
		Short: "convert between structured data and form-urlencoded text",
		Long: `urlenc encodes a flat JSON or YAML mapping as an
application/x-www-form-urlencoded query string, and decodes a query
string into its ordered key/value pairs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			SetLogger(l)
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.AddCommand(newEncodeCmd(), newDecodeCmd())
	return cmd
}

// readInput reads the named file, or the command's input when no file is
// given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		Logger().Debug("read input", zap.String("source", "stdin"), zap.Int("bytes", len(data)))
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	Logger().Debug("read input", zap.String("source", args[0]), zap.Int("bytes", len(data)))
	return data, nil
}
