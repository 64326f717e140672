package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomasbasham/urlenc"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "print the pairs of a query string as JSON",
		Long: `decode reads a query string, from file or stdin, and prints its
pairs as a JSON array of [key, value] arrays in the order they appear.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var pairs [][2]string
			if err := urlenc.Unmarshal(data, &pairs); err != nil {
				return err
			}
			Logger().Debug("decoded pairs", zap.Int("pairs", len(pairs)))

			if pairs == nil {
				pairs = [][2]string{}
			}
			out, err := json.MarshalIndent(pairs, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
