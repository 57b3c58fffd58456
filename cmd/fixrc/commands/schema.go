package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewSchemaCmd creates a new schema command
func NewSchemaCmd(ro *opts.RootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the config file format",
		Long: `Schema emits the JSON Schema that describes .fixrc config files, for
editor completion and CI validation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return errors.Errorf("rendering schema: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
					return errors.Errorf("writing schema: %w", err)
				}
				return nil
			}

			cmd.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema to this path instead of stdout")

	return cmd
}
