package commands

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
)

// NewRulesCmd creates a new rules command
func NewRulesCmd(ro *opts.RootOpts) *cobra.Command {
	var forFile string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rewrite rules in the order they run",
		Long: `Rules prints the compiled rule table: the builtin repairs, the config's
own additions, and with --file the scoped rules that glob brings in.
Order matters, rules run top to bottom and each one re-scans its own
output until the file stops changing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			set := cfg.RuleSet()
			scope := configName(cfg)
			if forFile != "" {
				set = cfg.RulesFor(forFile)
				scope = forFile
			}

			console := newConsole(ro)
			console.Header(fmt.Sprintf("%s (%s)", english.Plural(len(set), "rule", ""), scope))

			for _, r := range set {
				replacement := fmt.Sprintf("%q", r.Replacement())
				if r.Replacement() == "" {
					replacement = "(delete)"
				}

				line := fmt.Sprintf("%-28s %s  ->  %s", r.Name(), r.Pattern(), replacement)
				if r.Note() != "" {
					line += fmt.Sprintf("  [%s]", r.Note())
				}
				cmd.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&forFile, "file", "", "list the rules that would run for this path")

	return cmd
}
