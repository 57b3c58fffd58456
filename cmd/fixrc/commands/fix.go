package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/log"
	"github.com/walteh/fixrc/pkg/operation"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(ro *opts.RootOpts) *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Repair the configured files in place",
		Long: `Fix folds the rule table over every target file and writes back the
ones whose repaired content changed. It will:
1. Load the configuration and compile its rule sets
2. Enumerate configured paths, command line files, and include globs
3. Fold the rules over each file's content until it stops changing
4. Atomically write back changed files, backing up first when configured

Unchanged files are left untouched, byte for byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}
			if backup {
				cfg.Options.Backup = true
			}

			statusMgr := status.New(".", zerolog.Ctx(ctx))

			op, err := operation.NewFixOperation(operation.Options{
				Config:    cfg,
				StatusMgr: statusMgr,
				Targets:   args,
			})
			if err != nil {
				return errors.Errorf("creating fix operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx), ro.Async).Run(ctx, op); err != nil {
				return errors.Errorf("running fix operation: %w", err)
			}

			files, err := statusMgr.ListFiles(ctx)
			if err != nil {
				return errors.Errorf("listing results: %w", err)
			}

			console := newConsole(ro)
			console.StartRunOperation(ctx, log.RunOperation{
				Config: configName(cfg),
				Mode:   "fix",
				Files:  len(files),
				Rules:  len(cfg.RuleSet()),
			})
			for _, info := range files {
				console.LogFileOperation(ctx, fileRow(info))
			}
			console.EndRunOperation(ctx)

			if err := writeReport(ctx, ro, statusMgr); err != nil {
				return err
			}

			// Per-file failures are reported, not fatal: the run already
			// repaired everything it could.
			summary := statusMgr.Summarize()
			if summary.Errors > 0 {
				console.Error(summary.String())
				return nil
			}

			console.Success(summary.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&backup, "backup", false, "write a "+status.BackupSuffix+" copy before rewriting each file")

	return cmd
}
