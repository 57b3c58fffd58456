package commands

import (
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/operation"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCleanCmd creates a new clean command
func NewCleanCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the backup files fix runs left behind",
		Long: `Clean deletes every ` + status.BackupSuffix + ` file under the configured root.
It will:
1. Load the configuration
2. Walk the root for backup files, honoring the ignore globs
3. Delete each one, stopping at the first failure

Run restore instead if the originals should come back first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "clean").Logger().WithContext(ctx)

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			statusMgr := status.New(".", zerolog.Ctx(ctx))

			op, err := operation.NewCleanOperation(operation.Options{
				Config:    cfg,
				StatusMgr: statusMgr,
			})
			if err != nil {
				return errors.Errorf("creating clean operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx), ro.Async).Run(ctx, op); err != nil {
				return errors.Errorf("cleaning backups: %w", err)
			}

			newConsole(ro).Successf("removed %s", english.Plural(op.Removed(), "backup", ""))
			return nil
		},
	}

	return cmd
}

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Put backed up files back in place of their repaired versions",
		Long: `Restore renames every ` + status.BackupSuffix + ` file under the configured root
over its original, undoing the last backed up fix run. It will:
1. Load the configuration
2. Walk the root for backup files, honoring the ignore globs
3. Move each backup over its original, stopping at the first failure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "restore").Logger().WithContext(ctx)

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			statusMgr := status.New(".", zerolog.Ctx(ctx))

			op, err := operation.NewRestoreOperation(operation.Options{
				Config:    cfg,
				StatusMgr: statusMgr,
			})
			if err != nil {
				return errors.Errorf("creating restore operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx), ro.Async).Run(ctx, op); err != nil {
				return errors.Errorf("restoring backups: %w", err)
			}

			newConsole(ro).Successf("restored %s", english.Plural(op.Restored(), "file", ""))
			return nil
		},
	}

	return cmd
}
