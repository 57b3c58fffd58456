package commands

import (
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/log"
	"github.com/walteh/fixrc/pkg/operation"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		showDiff bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report the files a fix run would rewrite, without writing",
		Long: `Check runs the same repair pipeline as fix but never touches the disk.
It will:
1. Load the configuration and compile its rule sets
2. Enumerate the same targets a fix run would
3. Fold the rules over each file's content in memory
4. Report which files would be rewritten

Use --diff to print a unified diff of every pending repair, and
--exit-code to fail the command when any repair is pending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			statusMgr := status.New(".", zerolog.Ctx(ctx))

			op, err := operation.NewCheckOperation(operation.Options{
				Config:    cfg,
				StatusMgr: statusMgr,
				Targets:   args,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx), ro.Async).Run(ctx, op); err != nil {
				return errors.Errorf("running check operation: %w", err)
			}

			files, err := statusMgr.ListFiles(ctx)
			if err != nil {
				return errors.Errorf("listing results: %w", err)
			}

			console := newConsole(ro)
			console.StartRunOperation(ctx, log.RunOperation{
				Config: configName(cfg),
				Mode:   "check",
				Files:  len(files),
				Rules:  len(cfg.RuleSet()),
			})
			for _, info := range files {
				console.LogFileOperation(ctx, checkRow(info))
			}
			console.EndRunOperation(ctx)

			if showDiff && op.Dirty() {
				console.LogNewline()
				for _, d := range op.Diffs() {
					cmd.Print(d.Diff)
				}
			}

			if err := writeReport(ctx, ro, statusMgr); err != nil {
				return err
			}

			summary := statusMgr.Summarize()
			if summary.Errors > 0 {
				console.Error(summary.String())
			}

			if op.Dirty() {
				pending := english.Plural(len(op.Diffs()), "file", "")
				console.Warningf("%s would be rewritten", pending)
				if exitCode {
					return errors.Errorf("%s would be rewritten", pending)
				}
				return nil
			}

			if summary.Errors == 0 {
				console.Success("nothing to fix")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff of every pending repair")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit non-zero when any file would be rewritten")

	return cmd
}

// checkRow renders a would-be repair without claiming a write happened
func checkRow(info status.FileInfo) log.FileOperation {
	row := fileRow(info)
	if info.Status == status.StatusFixed {
		row.Status = "would fix"
	}
	return row
}

// TODO(dr.methodical): 🧪 e2e test that feeds --diff output through git apply
