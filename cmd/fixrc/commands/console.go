package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/log"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newConsole builds the console logger commands print through
func newConsole(ro *opts.RootOpts) *log.Logger {
	level := zerolog.InfoLevel
	if ro.Debug {
		level = zerolog.DebugLevel
	}
	return log.New(os.Stdout, level)
}

// configName labels the run header with the config's origin
func configName(cfg *config.Config) string {
	if cfg.Location() != "" {
		return filepath.Base(cfg.Location())
	}
	return "builtin rules"
}

// fileRow maps a tracked outcome onto a console row
func fileRow(info status.FileInfo) log.FileOperation {
	return log.FileOperation{
		Path:      info.Path,
		Status:    info.Status.String(),
		Rewrites:  info.Rewrites,
		IsFixed:   info.Status == status.StatusFixed,
		IsMissing: info.Status == status.StatusMissing,
		IsError:   info.Status == status.StatusError,
	}
}

// writeReport writes the JSON run report when --report is set
func writeReport(ctx context.Context, ro *opts.RootOpts, mgr *status.Manager) error {
	if ro.Report == "" {
		return nil
	}

	data, err := mgr.Report(ctx)
	if err != nil {
		return errors.Errorf("building report: %w", err)
	}
	if err := os.WriteFile(ro.Report, data, 0o644); err != nil {
		return errors.Errorf("writing report: %w", err)
	}

	return nil
}
