// Package operation provides the executable units that repair files
package operation

import (
	"context"

	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/rewrite"
	"github.com/walteh/fixrc/pkg/status"
	"github.com/walteh/fixrc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a single executable unit of work over the
// configured files
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by all operations
type Options struct {
	// Config is the loaded and validated configuration
	Config *config.Config
	// StatusMgr stores file content and tracks per-file outcomes
	StatusMgr *status.Manager
	// Targets holds extra file paths named on the command line
	Targets []string
}

// validate rejects options an operation cannot run with
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	return nil
}

// 🏗️ BaseOperation carries the dependencies embedded by every operation
type BaseOperation struct {
	Config    *config.Config
	StatusMgr *status.Manager
	Targets   []string
}

// 🏭 NewBaseOperation builds the shared base from options
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		Config:    opts.Config,
		StatusMgr: opts.StatusMgr,
		Targets:   opts.Targets,
	}
}

// 🗂️ targets enumerates the files the operation visits: configured paths
// first, then command line extras, then the include glob walk. Merging
// deduplicates across the three sources with the first occurrence winning.
func (op *BaseOperation) targets(ctx context.Context) ([]string, error) {
	sources := make([]walk.Source, 0, 3)
	if len(op.Config.Files) > 0 {
		sources = append(sources, walk.List(op.Config.Files...))
	}
	if len(op.Targets) > 0 {
		sources = append(sources, walk.List(op.Targets...))
	}
	if len(op.Config.Include) > 0 {
		sources = append(sources, walk.Glob(op.Config.Root, op.Config.Include, op.Config.Ignore))
	}

	paths, err := walk.Merge(sources...).Paths(ctx)
	if err != nil {
		return nil, errors.Errorf("enumerating files: %w", err)
	}

	return paths, nil
}

// ⚙️ jobs returns the size of the per-file worker pool. Zero and one both
// mean sequential, which keeps the default run deterministic.
func (op *BaseOperation) jobs() int {
	if op.Config.Options.Jobs > 1 {
		return op.Config.Options.Jobs
	}
	return 1
}

// 🔬 rewriteOptions maps the configured verifiers onto the engine
func (op *BaseOperation) rewriteOptions() rewrite.Options {
	return rewrite.Options{
		VerifyBalance:  op.Config.Options.VerifyBalance,
		VerifyFixpoint: op.Config.Options.VerifyFixpoint,
	}
}

// ❌ trackError records a file level failure without aborting the run
func (op *BaseOperation) trackError(ctx context.Context, path string, err error) {
	op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
		Path:   path,
		Status: status.StatusError,
		Error:  err,
	})
}
