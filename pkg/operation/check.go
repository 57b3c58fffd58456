// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/aymanbagabas/go-udiff"
	"github.com/walteh/fixrc/pkg/rewrite"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔍 NewCheckOperation creates a new check operation
func NewCheckOperation(opts Options) (*CheckOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CheckOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 🔍 CheckOperation reports which files the rule set would change without
// writing anything back
type CheckOperation struct {
	BaseOperation

	mu    sync.Mutex
	diffs []FileDiff
}

// 📝 FileDiff describes one file the rule set would rewrite
type FileDiff struct {
	// Path names the file as it was given to the operation
	Path string
	// Rewrites counts the rule applications that would land
	Rewrites int
	// Diff is the unified diff from the current content to the repaired content
	Diff string
}

// 🏃 Execute runs the check operation
func (op *CheckOperation) Execute(ctx context.Context) error {
	files, err := op.targets(ctx)
	if err != nil {
		return err
	}

	// Start tracking progress
	op.StatusMgr.StartOperation(ctx, len(files))
	defer op.StatusMgr.FinishOperation(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(op.jobs())

	// Check each file
	var processed atomic.Int64
	for _, file := range files {
		g.Go(func() error {
			if err := op.checkFile(gctx, file); err != nil {
				return errors.Errorf("checking file %s: %w", file, err)
			}
			op.StatusMgr.UpdateProgress(gctx, int(processed.Add(1)))
			return nil
		})
	}

	return g.Wait()
}

// 📄 checkFile folds the rule set over a single file and records what a fix
// run would have done, leaving the file itself alone
func (op *CheckOperation) checkFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("cancelled: %w", err)
	}

	exists, err := op.StatusMgr.FileExists(ctx, path)
	if err != nil {
		op.trackError(ctx, path, err)
		return nil
	}
	if !exists {
		op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
			Path:   path,
			Status: status.StatusMissing,
		})
		return nil
	}

	content, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		op.trackError(ctx, path, err)
		return nil
	}

	result, err := rewrite.Run(ctx, content, op.Config.RulesFor(path), op.rewriteOptions())
	if err != nil {
		op.trackError(ctx, path, err)
		return nil
	}

	if !result.Changed {
		op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
			Path:   path,
			Status: status.StatusUnchanged,
		})
		return nil
	}

	diff := udiff.Unified("a/"+path, "b/"+path, string(content), string(result.Content))

	op.mu.Lock()
	op.diffs = append(op.diffs, FileDiff{
		Path:     path,
		Rewrites: result.TotalApplications(),
		Diff:     diff,
	})
	op.mu.Unlock()

	// Size stays zero: nothing was written
	op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
		Path:     path,
		Status:   status.StatusFixed,
		Rewrites: result.TotalApplications(),
		Checksum: status.Checksum(result.Content),
	})

	return nil
}

// 🚨 Dirty reports whether any checked file needs repair
func (op *CheckOperation) Dirty() bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return len(op.diffs) > 0
}

// 📋 Diffs returns the per-file diffs sorted by path
func (op *CheckOperation) Diffs() []FileDiff {
	op.mu.Lock()
	defer op.mu.Unlock()

	out := make([]FileDiff, len(op.diffs))
	copy(out, op.diffs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
