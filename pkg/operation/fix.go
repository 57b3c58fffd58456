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
	"sync/atomic"

	"github.com/walteh/fixrc/pkg/rewrite"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 NewFixOperation creates a new fix operation
func NewFixOperation(opts Options) (*FixOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &FixOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 🔧 FixOperation rewrites the configured files in place
type FixOperation struct {
	BaseOperation
}

// 🏃 Execute runs the fix operation
func (op *FixOperation) Execute(ctx context.Context) error {
	files, err := op.targets(ctx)
	if err != nil {
		return err
	}

	// Start tracking progress
	op.StatusMgr.StartOperation(ctx, len(files))
	defer op.StatusMgr.FinishOperation(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(op.jobs())

	// Process each file
	var processed atomic.Int64
	for _, file := range files {
		g.Go(func() error {
			if err := op.processFile(gctx, file); err != nil {
				return errors.Errorf("processing file %s: %w", file, err)
			}
			op.StatusMgr.UpdateProgress(gctx, int(processed.Add(1)))
			return nil
		})
	}

	return g.Wait()
}

// 📄 processFile repairs a single file and records its outcome. File level
// failures are tracked rather than returned so one bad file cannot stop
// the rest of the run; only cancellation aborts.
func (op *FixOperation) processFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("cancelled: %w", err)
	}

	// A listed path may be gone by the time it is read
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
		// Verifier rejections withhold the write but keep the run going
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

	if op.Config.Options.Backup {
		if err := op.StatusMgr.BackupFile(ctx, path); err != nil {
			op.trackError(ctx, path, err)
			return nil
		}
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, path, result.Content); err != nil {
		op.trackError(ctx, path, err)
		return nil
	}

	op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
		Path:     path,
		Status:   status.StatusFixed,
		Size:     int64(len(result.Content)),
		Rewrites: result.TotalApplications(),
		Checksum: status.Checksum(result.Content),
	})

	return nil
}
