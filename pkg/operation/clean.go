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
	"strings"

	"github.com/walteh/fixrc/pkg/status"
	"github.com/walteh/fixrc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) (*CleanOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CleanOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// 🧹 CleanOperation deletes the backup files previous fix runs left behind
type CleanOperation struct {
	BaseOperation

	removed int
}

// 🏃 Execute runs the clean operation
func (op *CleanOperation) Execute(ctx context.Context) error {
	backups, err := op.findBackups(ctx)
	if err != nil {
		return err
	}

	logger := status.NewUserLogger(ctx)

	// Start tracking progress
	op.StatusMgr.StartOperation(ctx, len(backups))
	defer op.StatusMgr.FinishOperation(ctx)

	// Remove each backup. Deleting is not best effort: a failure here
	// aborts so the remaining backups stay inspectable.
	for i, path := range backups {
		if err := op.StatusMgr.DeleteFile(ctx, path); err != nil {
			return errors.Errorf("cleaning backup %s: %w", path, err)
		}

		logger.LogFileChange(status.FileChange{
			Type: status.FileCleaned,
			Path: path,
		})

		op.removed++
		op.StatusMgr.UpdateProgress(ctx, i+1)
	}

	return nil
}

// 🔢 Removed returns how many backup files were deleted
func (op *CleanOperation) Removed() int {
	return op.removed
}

// ♻️ NewRestoreOperation creates a new restore operation
func NewRestoreOperation(opts Options) (*RestoreOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &RestoreOperation{
		BaseOperation: NewBaseOperation(opts),
	}, nil
}

// ♻️ RestoreOperation puts every backed up file back in place of its
// repaired version and removes the backup
type RestoreOperation struct {
	BaseOperation

	restored int
}

// 🏃 Execute runs the restore operation
func (op *RestoreOperation) Execute(ctx context.Context) error {
	backups, err := op.findBackups(ctx)
	if err != nil {
		return err
	}

	logger := status.NewUserLogger(ctx)

	// Start tracking progress
	op.StatusMgr.StartOperation(ctx, len(backups))
	defer op.StatusMgr.FinishOperation(ctx)

	// Restore each file from its backup
	for i, path := range backups {
		original := strings.TrimSuffix(path, status.BackupSuffix)
		if err := op.StatusMgr.RestoreFile(ctx, original); err != nil {
			return errors.Errorf("restoring %s: %w", original, err)
		}

		logger.LogFileChange(status.FileChange{
			Type: status.FileRestored,
			Path: original,
		})

		op.restored++
		op.StatusMgr.UpdateProgress(ctx, i+1)
	}

	return nil
}

// 🔢 Restored returns how many files were put back from backups
func (op *RestoreOperation) Restored() int {
	return op.restored
}

// 🗂️ findBackups walks the configured root for backup files
func (op *BaseOperation) findBackups(ctx context.Context) ([]string, error) {
	include := []string{"**/*" + status.BackupSuffix}

	paths, err := walk.Glob(op.Config.Root, include, op.Config.Ignore).Paths(ctx)
	if err != nil {
		return nil, errors.Errorf("finding backups: %w", err)
	}

	return paths, nil
}
