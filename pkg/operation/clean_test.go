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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/status"
)

func TestCleanOperation_Execute(t *testing.T) {
	root := t.TempDir()

	aPath := writeFile(t, root, "src/a.ts", "fixed a\n")
	writeFile(t, root, "src/a.ts"+status.BackupSuffix, "original a\n")
	bPath := writeFile(t, root, "src/sub/b.ts", "fixed b\n")
	writeFile(t, root, "src/sub/b.ts"+status.BackupSuffix, "original b\n")

	opts := newTestOptions(t, &config.Config{Root: root})
	op, err := NewCleanOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, 2, op.Removed())
	assert.NoFileExists(t, aPath+status.BackupSuffix)
	assert.NoFileExists(t, bPath+status.BackupSuffix)
	assert.Equal(t, "fixed a\n", readFile(t, aPath), "clean must not touch repaired files")
	assert.Equal(t, "fixed b\n", readFile(t, bPath))
}

func TestCleanOperation_NoBackups(t *testing.T) {
	opts := newTestOptions(t, &config.Config{Root: t.TempDir()})
	op, err := NewCleanOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Zero(t, op.Removed())
}

func TestRestoreOperation_Execute(t *testing.T) {
	root := t.TempDir()

	path := writeFile(t, root, "src/route.ts", "repaired\n")
	writeFile(t, root, "src/route.ts"+status.BackupSuffix, "original\n")

	opts := newTestOptions(t, &config.Config{Root: root})
	op, err := NewRestoreOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, 1, op.Restored())
	assert.Equal(t, "original\n", readFile(t, path))
	assert.NoFileExists(t, path+status.BackupSuffix, "restore consumes the backup")
}

func TestRestoreOperation_RoundTrip(t *testing.T) {
	root := t.TempDir()
	broken := "const meta = {\n  total: 100\n  page: 1\n}\n"
	path := writeFile(t, root, "route.ts", broken)

	fixOpts := newTestOptions(t, &config.Config{Options: config.Options{Backup: true}}, path)
	fix, err := NewFixOperation(fixOpts)
	require.NoError(t, err)
	require.NoError(t, fix.Execute(context.Background()))
	require.NotEqual(t, broken, readFile(t, path))

	restoreOpts := newTestOptions(t, &config.Config{Root: root})
	restore, err := NewRestoreOperation(restoreOpts)
	require.NoError(t, err)
	require.NoError(t, restore.Execute(context.Background()))

	assert.Equal(t, 1, restore.Restored())
	assert.Equal(t, broken, readFile(t, path), "restore must round trip the original bytes")
}
