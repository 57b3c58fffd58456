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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/status"
)

func TestFixOperation_Execute(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		missing      bool
		want         string
		wantStatus   status.FileStatus
		wantRewrites int
	}{
		{
			name:         "adds_missing_property_comma",
			content:      "const meta = {\n  total: 100\n  page: 1\n}\n",
			want:         "const meta = {\n  total: 100,\n  page: 1\n}\n",
			wantStatus:   status.StatusFixed,
			wantRewrites: 1,
		},
		{
			name:         "closes_dangling_call",
			content:      "const meta = getPaginationMeta(total, page, limit,\n",
			want:         "const meta = getPaginationMeta(total, page, limit)\n",
			wantStatus:   status.StatusFixed,
			wantRewrites: 1,
		},
		{
			name:         "drops_stray_comma_before_close",
			content:      "const total = await prisma.report.count(,\n)\n",
			want:         "const total = await prisma.report.count()\n",
			wantStatus:   status.StatusFixed,
			wantRewrites: 1,
		},
		{
			name:         "normalizes_update_field",
			content:      "const data = {, updatedAt: new Date()}\n",
			want:         "const data = { updatedAt: new Date() }\n",
			wantStatus:   status.StatusFixed,
			wantRewrites: 2,
		},
		{
			name:         "repairs_template_literal",
			content:      "const msg = `${report.id, updatedAt: new Date()}`\n",
			want:         "const msg = `${report.id}`\n",
			wantStatus:   status.StatusFixed,
			wantRewrites: 1,
		},
		{
			name:       "leaves_clean_file_alone",
			content:    "export const revalidate = 60\n",
			want:       "export const revalidate = 60\n",
			wantStatus: status.StatusUnchanged,
		},
		{
			name:       "skips_missing_file",
			missing:    true,
			wantStatus: status.StatusMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, "route.ts")
			if !tt.missing {
				path = writeFile(t, root, "route.ts", tt.content)
			}

			opts := newTestOptions(t, &config.Config{}, path)
			op, err := NewFixOperation(opts)
			require.NoError(t, err)
			require.NoError(t, op.Execute(context.Background()))

			info, err := opts.StatusMgr.GetFileInfo(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantRewrites, info.Rewrites)

			if tt.missing {
				return
			}

			assert.Equal(t, tt.want, readFile(t, path))
			if tt.wantStatus == status.StatusFixed {
				assert.Equal(t, int64(len(tt.want)), info.Size)
				assert.Equal(t, status.Checksum([]byte(tt.want)), info.Checksum)
			}
		})
	}
}

func TestFixOperation_Idempotence(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "route.ts", "const meta = {\n  total: 100\n  page: 1\n}\n")

	first := newTestOptions(t, &config.Config{}, path)
	op, err := NewFixOperation(first)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	fixed := readFile(t, path)

	second := newTestOptions(t, &config.Config{}, path)
	op, err = NewFixOperation(second)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, fixed, readFile(t, path), "second run must not change the file again")

	summary := second.StatusMgr.Summarize()
	assert.Equal(t, 0, summary.Fixed)
	assert.Equal(t, 1, summary.Unchanged)
}

func TestFixOperation_ScopedRules(t *testing.T) {
	root := t.TempDir()
	broken := "const meta = getPaginationMeta(total, page,\n"

	routePath := writeFile(t, root, "api/route.ts", broken)
	libPath := writeFile(t, root, "api/lib.ts", broken)

	cfg := &config.Config{
		DisableBuiltin: true,
		FileRules: []config.FileRules{{
			Glob:       "**/route.ts",
			CloseCalls: []string{"getPaginationMeta"},
		}},
	}

	opts := newTestOptions(t, cfg, routePath, libPath)
	op, err := NewFixOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, "const meta = getPaginationMeta(total, page)\n", readFile(t, routePath))
	assert.Equal(t, broken, readFile(t, libPath), "rules scoped to route.ts must not reach lib.ts")

	summary := opts.StatusMgr.Summarize()
	assert.Equal(t, 1, summary.Fixed)
	assert.Equal(t, 1, summary.Unchanged)
}

func TestFixOperation_Backup(t *testing.T) {
	root := t.TempDir()
	broken := "const total = await prisma.report.count(,\n)\n"
	path := writeFile(t, root, "route.ts", broken)

	cfg := &config.Config{Options: config.Options{Backup: true}}
	opts := newTestOptions(t, cfg, path)

	op, err := NewFixOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, "const total = await prisma.report.count()\n", readFile(t, path))
	assert.Equal(t, broken, readFile(t, path+status.BackupSuffix), "backup must hold the pre-fix content")
}

func TestFixOperation_NoBackupWhenUnchanged(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "lib.ts", "export const revalidate = 60\n")

	cfg := &config.Config{Options: config.Options{Backup: true}}
	opts := newTestOptions(t, cfg, path)

	op, err := NewFixOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.NoFileExists(t, path+status.BackupSuffix)
}

func TestFixOperation_VerifierRejection(t *testing.T) {
	tests := []struct {
		name    string
		rule    config.Rule
		opts    config.Options
		content string
		wantErr string
	}{
		{
			name:    "fixpoint_rejects_runaway_rule",
			rule:    config.Rule{Name: "grow", Pattern: "x", Replacement: "xx"},
			opts:    config.Options{VerifyFixpoint: true},
			content: "x\n",
			wantErr: "verifying fixpoint",
		},
		{
			name:    "balance_rejects_unbalancing_rule",
			rule:    config.Rule{Name: "drop-close", Pattern: `\)`, Replacement: ""},
			opts:    config.Options{VerifyBalance: true},
			content: "const x = f(1)\n",
			wantErr: "verifying balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := writeFile(t, root, "route.ts", tt.content)

			cfg := &config.Config{
				DisableBuiltin: true,
				Rules:          []config.Rule{tt.rule},
				Options:        tt.opts,
			}

			opts := newTestOptions(t, cfg, path)
			op, err := NewFixOperation(opts)
			require.NoError(t, err)
			require.NoError(t, op.Execute(context.Background()), "verifier rejections are per-file, not run failures")

			assert.Equal(t, tt.content, readFile(t, path), "rejected rewrite must not reach the disk")

			info, err := opts.StatusMgr.GetFileInfo(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, status.StatusError, info.Status)
			require.Error(t, info.Error)
			assert.Contains(t, info.Error.Error(), tt.wantErr)
		})
	}
}

func TestFixOperation_ErrorIsolation(t *testing.T) {
	root := t.TempDir()

	// A directory with a file name makes the read fail
	dirPath := filepath.Join(root, "actually-a-dir.ts")
	require.NoError(t, os.MkdirAll(dirPath, 0o755))

	brokenPath := writeFile(t, root, "route.ts", "const total = await prisma.report.count(,\n)\n")

	opts := newTestOptions(t, &config.Config{}, dirPath, brokenPath)
	op, err := NewFixOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()), "file level failures must not abort the run")

	assert.Equal(t, "const total = await prisma.report.count()\n", readFile(t, brokenPath))

	summary := opts.StatusMgr.Summarize()
	assert.Equal(t, 1, summary.Fixed)
	assert.Equal(t, 1, summary.Errors)
}

func TestFixOperation_TargetOrderInvariance(t *testing.T) {
	fix := func(t *testing.T, order []string) map[string]string {
		root := t.TempDir()
		files := map[string]string{
			"a.ts": "const meta = {\n  total: 100\n  page: 1\n}\n",
			"b.ts": "const total = await prisma.report.count(,\n)\n",
			"c.ts": "export const revalidate = 60\n",
		}
		paths := make(map[string]string, len(files))
		for rel, content := range files {
			paths[rel] = writeFile(t, root, rel, content)
		}

		targets := make([]string, 0, len(order))
		for _, rel := range order {
			targets = append(targets, paths[rel])
		}

		opts := newTestOptions(t, &config.Config{}, targets...)
		op, err := NewFixOperation(opts)
		require.NoError(t, err)
		require.NoError(t, op.Execute(context.Background()))

		got := make(map[string]string, len(files))
		for rel, p := range paths {
			got[rel] = readFile(t, p)
		}
		return got
	}

	forward := fix(t, []string{"a.ts", "b.ts", "c.ts"})
	reverse := fix(t, []string{"c.ts", "b.ts", "a.ts"})
	assert.Equal(t, forward, reverse, "processing order must not change file contents")
}

func TestFixOperation_ParallelMatchesSequential(t *testing.T) {
	run := func(t *testing.T, jobs int) ([]string, status.Summary) {
		root := t.TempDir()
		var paths []string
		for i := 0; i < 8; i++ {
			var content string
			if i%2 == 0 {
				content = fmt.Sprintf("const meta%d = {\n  total: %d\n  page: 1\n}\n", i, i)
			} else {
				content = fmt.Sprintf("export const revalidate%d = 60\n", i)
			}
			paths = append(paths, writeFile(t, root, fmt.Sprintf("src/file%d.ts", i), content))
		}

		cfg := &config.Config{Options: config.Options{Jobs: jobs}}
		opts := newTestOptions(t, cfg, paths...)

		op, err := NewFixOperation(opts)
		require.NoError(t, err)
		require.NoError(t, op.Execute(context.Background()))

		contents := make([]string, 0, len(paths))
		for _, p := range paths {
			contents = append(contents, readFile(t, p))
		}
		return contents, opts.StatusMgr.Summarize()
	}

	seqContents, seqSummary := run(t, 1)
	parContents, parSummary := run(t, 8)

	assert.Equal(t, seqContents, parContents, "worker count must not change results")
	assert.Equal(t, seqSummary, parSummary)
}

func TestFixOperation_GlobEnumeration(t *testing.T) {
	root := t.TempDir()
	broken := "const meta = {\n  total: 100\n  page: 1\n}\n"

	brokenPath := writeFile(t, root, "src/api/route.ts", broken)
	cleanPath := writeFile(t, root, "src/lib.ts", "export const revalidate = 60\n")
	depPath := writeFile(t, root, "node_modules/dep.ts", broken)

	cfg := &config.Config{
		Root:    root,
		Include: []string{"**/*.ts"},
		Ignore:  []string{"node_modules/**"},
	}

	opts := newTestOptions(t, cfg)
	op, err := NewFixOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Equal(t, "const meta = {\n  total: 100,\n  page: 1\n}\n", readFile(t, brokenPath))
	assert.Equal(t, "export const revalidate = 60\n", readFile(t, cleanPath))
	assert.Equal(t, broken, readFile(t, depPath), "ignored directories stay untouched")
}
