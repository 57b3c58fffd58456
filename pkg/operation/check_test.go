package operation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/status"
)

func TestCheckOperation_Execute(t *testing.T) {
	root := t.TempDir()

	broken := "const meta = {\n  total: 100\n  page: 1\n}\n"
	brokenPath := writeFile(t, root, "route.ts", broken)
	cleanPath := writeFile(t, root, "lib.ts", "export const revalidate = 60\n")

	opts := newTestOptions(t, &config.Config{}, brokenPath, cleanPath)
	op, err := NewCheckOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.True(t, op.Dirty())
	assert.Equal(t, broken, readFile(t, brokenPath), "check must never write")

	diffs := op.Diffs()
	require.Len(t, diffs, 1)
	assert.Equal(t, brokenPath, diffs[0].Path)
	assert.Equal(t, 1, diffs[0].Rewrites)
	assert.Contains(t, diffs[0].Diff, "-  total: 100\n")
	assert.Contains(t, diffs[0].Diff, "+  total: 100,\n")

	info, err := opts.StatusMgr.GetFileInfo(context.Background(), brokenPath)
	require.NoError(t, err)
	assert.Equal(t, status.StatusFixed, info.Status)
	assert.Zero(t, info.Size, "nothing is written in check mode")

	summary := opts.StatusMgr.Summarize()
	assert.Equal(t, 1, summary.Fixed)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, int64(0), summary.BytesWritten)
}

func TestCheckOperation_CleanTree(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "lib.ts", "export const revalidate = 60\n")

	opts := newTestOptions(t, &config.Config{}, path)
	op, err := NewCheckOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.False(t, op.Dirty())
	assert.Empty(t, op.Diffs())
}

func TestCheckOperation_DiffsSortedByPath(t *testing.T) {
	root := t.TempDir()
	broken := "const x = f(1,\n"

	aPath := writeFile(t, root, "a.ts", broken)
	bPath := writeFile(t, root, "b.ts", broken)
	cPath := writeFile(t, root, "c.ts", broken)

	opts := newTestOptions(t, &config.Config{}, cPath, aPath, bPath)
	op, err := NewCheckOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	diffs := op.Diffs()
	require.Len(t, diffs, 3)
	assert.Equal(t, []string{aPath, bPath, cPath}, []string{diffs[0].Path, diffs[1].Path, diffs[2].Path})
}

func TestCheckOperation_PreviewsFix(t *testing.T) {
	content := "const total = await prisma.report.count(,\n)\n"

	checkPath := writeFile(t, t.TempDir(), "route.ts", content)
	checkOpts := newTestOptions(t, &config.Config{}, checkPath)
	check, err := NewCheckOperation(checkOpts)
	require.NoError(t, err)
	require.NoError(t, check.Execute(context.Background()))

	fixPath := writeFile(t, t.TempDir(), "route.ts", content)
	fixOpts := newTestOptions(t, &config.Config{}, fixPath)
	fix, err := NewFixOperation(fixOpts)
	require.NoError(t, err)
	require.NoError(t, fix.Execute(context.Background()))

	require.True(t, check.Dirty())
	diffs := check.Diffs()
	require.Len(t, diffs, 1)

	info, err := fixOpts.StatusMgr.GetFileInfo(context.Background(), fixPath)
	require.NoError(t, err)
	assert.Equal(t, info.Rewrites, diffs[0].Rewrites, "check must predict exactly what fix applies")
}
