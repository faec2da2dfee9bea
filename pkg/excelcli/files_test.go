package excelcli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.xlsx", "a.xlsx", "b.xls", "notes.txt", "sub/d.xlsx", "sub/deeper/e.xlsx"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xlsx"), 0755))

	files, err := ResolveFiles(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.xlsx"),
		filepath.Join(dir, "c.xlsx"),
	}, files, "sorted, directories skipped")

	files, err = ResolveFiles(filepath.Join(dir, "**", "*.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.xlsx"),
		filepath.Join(dir, "c.xlsx"),
		filepath.Join(dir, "sub", "d.xlsx"),
		filepath.Join(dir, "sub", "deeper", "e.xlsx"),
	}, files)

	files, err = ResolveFiles(filepath.Join(dir, "*.{xls,xlsx}"), filepath.Join(dir, "c.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.xlsx"),
		filepath.Join(dir, "b.xls"),
	}, files)

	files, err = ResolveFiles(filepath.Join(dir, "*.ods"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestResolveFilesBadPattern(t *testing.T) {
	_, err := ResolveFiles("reports/[a-")
	assert.ErrorIs(t, err, ErrPattern)
}
