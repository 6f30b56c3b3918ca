package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/internal/loader"
	"github.com/leapstack-labs/pystyle/internal/testutil"
)

func TestDiscoverDirectory(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"main.py":                   "x = 1\n",
		"README.md":                 "# readme\n",
		"pkg/b.py":                  "",
		"pkg/a.py":                  "",
		"pkg/sub/c.py":              "",
		"pkg/__pycache__/a.pyc.py":  "",
		".venv/lib/site.py":         "",
		"tools/BUILD":               "",
		"tools/defs.bzl":            "",
		"node_modules/pkg/index.py": "",
	})

	files, err := loader.Discover(root, loader.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "main.py"),
		filepath.Join(root, "pkg", "a.py"),
		filepath.Join(root, "pkg", "b.py"),
		filepath.Join(root, "pkg", "sub", "c.py"),
	}, files)
}

func TestDiscoverPatterns(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"app.py":         "",
		"tools/BUILD":    "",
		"tools/defs.bzl": "",
		"tools/notes.md": "",
	})

	opts := loader.DefaultOptions()
	opts.Extensions = []string{".py", ".bzl", "BUILD"}
	opts.Logger = testutil.NewTestLogger(t)

	files, err := loader.Discover(root, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "app.py"),
		filepath.Join(root, "tools", "BUILD"),
		filepath.Join(root, "tools", "defs.bzl"),
	}, files)
}

func TestDiscoverSingleFile(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"notes.txt": "x = 1\n"})
	path := filepath.Join(root, "notes.txt")

	files, err := loader.Discover(path, loader.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverExcludedRootIsWalked(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"venv/tool.py": ""})

	files, err := loader.Discover(filepath.Join(root, "venv"), loader.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscoverMissing(t *testing.T) {
	_, err := loader.Discover(filepath.Join(t.TempDir(), "absent"), loader.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrInputNotFound)
}

func TestReadFile(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"plain.py": "x = 1\n",
		"bom.py":   "\ufeffx = 1\n",
	})

	src, err := loader.ReadFile(filepath.Join(root, "plain.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", src)

	src, err = loader.NewReader(testutil.NewTestLogger(t)).ReadFile(filepath.Join(root, "bom.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", src)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loader.ReadFile(filepath.Join(dir, "missing.py"))
	assert.ErrorIs(t, err, loader.ErrInputNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "latin1.py")
	require.NoError(t, os.WriteFile(bad, []byte("name = '\xe9'\n"), 0o644))
	_, err = loader.NewReader(nil).ReadFile(bad)
	assert.ErrorIs(t, err, loader.ErrInvalidEncoding)
}
