package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "doc", "adr", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, SystemDir), 0755))

	found, err := FindRoot(nested)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindRoot_FileIsNotARoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SystemDir), nil, 0644))

	found, err := FindRoot(dir)
	if err == nil {
		// Some ancestor of the temp dir may legitimately be a project.
		assert.NotEqual(t, dir, found)
		return
	}
	assert.ErrorIs(t, err, ErrRootNotFound)
}
