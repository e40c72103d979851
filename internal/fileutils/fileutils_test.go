package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/camt-import/internal/fileutils"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Document/>"), 0644))

	assert.True(t, fileutils.FileExists(path))
	assert.False(t, fileutils.FileExists(filepath.Join(dir, "missing.xml")))
	assert.False(t, fileutils.FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(dir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(nested))
	assert.True(t, fileutils.DirectoryExists(nested))

	// Calling again on an existing directory is a no-op.
	assert.NoError(t, fileutils.EnsureDirectoryExists(nested))
}

func TestListXMLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.XML", "notes.txt", "c.Xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := fileutils.ListXMLFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"a.XML", "b.xml", "c.Xml"}, names)
}

func TestListXMLFiles_EmptyDirectory(t *testing.T) {
	files, err := fileutils.ListXMLFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "done.xml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, fileutils.Remove(path))
	assert.False(t, fileutils.FileExists(path))

	err := fileutils.Remove(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete")
}
