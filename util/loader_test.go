package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	return path
}

func TestIsImagePath(t *testing.T) {
	assert.True(t, IsImagePath("a.jpg"))
	assert.True(t, IsImagePath("b.PNG"))
	assert.True(t, IsImagePath("c.webp"))
	assert.False(t, IsImagePath("d.txt"))
	assert.False(t, IsImagePath("noext"))
}

func TestCollectImagePaths_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.png")

	paths, err := CollectImagePaths(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestCollectImagePaths_Directory(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.jpg")
	a := writeFile(t, dir, "a.png")
	writeFile(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	paths, err := CollectImagePaths(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths, "images sorted by name, non-images skipped")
}

func TestCollectImagePaths_Missing(t *testing.T) {
	_, err := CollectImagePaths(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestLoadDirectoryImageFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.bmp")

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, []byte("data"), f.Data)
	}
}
