package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cache.dat")
	writeFile(t, file)

	outcome := Remove(Target{Path: file})
	assert.Equal(t, Removed, outcome.Status)
	assert.NoFileExists(t, file)
}

func TestRemoveIsIdempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cache.dat")
	writeFile(t, file)

	target := Target{Path: file}
	assert.Equal(t, Removed, Remove(target).Status)

	// Deleting the same target again is a skip, never an error.
	second := Remove(target)
	assert.Equal(t, SkippedNotFound, second.Status)
	assert.Empty(t, second.Reason)
}

func TestRemoveNonEmptyDirWithoutRecurse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	inner := filepath.Join(dir, "entry.bin")
	writeFile(t, inner)

	outcome := Remove(Target{Path: dir, IsDir: true})
	assert.Equal(t, SkippedError, outcome.Status)
	assert.NotEmpty(t, outcome.Reason)

	// The directory and its contents must be left intact.
	assert.DirExists(t, dir)
	assert.FileExists(t, inner)
}

func TestRemoveNonEmptyDirWithRecurse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	writeFile(t, filepath.Join(dir, "sub", "entry.bin"))

	outcome := Remove(Target{Path: dir, IsDir: true, Recurse: true})
	assert.Equal(t, Removed, outcome.Status)
	assert.NoDirExists(t, dir)
}

func TestRemoveEmptyDirWithoutRecurse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.Mkdir(dir, 0o755))

	outcome := Remove(Target{Path: dir, IsDir: true})
	assert.Equal(t, Removed, outcome.Status)
	assert.NoDirExists(t, dir)
}

func TestRemoveFileNeverRecursesIntoSiblings(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "thumbcache_256.db")
	sibling := filepath.Join(root, "thumbcache_idx.db")
	writeFile(t, file)
	writeFile(t, sibling)

	// Recurse set on a plain file must degrade to plain deletion.
	outcome := Remove(Target{Path: file, Recurse: true})
	assert.Equal(t, Removed, outcome.Status)
	assert.FileExists(t, sibling)
}
