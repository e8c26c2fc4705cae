package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CharacterFile), []byte("name: a\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, CharacterFile, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for character.yaml")
	}
}

func TestWatcherReportsAfterBurstSettles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, CharacterFile)
	require.NoError(t, os.WriteFile(path, []byte("name: half"), 0o644))
	time.Sleep(w.debounce / 3)
	require.NoError(t, os.WriteFile(path, []byte("name: whole\n"), 0o644))
	lastWrite := time.Now()

	select {
	case name := <-w.Events:
		assert.Equal(t, CharacterFile, name)
		assert.GreaterOrEqual(t, time.Since(lastWrite), w.debounce/2, "reported before the file went quiet")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "name: whole\n", string(data))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for character.yaml")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice: %s", name)
	case <-time.After(3 * w.debounce):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}
