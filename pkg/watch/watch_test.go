package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func writeManifest(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestWatcher(t *testing.T, content string) (*Watcher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	writeManifest(t, path, content)

	w, err := New(Options{Path: path, Served: "1.0.0", Debounce: 20 * time.Millisecond, Logger: nopLogger()})
	require.NoError(t, err)
	return w, path
}

func TestHandleEventDetectsContentChanges(t *testing.T) {
	w, path := newTestWatcher(t, `{"version": "1.0.0"}`)
	t.Cleanup(func() { _ = w.fsw.Close() })

	ev := fsnotify.Event{Name: path, Op: fsnotify.Write}

	// no change on disk
	assert.False(t, w.handleEvent(ev))

	writeManifest(t, path, `{"version": "1.0.1"}`)
	assert.True(t, w.handleEvent(ev))
	assert.True(t, w.changeDetected)

	// same content written again
	w.changeDetected = false
	writeManifest(t, path, `{"version": "1.0.1"}`)
	assert.False(t, w.handleEvent(ev))

	require.NoError(t, os.Remove(path))
	assert.True(t, w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove}))
	assert.False(t, w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove}))

	writeManifest(t, path, `{"version": "1.0.1"}`)
	assert.True(t, w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create}))
}

func TestOnDebounceFireReportsOnlyVersionDrift(t *testing.T) {
	w, path := newTestWatcher(t, `{"name": "a", "version": "1.0.0"}`)
	t.Cleanup(func() { _ = w.fsw.Close() })

	var got []string
	hook := func(v string) { got = append(got, v) }

	// nothing pending
	w.onDebounceFire(hook)
	assert.Empty(t, got)

	writeManifest(t, path, `{"name": "b", "version": "1.0.0"}`)
	w.changeDetected = true
	w.onDebounceFire(hook)
	assert.Empty(t, got)

	writeManifest(t, path, `{"version": `)
	w.changeDetected = true
	w.onDebounceFire(hook)
	assert.Empty(t, got)

	writeManifest(t, path, `{"version": "1.1.0"}`)
	w.changeDetected = true
	w.onDebounceFire(hook)
	assert.Equal(t, []string{"1.1.0"}, got)
	assert.False(t, w.changeDetected)
}

func TestRunReportsDrift(t *testing.T) {
	w, path := newTestWatcher(t, `{"version": "1.0.0"}`)

	ctx, cancel := context.WithCancel(context.Background())
	drift := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(v string) { drift <- v }) }()

	// an unrelated file in the same directory is ignored
	writeManifest(t, filepath.Join(filepath.Dir(path), "other.json"), `{"version": "9.9.9"}`)
	writeManifest(t, path, `{"version": "2.0.0"}`)

	select {
	case v := <-drift:
		assert.Equal(t, "2.0.0", v)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for drift notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(Options{Path: filepath.Join(t.TempDir(), "gone", "package.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
