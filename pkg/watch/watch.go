// Package watch notices when the manifest on disk drifts from the version a
// running server captured at startup. It only reports the drift; the served
// version never changes until the process is restarted.
package watch

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/hellosrv/pkg/manifest"
	log2 "github.com/yeisme/hellosrv/pkg/utils/log"
)

// DefaultDebounce is used when Options.Debounce is not positive.
const DefaultDebounce = 300 * time.Millisecond

// Func is called with the on-disk version whenever it differs from the served one.
type Func func(onDisk string)

// Options configures a manifest watcher.
type Options struct {
	Path     string        // manifest file
	Served   string        // version captured at startup
	Debounce time.Duration // quiet period before the manifest is re-read
	Logger   log2.Logger
}

// fileState stores the metadata and content hash of the manifest to detect real changes.
type fileState struct {
	exists  bool
	modTime time.Time
	size    int64
	hash    string
}

// Watcher watches the directory containing the manifest, since editors often
// replace files by rename rather than writing them in place.
type Watcher struct {
	path     string
	served   string
	debounce time.Duration
	logger   log2.Logger
	fsw      *fsnotify.Watcher

	mu             sync.Mutex
	state          fileState
	timer          *time.Timer
	changeDetected bool
}

// New registers the manifest's directory with fsnotify. Events are not
// processed until Run is called.
func New(opts Options) (*Watcher, error) {
	if opts.Path == "" {
		return nil, errors.New("manifest path is empty")
	}
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.Path, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log2.GetLogger()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		served:   opts.Served,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
		state:    statFile(path),
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context, hook Func) error {
	defer func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.logger.Error().Err(err).Msg("failed to close watcher")
		}
	}()

	w.logger.Debug().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching manifest for drift")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if w.handleEvent(event) {
				w.armOrResetDebounce(func() { w.onDebounceFire(hook) })
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("manifest watcher error")
		}
	}
}

// handleEvent updates the cached state and reports whether the manifest
// content really changed.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	w.logger.Trace().Str("op", event.Op.String()).Str("name", event.Name).Msg("manifest event")

	w.mu.Lock()
	defer w.mu.Unlock()

	next := statFile(w.path)
	prev := w.state
	w.state = next

	switch {
	case prev.exists != next.exists:
	case !next.exists:
		return false
	case prev.hash != "" && next.hash != "":
		if prev.hash == next.hash {
			return false
		}
	case prev.size == next.size && prev.modTime.Equal(next.modTime):
		return false
	}

	w.changeDetected = true
	return true
}

// armOrResetDebounce 启动或重置防抖定时器
func (w *Watcher) armOrResetDebounce(fire func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, fire)
}

// onDebounceFire re-reads the manifest after the quiet period and reports drift.
func (w *Watcher) onDebounceFire(hook Func) {
	w.mu.Lock()
	if !w.changeDetected {
		w.mu.Unlock()
		return
	}
	w.changeDetected = false
	w.timer = nil
	w.mu.Unlock()

	onDisk, err := manifest.ReadVersion(w.path)
	if err != nil {
		w.logger.Warn().Err(err).Str("serving", w.served).
			Msg("manifest on disk is no longer readable; the running version is unchanged")
		return
	}
	if onDisk == w.served {
		w.logger.Debug().Str("version", onDisk).Msg("manifest changed but version is the same")
		return
	}

	w.logger.Warn().Str("serving", w.served).Str("on_disk", onDisk).
		Msg("manifest version changed on disk; restart to serve the new version")
	if hook != nil {
		hook(onDisk)
	}
}

// statFile captures the manifest state; a missing file yields the zero state.
func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileState{}
	}
	return fileState{
		exists:  true,
		modTime: info.ModTime(),
		size:    info.Size(),
		hash:    calculateFileHash(path),
	}
}

// calculateFileHash computes the MD5 of the file content, or "" on error.
func calculateFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = file.Close() }()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return ""
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
