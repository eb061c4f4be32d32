package gallery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// DirWatcher watches a gallery root and its subdirectories for filesystem
// changes. Bursts of events (unpacking an archive, a camera import) collapse
// into a single onChange call after a quiet period.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func()

	done     chan struct{}
	stopOnce sync.Once
}

// NewDirWatcher starts watching dir. Only file-scheme locations can be
// watched; anything else returns an error and the gallery simply goes
// unwatched.
func NewDirWatcher(dir fyne.ListableURI, onChange func()) (*DirWatcher, error) {
	if dir.Scheme() != "file" {
		return nil, fmt.Errorf("cannot watch %s locations", dir.Scheme())
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	root := dir.Path()
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees go unwatched rather than failing the whole
			// watcher.
			return nil
		}
		if d.IsDir() {
			if addErr := fsw.Add(path); addErr != nil {
				fyne.LogError("could not watch "+path, addErr)
			}
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &DirWatcher{
		watcher:  fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *DirWatcher) run() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// New directories join the watch so a deep copy-in is noticed.
			// Added blindly; a failed add on a plain file is harmless.
			if ev.Op.Has(fsnotify.Create) {
				_ = w.watcher.Add(ev.Name)
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				// A fired-but-undrained timer would sneak a stale tick
				// through Reset, doubling up the notification.
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(watchDebounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fyne.LogError("directory watch error", err)
		case <-timerC(debounce):
			debounce = nil
			w.onChange()
		case <-w.done:
			return
		}
	}
}

// timerC returns the timer's channel, or a nil channel (blocks forever) when
// no timer is pending.
func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// Stop ends the watch. Safe to call more than once.
func (w *DirWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.watcher.Close()
	})
}
