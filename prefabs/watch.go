package prefabs

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before it is reported. Editors
// tend to write twice.
const debounce = 100 * time.Millisecond

// settler holds changed files until they have been quiet for wait.
type settler struct {
	wait    time.Duration
	pending map[string]time.Time
}

func newSettler(wait time.Duration) *settler {
	return &settler{wait: wait, pending: make(map[string]time.Time)}
}

func (s *settler) touch(name string, now time.Time) {
	s.pending[name] = now
}

// due removes and returns the settled files in name order, along with how
// long until the next pending file settles. The wait is zero when nothing is
// pending.
func (s *settler) due(now time.Time) ([]string, time.Duration) {
	var (
		ready []string
		next  time.Duration
	)
	for _, name := range slices.Sorted(maps.Keys(s.pending)) {
		left := s.pending[name].Add(s.wait).Sub(now)
		if left <= 0 {
			ready = append(ready, name)
			delete(s.pending, name)
			continue
		}
		if next == 0 || left < next {
			next = left
		}
	}
	return ready, next
}

// Watcher reports changed catalog and script files under the watched
// directories. Events and Errors are closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	pending := newSettler(debounce)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isCatalogFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			pending.touch(event.Name, time.Now())
			timer.Reset(debounce)
			settled = timer.C
		case <-settled:
			ready, next := pending.due(time.Now())
			if next > 0 {
				timer.Reset(next)
			} else {
				settled = nil
			}
			for _, name := range ready {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func isCatalogFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
