package credentials

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cfranzen/modelhub/log"
)

// ReloadKeyMark selects which credential keys matter to a running
// registry. Only changes to keys whose name contains this substring are
// reported by the watcher.
const ReloadKeyMark = "API_KEY"

// Watcher reports credential changes in a yaml credentials file. It
// diffs file contents on every filesystem event, so repeated events for
// one save collapse into a single callback.
type Watcher struct {
	path     string
	onChange func(keys []string)

	fsw  *fsnotify.Watcher
	prev map[string]string
}

func NewWatcher(path string, onChange func(keys []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// watch the directory, editors replace the file on save
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	prev, err := ReadFile(path)
	if err != nil {
		prev = map[string]string{}
	}

	return &Watcher{
		path:     path,
		onChange: onChange,
		fsw:      fsw,
		prev:     prev,
	}, nil
}

// Run blocks until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// renames may deliver before the new file is in place
			time.Sleep(10 * time.Millisecond)
			w.check()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warnf("credentials watch: %v", err)
		}
	}
}

func (w *Watcher) check() {
	next, err := ReadFile(w.path)
	if err != nil {
		next = map[string]string{}
	}

	changed := diffKeys(w.prev, next)
	w.prev = next

	marked := []string{}
	for _, key := range changed {
		if strings.Contains(key, ReloadKeyMark) {
			marked = append(marked, key)
		}
	}
	if len(marked) == 0 {
		return
	}

	log.Infow("credentials changed", "keys", marked)
	w.onChange(marked)
}

// diffKeys lists keys added, removed, or revalued between prev and next.
func diffKeys(prev, next map[string]string) []string {
	keys := []string{}
	for key, v := range next {
		if pv, ok := prev[key]; !ok || pv != v {
			keys = append(keys, key)
		}
	}
	for key := range prev {
		if _, ok := next[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
