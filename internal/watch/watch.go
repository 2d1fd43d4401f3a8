// Package watch implements the out-of-scope `check` subcommand's file
// watcher (spec.md §5): it serializes re-runs of the lex/parse/analyze
// pipeline onto a single worker and debounces by file-content hash, so a
// save that doesn't change the bytes (e.g. an editor touch) never
// triggers a re-run.
package watch

import (
	"context"
	"crypto/sha256"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Result is one run of the pipeline over the watched file's current
// contents.
type Result struct {
	Source string
	Err    error // non-nil when the file could not be read or the watcher reported an error
}

// Check runs fn once per distinct content hash of path, starting
// immediately with the file's current contents, then again each time a
// write event changes the hash, until ctx is canceled. Every run — the
// first and all subsequent ones — happens on the calling goroutine, so
// fn never needs to be concurrency-safe (spec.md §5 "The core itself
// need not be thread-safe").
func Check(ctx context.Context, path string, fn func(Result)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	var lastHash [32]byte
	runIfChanged := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fn(Result{Err: err})
			return
		}
		hash := sha256.Sum256(data)
		if hash == lastHash {
			return
		}
		lastHash = hash
		fn(Result{Source: string(data)})
	}

	runIfChanged()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				runIfChanged()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(Result{Err: werr})
		}
	}
}
