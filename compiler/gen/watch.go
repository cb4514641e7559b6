package gen

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the watcher waits after the last change before
// triggering a regeneration, so editor save bursts cause one run.
const debounce = 250 * time.Millisecond

// Watch re-runs fn whenever a Go file under dir changes, until ctx is
// done. It is used to regenerate while schema files are being edited:
//
//	err := gen.Watch(ctx, "./schema", func(ctx context.Context) error {
//	    model, err := rebuild(ctx)
//	    if err != nil { return err }
//	    return gen.Generate(ctx, model, opts...)
//	})
//
// An error from fn stops the watch and is returned.
func Watch(ctx context.Context, dir string, fn func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ".go" {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-pending:
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}
