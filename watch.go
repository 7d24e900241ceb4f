package icongen

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

// Watch generates the icon set, then regenerates it whenever the vector
// source changes. Removing the source is not an error: the next run simply
// falls back to the procedural path. Watch returns when the context is
// canceled.
func (g *Generator) Watch(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if _, err := g.Generate(ctx); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory, not the file: the source may not exist yet, and
	// editors replace files via rename
	if err := watcher.Add(filepath.Dir(g.svgPath)); err != nil {
		return err
	}
	base := filepath.Base(g.svgPath)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		g.logger.Info("waiting for changes", slog.String("path", g.svgPath))
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				g.logger.Info("vector source changed", slog.String("op", event.Op.String()))
				if _, err := g.Generate(ctx); err != nil {
					return err
				}
				g.logger.Info("waiting for changes", slog.String("path", g.svgPath))
			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return werr
			}
		}
	})
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
