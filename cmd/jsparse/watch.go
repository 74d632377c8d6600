package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// watch parses a file again after every write until ctx is done. It watches the parent directories since editors often replace files by renaming.
func (r *runner) watch(ctx context.Context, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer w.Close()

	files := map[string]string{} // absolute path to the path as given
	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrap(err, path)
		}
		files[abs] = path
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return errors.Wrapf(err, "watching %s", dir)
			}
			dirs[dir] = true
		}
	}
	r.logger.Info("watching", zap.Int("files", len(files)), zap.Int("dirs", len(dirs)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path, ok := files[filepath.Clean(ev.Name)]
			if !ok || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			r.logger.Debug("changed", zap.String("file", path), zap.Stringer("op", ev.Op))
			res, err := r.parseFile(path)
			if err != nil {
				r.logger.Warn("parse", zap.Error(err))
				continue
			}
			if err := r.report(res); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher", zap.Error(err))
		}
	}
}
