package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sorter/internal/classify"
	"sorter/internal/fileutil"
	"sorter/internal/history"
	"sorter/internal/logging"
	"sorter/internal/services"
)

// route classifies path, resolves its target directory, and moves it there.
func (o *Organizer) route(ctx context.Context, path string) error {
	logger := logging.WithContext(ctx, o.logger)

	p, err := o.plan(path)
	if err != nil {
		o.fail(ctx, path, p, err)
		return err
	}

	target, err := o.place(ctx, path, p.Dir)
	if err != nil {
		o.fail(ctx, path, p, err)
		return err
	}

	o.summary.addMoved(p.Category)
	logger.Info("file moved",
		logging.String("source", path),
		logging.String("target", target),
		logging.String("category", p.Category),
	)
	o.record(ctx, history.Entry{
		Action:   history.ActionMoved,
		Source:   path,
		Target:   target,
		Category: p.Category,
		Year:     p.Year,
	})
	return nil
}

func (o *Organizer) fail(ctx context.Context, path string, p placement, err error) {
	o.summary.Failed++
	logging.WarnWithContext(logging.WithContext(ctx, o.logger), "file not moved", services.Classify(err),
		logging.String("source", path),
		logging.String("category", p.Category),
		logging.Error(err),
		logging.Hint("check permissions and free space on the output directory"),
	)
	o.record(ctx, history.Entry{
		Action:   history.ActionMoveFailed,
		Source:   path,
		Category: p.Category,
		Year:     p.Year,
		Error:    err.Error(),
	})
}

// place moves src into dir under the first free name and returns the final
// path. The source stays where it was on failure.
func (o *Organizer) place(ctx context.Context, src, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrMoveFailed, "moving", "create directory", fmt.Sprintf("Unable to create %s", dir), err)
	}
	target, err := nextFreePath(dir, filepath.Base(src))
	if err != nil {
		return "", services.Wrap(services.ErrMoveFailed, "moving", "allocate name", "Unable to allocate a free target name", err)
	}
	result, err := fileutil.MoveFile(src, target)
	if err != nil {
		return "", services.Wrap(services.ErrMoveFailed, "moving", "move file", "Unable to move file", err)
	}
	if result.SourceRemoveErr != nil {
		logging.WarnWithContext(logging.WithContext(ctx, o.logger), "copied across devices but source remains", "source_cleanup_failed",
			logging.String("source", src),
			logging.String("target", target),
			logging.Error(result.SourceRemoveErr),
			logging.Hint("delete the source file manually"),
			logging.Impact("the file now exists in both places"),
		)
	}
	return target, nil
}

// nextFreePath returns dir/name if nothing exists there, otherwise the first
// dir/stem_N.ext (N = 1, 2, ...) that is free.
func nextFreePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	stem, ext := classify.SplitExt(name)
	for n := 1; ; n++ {
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
}
