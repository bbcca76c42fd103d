package organizer

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"sorter/internal/classify"
	"sorter/internal/logging"
)

// walk visits every regular file under root and reports whether all of them
// were handled without failure.
func (o *Organizer) walk(ctx context.Context, root string) bool {
	logger := logging.WithContext(ctx, o.logger)
	excluded := o.exclusionsFor(root)
	ok := true

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.WarnWithContext(logger, "walk entry unreadable", "walk_error",
				logging.String("path", path),
				logging.Error(err),
				logging.Hint("check permissions on the directory"),
				logging.Impact("entry and its contents were not sorted"),
			)
			ok = false
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && isExcluded(excluded, path) {
				logger.Debug("skipping excluded directory", logging.String("path", path))
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug("skipping non-regular entry",
				logging.String("path", path),
				logging.String("type", d.Type().String()),
			)
			o.summary.Skipped++
			return nil
		}

		if !o.dispatch(ctx, path) {
			ok = false
		}
		return nil
	})
	if err != nil {
		logging.WarnWithContext(logger, "walk aborted", "walk_error",
			logging.String("root", root),
			logging.Error(err),
		)
		ok = false
	}
	return ok
}

// dispatch hands an archive to the expander and everything else to the
// strategy for the run's method.
func (o *Organizer) dispatch(ctx context.Context, path string) bool {
	if classify.IsArchive(filepath.Base(path)) {
		return o.expand(ctx, path)
	}
	return o.route(ctx, path) == nil
}

// exclusionsFor drops any excluded tree that contains root itself, so a
// scratch directory can still be walked when it is the thing being sorted.
func (o *Organizer) exclusionsFor(root string) []string {
	resolvedRoot := resolvePath(root)
	out := make([]string, 0, len(o.excluded))
	for _, dir := range o.excluded {
		if !isWithin(dir, resolvedRoot) {
			out = append(out, dir)
		}
	}
	return out
}

func isExcluded(excluded []string, path string) bool {
	resolved := resolvePath(path)
	for _, dir := range excluded {
		if isWithin(dir, resolved) {
			return true
		}
	}
	return false
}

// resolvePath returns the absolute, symlink-free form of path when it can be
// computed and the cleaned absolute path otherwise.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// isWithin reports whether path equals base or lies beneath it.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
