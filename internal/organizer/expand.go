package organizer

import (
	"context"
	"errors"
	"os"
	"strings"

	"sorter/internal/archive"
	"sorter/internal/history"
	"sorter/internal/logging"
	"sorter/internal/services"
)

// expand unpacks an archive into a scratch directory, sorts the contents
// with the run's rules, and deletes the archive when every extracted file
// was placed. It reports whether the archive was fully handled.
func (o *Organizer) expand(ctx context.Context, path string) bool {
	ctx = services.WithArchive(ctx, path)
	ctx = services.WithStage(ctx, "expanding")
	logger := logging.WithContext(ctx, o.logger)

	scratch, err := os.MkdirTemp(o.scratchRoot(), "sorter-extract-*")
	if err != nil {
		o.archiveFailed(ctx, path, history.ActionArchiveFailed,
			services.Wrap(services.ErrArchiveProcessing, "expanding", "create scratch", "Unable to create scratch directory", err))
		return false
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			logging.WarnWithContext(logger, "scratch directory not removed", "scratch_cleanup_failed",
				logging.String("scratch", scratch),
				logging.Error(err),
				logging.Hint("delete the directory manually"),
				logging.Impact("disk space is not reclaimed"),
			)
		}
	}()

	result, err := archive.Extract(path, scratch, archive.Options{RestoreTimes: o.cfg.Sorting.RestoreArchiveTimes})
	if err != nil {
		if errors.Is(err, archive.ErrInvalidArchive) {
			o.archiveFailed(ctx, path, history.ActionArchiveInvalid,
				services.Wrap(services.ErrInvalidArchive, "expanding", "extract", "Archive is not valid", err))
		} else {
			o.archiveFailed(ctx, path, history.ActionArchiveFailed,
				services.Wrap(services.ErrArchiveProcessing, "expanding", "extract", "Unable to extract archive", err))
		}
		return false
	}
	logger.Info("archive extracted",
		logging.String("kind", result.Kind.String()),
		logging.Int("files", result.Files),
		logging.Int("dirs", result.Dirs),
		logging.Int("skipped_entries", result.Skipped),
		logging.String("scratch", scratch),
	)

	if !o.walk(ctx, scratch) {
		o.archiveFailed(ctx, path, history.ActionArchiveFailed,
			services.Wrap(services.ErrArchiveProcessing, "expanding", "sort contents", "Some extracted files could not be sorted; archive kept", nil))
		return false
	}

	if err := os.Remove(path); err != nil {
		o.archiveFailed(ctx, path, history.ActionArchiveFailed,
			services.Wrap(services.ErrArchiveProcessing, "expanding", "delete archive", "Contents sorted but archive could not be deleted", err))
		return false
	}

	o.summary.ArchivesExpanded++
	logger.Info("archive expanded and removed")
	o.record(ctx, history.Entry{Action: history.ActionArchiveExpanded, Source: path})
	return true
}

func (o *Organizer) archiveFailed(ctx context.Context, path string, action history.Action, err error) {
	o.summary.ArchivesFailed++
	hint := "check free space in the scratch directory"
	if action == history.ActionArchiveInvalid {
		hint = "verify the archive opens with another tool"
	}
	logging.ErrorWithContext(logging.WithContext(ctx, o.logger), "archive not processed", services.Classify(err),
		logging.Error(err),
		logging.Hint(hint),
		logging.Impact("archive left in place"),
	)
	o.record(ctx, history.Entry{Action: action, Source: path, Error: err.Error()})
}

func (o *Organizer) scratchRoot() string {
	dir := strings.TrimSpace(o.cfg.Paths.ScratchDir)
	if dir == "" {
		return ""
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		o.logger.Debug("scratch dir unavailable, using system temp", logging.String("scratch_dir", dir), logging.Error(err))
		return ""
	}
	return dir
}
