package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sorter/internal/classify"
	"sorter/internal/config"
	"sorter/internal/history"
	"sorter/internal/logging"
	"sorter/internal/preflight"
	"sorter/internal/services"
	"sorter/internal/yearinfo"
)

// LockFileName is created inside the output base for the duration of a run.
const LockFileName = ".sorter.lock"

// ErrRunInProgress is returned when another run holds the output lock.
var ErrRunInProgress = errors.New("another sorter run is using this output directory")

// Recorder journals per-file outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) (int64, error)
}

// YearSource resolves the year directory for a file.
type YearSource interface {
	Year(path, category string) (string, error)
}

// Organizer moves files from a source tree into its output hierarchy.
type Organizer struct {
	cfg      *config.Config
	method   classify.Method
	table    *classify.Table
	years    YearSource
	recorder Recorder
	logger   *slog.Logger
	runID    string

	// per-run state
	base     string
	excluded []string
	summary  Summary
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithRecorder journals every outcome to r.
func WithRecorder(r Recorder) Option {
	return func(o *Organizer) {
		o.recorder = r
	}
}

// WithYearSource overrides how years are resolved.
func WithYearSource(y YearSource) Option {
	return func(o *Organizer) {
		if y != nil {
			o.years = y
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(o *Organizer) {
		o.runID = strings.TrimSpace(id)
	}
}

// New constructs an organizer for a single sort method. table may be nil
// when the method is not ByCustom.
func New(cfg *config.Config, method classify.Method, table *classify.Table, logger *slog.Logger, opts ...Option) (*Organizer, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "setup", "new organizer", "Configuration is required", nil)
	}
	if method == classify.MethodUnknown {
		return nil, services.Wrap(services.ErrInvalidSortMethod, "setup", "new organizer", "Sort method must be 1, 2 or 3", nil)
	}
	if table == nil {
		table = classify.NewTable()
	}
	o := &Organizer{
		cfg:    cfg,
		method: method,
		table:  table,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
	o.years = yearinfo.New(logger)
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Run sorts source in place. Per-file problems are reported through the
// summary; the returned error is non-nil only when the run could not start.
func (o *Organizer) Run(ctx context.Context, source string) (Summary, error) {
	root, err := preflight.CheckSourceDir(source)
	if err != nil {
		return Summary{}, err
	}

	base := o.cfg.OutputDir(root)
	if err := os.MkdirAll(base, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrInvalidSourcePath, "setup", "create output", "Unable to create output directory", err)
	}

	lockPath := filepath.Join(base, LockFileName)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("%w: %s", ErrRunInProgress, lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			o.logger.Warn("failed to release run lock", logging.String("lock", lockPath), logging.Error(err))
			return
		}
		if err := os.Remove(lockPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			o.logger.Debug("lock file not removed", logging.String("lock", lockPath), logging.Error(err))
		}
	}()

	runID := o.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithStage(ctx, "sorting")
	logger := logging.WithContext(ctx, o.logger)

	o.base = base
	o.excluded = []string{resolvePath(base)}
	if scratch := strings.TrimSpace(o.cfg.Paths.ScratchDir); scratch != "" {
		o.excluded = append(o.excluded, resolvePath(scratch))
	}
	o.summary = Summary{
		RunID:     runID,
		Source:    root,
		Output:    base,
		Method:    o.method,
		StartedAt: time.Now(),
	}

	for _, category := range o.table.Categories(o.method) {
		dir := filepath.Join(base, category)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, services.Wrap(services.ErrConfiguration, "setup", "create category", fmt.Sprintf("Unable to create %s", dir), err)
		}
	}

	logger.Info("sort started",
		logging.String("source", root),
		logging.String("output", base),
		logging.String("method", o.method.String()),
	)

	o.walk(ctx, root)

	o.summary.FinishedAt = time.Now()
	summary := o.summary
	logger.Info("sort finished",
		logging.Int("moved", summary.Moved),
		logging.Int("failed", summary.Failed),
		logging.Int("archives_expanded", summary.ArchivesExpanded),
		logging.Int("archives_failed", summary.ArchivesFailed),
		logging.Duration("duration", summary.Duration()),
	)
	return summary, nil
}

func (o *Organizer) record(ctx context.Context, entry history.Entry) {
	if o.recorder == nil {
		return
	}
	entry.RunID = o.summary.RunID
	if _, err := o.recorder.Record(ctx, entry); err != nil {
		o.logger.Warn("failed to journal action",
			logging.String("action", string(entry.Action)),
			logging.String("source", entry.Source),
			logging.Error(err),
		)
	}
}
