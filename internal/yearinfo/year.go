package yearinfo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/djherbis/times"
	"github.com/rwcarlsen/goexif/exif"

	"sorter/internal/classify"
	"sorter/internal/logging"
	"sorter/internal/services"
)

// Extractor resolves file years.
type Extractor struct {
	logger   *slog.Logger
	location *time.Location
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithLocation overrides the time zone used to turn modification times into
// years. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		if loc != nil {
			e.location = loc
		}
	}
}

// New builds an extractor. A nil logger discards metadata diagnostics.
func New(logger *slog.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		logger:   logging.NewComponentLogger(logger, "yearinfo"),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Year returns the four-digit year for path. Only a failure to stat the file
// is reported; unreadable EXIF data silently falls back to the mtime.
func (e *Extractor) Year(path, category string) (string, error) {
	if category == classify.Photos {
		year, err := CaptureYear(path)
		if err == nil {
			return year, nil
		}
		e.logger.Debug("exif year unavailable, using modification time",
			logging.String("path", path),
			logging.Error(err),
		)
	}
	return e.modYear(path)
}

func (e *Extractor) modYear(path string) (string, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return "", services.Wrap(services.ErrMetadataRead, "yearinfo", "stat", "Unable to read modification time", err)
	}
	return strconv.Itoa(ts.ModTime().In(e.location).Year()), nil
}

var errNoCaptureDate = errors.New("no capture date")

// CaptureYear reads the EXIF DateTimeOriginal tag and returns the text
// before its first colon when that text is exactly four digits.
func CaptureYear(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode exif: %w", err)
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return "", errNoCaptureDate
	}
	raw, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("read DateTimeOriginal: %w", err)
	}
	return parseExifYear(raw)
}

func parseExifYear(raw string) (string, error) {
	raw = strings.TrimSpace(strings.Trim(raw, "\x00"))
	year, _, _ := strings.Cut(raw, ":")
	if len(year) != 4 {
		return "", fmt.Errorf("%w: %q", errNoCaptureDate, raw)
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", errNoCaptureDate, raw)
		}
	}
	return year, nil
}
