package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSourcePath = errors.New("invalid source path")
	ErrInvalidSortMethod = errors.New("invalid sort method")
	ErrMetadataRead      = errors.New("metadata read failure")
	ErrMoveFailed        = errors.New("move failure")
	ErrInvalidArchive    = errors.New("invalid archive")
	ErrArchiveProcessing = errors.New("archive processing failure")
	ErrConfiguration     = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrMoveFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err must stop a run before any file is touched.
// Everything else is reported per file and the walk continues.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrInvalidSourcePath), errors.Is(err, ErrInvalidSortMethod), errors.Is(err, ErrConfiguration):
		return true
	default:
		return false
	}
}

// Classify maps an error to a short snake_case label used as the log
// event_type and the history action.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidSourcePath):
		return "invalid_source_path"
	case errors.Is(err, ErrInvalidSortMethod):
		return "invalid_sort_method"
	case errors.Is(err, ErrMetadataRead):
		return "metadata_read_failed"
	case errors.Is(err, ErrInvalidArchive):
		return "archive_invalid"
	case errors.Is(err, ErrArchiveProcessing):
		return "archive_failed"
	case errors.Is(err, ErrConfiguration):
		return "configuration_error"
	default:
		return "move_failed"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "sorter failure"
	}
	return strings.Join(parts, ": ")
}
