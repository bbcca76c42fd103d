package organizer

import (
	"sort"
	"time"

	"sorter/internal/classify"
)

// Summary counts what a run did.
type Summary struct {
	RunID            string
	Source           string
	Output           string
	Method           classify.Method
	Moved            int
	Failed           int
	ArchivesExpanded int
	ArchivesFailed   int
	Skipped          int
	StartedAt        time.Time
	FinishedAt       time.Time

	byCategory map[string]int
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string
	Files    int
}

// Duration is the wall time of the run.
func (s Summary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Categories returns moved-file counts per category, sorted by name.
func (s Summary) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(s.byCategory))
	for name, count := range s.byCategory {
		out = append(out, CategoryCount{Category: name, Files: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// CategoryFiles returns how many files were moved into category.
func (s Summary) CategoryFiles(category string) int {
	return s.byCategory[category]
}

// HasFailures reports whether any file or archive could not be handled.
func (s Summary) HasFailures() bool {
	return s.Failed > 0 || s.ArchivesFailed > 0
}

func (s *Summary) addMoved(category string) {
	if s.byCategory == nil {
		s.byCategory = map[string]int{}
	}
	s.Moved++
	s.byCategory[category]++
}
