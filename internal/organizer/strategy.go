package organizer

import (
	"path/filepath"

	"sorter/internal/classify"
)

// placement is where a strategy sends a file.
type placement struct {
	Category string
	Year     string
	Dir      string
}

// plan applies the run's sort method to a file:
//
//	ByYear   <base>/<Category>/<Year>
//	ByType   <base>/<Category>
//	ByCustom <base>/<Category>/<Year>, category from fixed then custom then Other
func (o *Organizer) plan(path string) (placement, error) {
	p := placement{Category: o.table.Lookup(filepath.Base(path), o.method)}
	if o.method.UsesYear() {
		year, err := o.years.Year(path, p.Category)
		if err != nil {
			return p, err
		}
		p.Year = year
	}
	p.Dir = targetDir(o.base, o.method, p.Category, p.Year)
	return p, nil
}

// targetDir is the directory a file of category and year belongs in under
// base for method.
func targetDir(base string, method classify.Method, category, year string) string {
	if method.UsesYear() && year != "" {
		return filepath.Join(base, category, year)
	}
	return filepath.Join(base, category)
}
