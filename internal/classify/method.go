package classify

import (
	"fmt"
	"strings"

	"sorter/internal/services"
)

// Method selects the directory layout applied to every file in a run.
type Method int

const (
	MethodUnknown Method = iota
	ByYear
	ByType
	ByCustom
)

// String returns the flag/config spelling of the method.
func (m Method) String() string {
	switch m {
	case ByYear:
		return "year"
	case ByType:
		return "type"
	case ByCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Choice returns the menu number used by the interactive prompt.
func (m Method) Choice() string {
	switch m {
	case ByYear:
		return "1"
	case ByType:
		return "2"
	case ByCustom:
		return "3"
	default:
		return ""
	}
}

// UsesYear reports whether targets include a year subdirectory.
func (m Method) UsesYear() bool {
	return m == ByYear || m == ByCustom
}

// ParseMethod accepts the menu numbers 1-3 or their names.
func ParseMethod(value string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "year", "by-year":
		return ByYear, nil
	case "2", "type", "by-type":
		return ByType, nil
	case "3", "custom", "by-custom":
		return ByCustom, nil
	default:
		return MethodUnknown, services.Wrap(
			services.ErrInvalidSortMethod,
			"configuration",
			"parse sort method",
			fmt.Sprintf("%q is not one of 1 (year), 2 (type), 3 (custom)", strings.TrimSpace(value)),
			nil,
		)
	}
}
