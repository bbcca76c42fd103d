package classify

import (
	"fmt"
	"slices"
	"strings"

	"sorter/internal/services"
)

// Table resolves categories. The built-in entries are shared and immutable;
// custom entries belong to the table and are only used by ByCustom.
type Table struct {
	custom      []Entry
	customIndex map[string]string
}

// NewTable returns a table with no custom categories.
func NewTable() *Table {
	return &Table{customIndex: map[string]string{}}
}

// AddCustom declares a user category. Redeclaring a name replaces its
// extensions but keeps its original position.
func (t *Table) AddCustom(name string, extensions []string) error {
	name = strings.TrimSpace(name)
	if err := ValidateCategoryName(name); err != nil {
		return err
	}
	exts := normalizeExtensions(extensions)
	replaced := false
	for i := range t.custom {
		if t.custom[i].Name == name {
			t.custom[i].Extensions = exts
			replaced = true
			break
		}
	}
	if !replaced {
		t.custom = append(t.custom, Entry{Name: name, Extensions: exts})
	}
	t.customIndex = buildIndex(t.custom)
	return nil
}

// Custom returns a copy of the declared user categories in declaration order.
func (t *Table) Custom() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.custom))
	for _, entry := range t.custom {
		out = append(out, Entry{Name: entry.Name, Extensions: append([]string(nil), entry.Extensions...)})
	}
	return out
}

// Lookup returns the category for a file name under the given method:
// built-in table first, then (ByCustom only) user categories, then Other.
func (t *Table) Lookup(name string, method Method) string {
	ext := Ext(name)
	if category, ok := FixedCategory(ext); ok {
		return category
	}
	if method == ByCustom && t != nil {
		if category, ok := t.customIndex[ext]; ok {
			return category
		}
	}
	return Other
}

// Categories lists the directories created under the output base before any
// file is moved.
func (t *Table) Categories(method Method) []string {
	names := FixedNames()
	if method != ByCustom || t == nil {
		return names
	}
	for _, entry := range t.custom {
		if !slices.Contains(names, entry.Name) {
			names = append(names, entry.Name)
		}
	}
	return names
}

// ValidateCategoryName rejects names that would escape the output directory.
func ValidateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return services.Wrap(services.ErrConfiguration, "configuration", "validate category", "category name is empty", nil)
	case trimmed == "." || trimmed == "..":
		return services.Wrap(services.ErrConfiguration, "configuration", "validate category", fmt.Sprintf("category name %q is reserved", trimmed), nil)
	case strings.ContainsAny(trimmed, `/\`+"\x00"):
		return services.Wrap(services.ErrConfiguration, "configuration", "validate category", fmt.Sprintf("category name %q must not contain path separators", trimmed), nil)
	}
	return nil
}

// ParseExtensions splits a comma-separated list such as ".pdf, .ODT,epub"
// into normalized extensions.
func ParseExtensions(raw string) []string {
	return normalizeExtensions(strings.Split(raw, ","))
}

func normalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		ext := lower(strings.TrimSpace(value))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
