package classify

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in category directory names.
const (
	Photos      = "Photos"
	Videos      = "Videos"
	Audio       = "Audio"
	Text        = "Text"
	Logs        = "Logs"
	Scripts     = "Scripts"
	Executables = "Executables"
	Other       = "Other"
)

// Entry is a category name together with the extensions that select it.
// Extensions are lower-case and carry the leading dot.
type Entry struct {
	Name       string
	Extensions []string
}

// fixedEntries is consulted in order; the sets are disjoint so order only
// matters for presentation.
var fixedEntries = []Entry{
	{Name: Photos, Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif"}},
	{Name: Videos, Extensions: []string{".mp4", ".avi", ".mov", ".wmv", ".mkv", ".flv"}},
	{Name: Audio, Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg"}},
	{Name: Text, Extensions: []string{".txt", ".md", ".rtf", ".doc", ".docx"}},
	{Name: Logs, Extensions: []string{".log"}},
	{Name: Scripts, Extensions: []string{".py", ".bat", ".sh", ".js", ".ps1"}},
	{Name: Executables, Extensions: []string{".exe"}},
}

var fixedIndex = buildIndex(fixedEntries)

// Fixed returns a copy of the built-in table, excluding the Other catch-all.
func Fixed() []Entry {
	out := make([]Entry, 0, len(fixedEntries))
	for _, entry := range fixedEntries {
		out = append(out, Entry{Name: entry.Name, Extensions: append([]string(nil), entry.Extensions...)})
	}
	return out
}

// FixedCategory returns the built-in category for a lower-case extension.
func FixedCategory(ext string) (string, bool) {
	name, ok := fixedIndex[ext]
	return name, ok
}

// FixedNames lists every built-in category directory, Other last.
func FixedNames() []string {
	names := make([]string, 0, len(fixedEntries)+1)
	for _, entry := range fixedEntries {
		names = append(names, entry.Name)
	}
	return append(names, Other)
}

// SplitExt splits a file name into stem and extension, preserving case.
// Leading dots do not start an extension, so ".bashrc" has none.
func SplitExt(name string) (string, string) {
	base := filepath.Base(name)
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	return base[:len(base)-len(ext)], ext
}

// Ext returns the lower-cased extension of name, including the dot.
func Ext(name string) string {
	_, ext := SplitExt(name)
	return lower(ext)
}

func lower(value string) string {
	return cases.Lower(language.Und).String(value)
}

func buildIndex(entries []Entry) map[string]string {
	index := make(map[string]string)
	for _, entry := range entries {
		for _, ext := range entry.Extensions {
			if _, exists := index[ext]; exists {
				continue
			}
			index[ext] = entry.Name
		}
	}
	return index
}
