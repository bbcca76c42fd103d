package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"sorter/internal/classify"
	"sorter/internal/config"
	"sorter/internal/preflight"
	"sorter/internal/services"
)

var errPromptDisabled = errors.New("input required but --non-interactive is set")

// prompter asks the interactive questions of a sort run. It only depends on
// a reader and a writer so tests can script a whole session.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// selection is the validated outcome of the interactive session.
type selection struct {
	Source     string
	Method     classify.Method
	Categories []config.Category
}

// collect runs the session in order: source, method, then custom categories
// when the method is ByCustom. Preset values skip their prompt. The source is
// checked before the method is asked for.
func (p *prompter) collect(presetSource, presetMethod string, configured func() (classify.Method, bool, error)) (selection, error) {
	var sel selection

	raw, err := p.source(presetSource)
	if err != nil {
		return sel, err
	}
	if sel.Source, err = preflight.CheckSourceDir(raw); err != nil {
		return sel, err
	}

	if sel.Method, err = p.resolveMethod(presetMethod, configured); err != nil {
		return sel, err
	}

	if sel.Method == classify.ByCustom {
		if sel.Categories, err = p.categories(); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

// resolveMethod prefers the flag, then the config file, then the prompt.
func (p *prompter) resolveMethod(flag string, configured func() (classify.Method, bool, error)) (classify.Method, error) {
	if strings.TrimSpace(flag) != "" {
		return classify.ParseMethod(flag)
	}
	if configured != nil {
		method, ok, err := configured()
		if err != nil {
			return classify.MethodUnknown, err
		}
		if ok {
			return method, nil
		}
	}
	return p.method()
}

// ask prints question and returns the trimmed answer. End of input after a
// partial line still yields that line.
func (p *prompter) ask(question string) (string, error) {
	if !p.interactive {
		return "", errPromptDisabled
	}
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// source returns preset when set, otherwise asks for the directory to sort.
func (p *prompter) source(preset string) (string, error) {
	if value := strings.TrimSpace(preset); value != "" {
		return value, nil
	}
	answer, err := p.ask("Enter the path to the folder to sort: ")
	if err != nil {
		return "", services.Wrap(services.ErrInvalidSourcePath, "prompt", "read source", "No source directory given", err)
	}
	return answer, nil
}

// method asks for the menu number. Only the literals 1, 2 and 3 are accepted.
func (p *prompter) method() (classify.Method, error) {
	if !p.interactive {
		return classify.MethodUnknown, services.Wrap(services.ErrInvalidSortMethod, "prompt", "read method", "No sort method given", errPromptDisabled)
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Choose a sort method:")
	fmt.Fprintln(p.out, "1. By year (Photos/Year, Videos/Year, Audio/Year, Text/Year, Logs/Year, Scripts/Year, Executables/Year, Other/Year)")
	fmt.Fprintln(p.out, "2. By file type (Photos, Videos, Audio, Text, Logs, Scripts, Executables, Other)")
	fmt.Fprintln(p.out, "3. By custom categories (with year) plus the built-in categories")
	answer, err := p.ask("Enter method number (1-3): ")
	if err != nil {
		return classify.MethodUnknown, services.Wrap(services.ErrInvalidSortMethod, "prompt", "read method", "No sort method given", err)
	}
	switch answer {
	case classify.ByYear.Choice():
		return classify.ByYear, nil
	case classify.ByType.Choice():
		return classify.ByType, nil
	case classify.ByCustom.Choice():
		return classify.ByCustom, nil
	default:
		return classify.MethodUnknown, services.Wrap(services.ErrInvalidSortMethod, "prompt", "read method",
			fmt.Sprintf("%q is not 1, 2 or 3", answer), nil)
	}
}

// categories reads category/extension pairs until an empty category name
// or end of input.
func (p *prompter) categories() ([]config.Category, error) {
	if !p.interactive {
		return nil, nil
	}
	fmt.Fprintln(p.out, "Enter categories and their extensions (for example Documents with .doc,.pdf). Leave the name empty to finish.")
	var out []config.Category
	for {
		name, err := p.ask("Category: ")
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if name == "" {
			return out, nil
		}
		if err := classify.ValidateCategoryName(name); err != nil {
			return nil, err
		}
		raw, err := p.ask(fmt.Sprintf("Extensions for %s (comma separated, for example .txt,.doc): ", name))
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		out = append(out, config.Category{Name: name, Extensions: classify.ParseExtensions(raw)})
		if errors.Is(err, io.EOF) {
			return out, nil
		}
	}
}
