package style

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed styles.yaml
var defaultSheetBytes []byte

// FormatMajor is the style sheet format version this build reads.
const FormatMajor = 1

// builtinFallback applies when a sheet does not declare its own
// fallback entry.
var builtinFallback = Style{
	Color: color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
	Shape: ShapeCircle,
	Label: "???",
}

// Sheet is an immutable category-to-style table.
type Sheet struct {
	categories map[string]Style
	fallback   Style
}

var (
	defaultSheet *Sheet
	defaultOnce  sync.Once
)

// Default returns the style sheet compiled into the binary.
func Default() *Sheet {
	defaultOnce.Do(func() {
		s, err := parseSheet(defaultSheetBytes)
		if err != nil {
			panic(fmt.Sprintf("built-in style sheet is invalid: %v", err))
		}
		defaultSheet = s
	})
	return defaultSheet
}

// Load reads a style sheet from path, validates it against the embedded
// schema, and returns it. A loaded sheet replaces the built-in table
// entirely; if it omits the fallback entry the built-in fallback stays
// in effect.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style sheet: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating style sheet %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("style sheet %s has %d validation issue(s)", path, len(result.Issues))
	}

	sheet, err := parseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("parsing style sheet %s: %w", path, err)
	}
	return sheet, nil
}

// Lookup returns the style for a category. Unknown categories resolve
// to the fallback style; the boolean reports whether the category was
// known so callers can warn. Lookup never fails.
func (s *Sheet) Lookup(category string) (Style, bool) {
	if st, ok := s.categories[category]; ok {
		return st, true
	}
	return s.fallback, false
}

// Fallback returns the style used for unknown categories.
func (s *Sheet) Fallback() Style {
	return s.fallback
}

// Categories returns the known category names in sorted order.
func (s *Sheet) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sheetFile mirrors the YAML layout of a style sheet.
type sheetFile struct {
	Version    string               `yaml:"version"`
	Fallback   *entryFile           `yaml:"fallback"`
	Categories map[string]entryFile `yaml:"categories"`
}

type entryFile struct {
	Color string `yaml:"color"`
	Shape string `yaml:"shape"`
	Label string `yaml:"label"`
}

func (e entryFile) toStyle() (Style, error) {
	clr, err := ParseHexColor(e.Color)
	if err != nil {
		return Style{}, err
	}
	shape, err := ParseShape(e.Shape)
	if err != nil {
		return Style{}, err
	}
	return Style{Color: clr, Shape: shape, Label: e.Label}, nil
}

func parseSheet(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := checkFormatVersion(f.Version); err != nil {
		return nil, err
	}

	s := &Sheet{
		categories: make(map[string]Style, len(f.Categories)),
		fallback:   builtinFallback,
	}
	for name, e := range f.Categories {
		st, err := e.toStyle()
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		s.categories[name] = st
	}
	if f.Fallback != nil {
		st, err := f.Fallback.toStyle()
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		s.fallback = st
	}
	return s, nil
}

// checkFormatVersion rejects sheets written for a different major
// format version. Handles "v" prefix tolerance.
func checkFormatVersion(version string) error {
	if version == "" {
		return fmt.Errorf("style sheet is missing a version")
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing style sheet version %q: %w", version, err)
	}
	if v.Major() != FormatMajor {
		return fmt.Errorf("style sheet format v%d is not supported (want v%d)", v.Major(), FormatMajor)
	}
	return nil
}
