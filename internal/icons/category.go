package icons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Apolloisman/arcRaidertracking/internal/render"
	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

// Generator renders the icons each category manifest asks for.
type Generator struct {
	Styles   *style.Sheet
	Renderer *render.Renderer
	Out      io.Writer
}

// ProcessCategory generates the missing icons for one category
// directory and returns how many files it created. A directory without
// a manifest is skipped with a warning. A single icon that fails to
// render or write is reported and skipped; neither stops the category.
func (g *Generator) ProcessCategory(dir string) (int, error) {
	category := filepath.Base(dir)

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err != nil {
		fmt.Fprintf(g.Out, "[WARN] %s: no %s, skipping\n", category, ManifestName)
		return 0, nil
	}

	names, err := ReadNames(manifestPath)
	if err != nil {
		return 0, fmt.Errorf("category %s: %w", category, err)
	}

	fmt.Fprintf(g.Out, "%s:\n", category)

	st, known := g.Styles.Lookup(category)
	if !known {
		fmt.Fprintln(g.Out, "  [WARN] unknown category, using fallback style")
	}

	generated := 0
	for _, name := range names {
		fileName := NormalizeName(name) + Ext
		target := filepath.Join(dir, fileName)

		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(g.Out, "  - %s (exists)\n", fileName)
			continue
		}

		img := g.Renderer.Render(st.Shape, st.Color, st.Label)
		if err := render.WritePNG(target, img); err != nil {
			fmt.Fprintf(g.Out, "  ✗ %s: %v\n", fileName, err)
			continue
		}
		fmt.Fprintf(g.Out, "  ✓ %s\n", fileName)
		generated++
	}

	if generated > 0 {
		fmt.Fprintf(g.Out, "  %d new icon(s)\n", generated)
	} else {
		fmt.Fprintln(g.Out, "  nothing new to generate")
	}
	return generated, nil
}
