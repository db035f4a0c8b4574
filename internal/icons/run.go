package icons

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is the icons directory the generator processes unless
// configured otherwise.
const DefaultRoot = "icons-pathfinding"

// Summary reports what one generation pass did.
type Summary struct {
	Generated  int    // icons written this pass
	Categories int    // category directories visited
	Root       string // absolute path of the processed root
}

// Run walks the immediate subdirectories of root and processes each as
// a category. Plain files in the root are ignored. A category that
// fails is reported and the walk continues. The error return is
// reserved for the root itself being unreadable; a missing root wraps
// fs.ErrNotExist so callers can turn it into a friendly notice.
func (g *Generator) Run(root string) (*Summary, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading icons root %s: %w", root, err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	sum := &Summary{Root: absRoot}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sum.Categories++

		n, err := g.ProcessCategory(filepath.Join(root, entry.Name()))
		if err != nil {
			fmt.Fprintf(g.Out, "[WARN] %v\n", err)
			continue
		}
		sum.Generated += n
	}
	return sum, nil
}
