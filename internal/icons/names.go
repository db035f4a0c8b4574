package icons

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ManifestName is the per-category file listing the icons to generate.
const ManifestName = "icon-names.txt"

// Ext is the artifact extension; manifests may name icons with or
// without it.
const Ext = ".png"

// ReadNames reads a manifest and returns its icon names in order.
// Surrounding whitespace is trimmed and blank lines are dropped.
// Duplicates are kept; the existence check makes the second occurrence
// a no-op.
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return names, nil
}

// NormalizeName strips one trailing .png so "door.png" and "door" name
// the same icon.
func NormalizeName(name string) string {
	return strings.TrimSuffix(name, Ext)
}
