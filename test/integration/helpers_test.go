//go:build integration

package integration_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Apolloisman/arcRaidertracking/internal/icons"
	"github.com/Apolloisman/arcRaidertracking/internal/render"
	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

// newGenerator builds a generator over the given sheet, capturing its
// console output for assertions.
func newGenerator(t *testing.T, sheet *style.Sheet) (*icons.Generator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &icons.Generator{
		Styles:   sheet,
		Renderer: render.New(render.NewLabelFace("")),
		Out:      &buf,
	}, &buf
}

// writeCategory creates <root>/<category>/icon-names.txt with one name
// per line.
func writeCategory(t *testing.T, root, category string, names ...string) string {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating category %s: %v", category, err)
	}

	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(dir, icons.ManifestName), buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing manifest for %s: %v", category, err)
	}
	return dir
}

// writeFile writes a file, creating parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertIcon decodes the PNG at path and checks the generated canvas
// invariants: 64x64 bounds and fully transparent corners.
func assertIcon(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected icon %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}

	if got := img.Bounds(); got != image.Rect(0, 0, render.Size, render.Size) {
		t.Errorf("%s bounds = %v, want 64x64", path, got)
	}
	for _, pt := range []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if _, _, _, a := img.At(pt.X, pt.Y).RGBA(); a != 0 {
			t.Errorf("%s corner %v alpha = %d, want 0", path, pt, a)
		}
	}
	return img
}

// assertNoFile fails if path exists.
func assertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("unexpected file %s", path)
	}
}

// containsColor reports whether any nearly opaque pixel of img is
// within tol of the given 8-bit channel values.
func containsColor(img image.Image, r8, g8, b8, tol int) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a < 0xf000 {
				continue
			}
			if chanNear(r, r8, tol) && chanNear(g, g8, tol) && chanNear(bl, b8, tol) {
				return true
			}
		}
	}
	return false
}

func chanNear(v uint32, want, tol int) bool {
	d := int(v>>8) - want
	if d < 0 {
		d = -d
	}
	return d <= tol
}
