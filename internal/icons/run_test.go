package icons

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_WalksCategories(t *testing.T) {
	gen, _ := newTestGenerator(t)
	root := t.TempDir()

	categoryDir(t, root, "objectives", "flag\nbeacon\n")
	categoryDir(t, root, "loot-containers", "crate\n")

	// Plain files in the root are not categories.
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("notes\n"), 0644); err != nil {
		t.Fatalf("writing stray file: %v", err)
	}

	sum, err := gen.Run(root)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if sum.Categories != 2 {
		t.Errorf("Categories = %d, want 2", sum.Categories)
	}
	if sum.Generated != 3 {
		t.Errorf("Generated = %d, want 3", sum.Generated)
	}
	if !filepath.IsAbs(sum.Root) {
		t.Errorf("Root = %q, want an absolute path", sum.Root)
	}
}

func TestRun_SecondPassGeneratesNothing(t *testing.T) {
	gen, out := newTestGenerator(t)
	root := t.TempDir()
	categoryDir(t, root, "spawn", "pad-a\npad-b\n")

	first, err := gen.Run(root)
	if err != nil {
		t.Fatalf("first Run error: %v", err)
	}
	if first.Generated != 2 {
		t.Fatalf("first Generated = %d, want 2", first.Generated)
	}

	second, err := gen.Run(root)
	if err != nil {
		t.Fatalf("second Run error: %v", err)
	}
	if second.Generated != 0 {
		t.Errorf("second Generated = %d, want 0", second.Generated)
	}
	if second.Categories != 1 {
		t.Errorf("second Categories = %d, want 1", second.Categories)
	}
	if !strings.Contains(out.String(), "nothing new to generate") {
		t.Errorf("second pass output missing idle count line:\n%s", out.String())
	}
}

func TestRun_MissingRoot(t *testing.T) {
	gen, _ := newTestGenerator(t)

	_, err := gen.Run(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("expected error for missing root, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap fs.ErrNotExist", err)
	}
}

func TestRun_CategoryWithoutManifestContributesNothing(t *testing.T) {
	gen, out := newTestGenerator(t)
	root := t.TempDir()

	categoryDir(t, root, "objectives", "flag\n")
	if err := os.MkdirAll(filepath.Join(root, "bare"), 0755); err != nil {
		t.Fatalf("creating bare category: %v", err)
	}

	sum, err := gen.Run(root)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if sum.Categories != 2 {
		t.Errorf("Categories = %d, want 2", sum.Categories)
	}
	if sum.Generated != 1 {
		t.Errorf("Generated = %d, want 1", sum.Generated)
	}
	if !strings.Contains(out.String(), "bare: no "+ManifestName) {
		t.Errorf("output missing skip warning for bare category:\n%s", out.String())
	}
}
