package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Apolloisman/arcRaidertracking/internal/icons"
	"github.com/Apolloisman/arcRaidertracking/internal/render"
	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the icons tree and configuration",
	Long:  `Run diagnostic checks on the active style sheet, the label font, and the icons tree.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fails := runStylesCheck(out)
		fails += runFontCheck(out)
		fails += runTreeCheck(out)

		if fails > 0 {
			return fmt.Errorf("%d check(s) failed", fails)
		}
		return nil
	},
}

// runStylesCheck verifies the active style sheet parses, validates, and
// passes the format version gate.
func runStylesCheck(out io.Writer) int {
	fmt.Fprintln(out, "Style sheet:")

	path := resolveStylesFile()
	if path == "" {
		fmt.Fprintf(out, "  [ OK ] built-in styles (%d categories)\n", len(style.Default().Categories()))
		return 0
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", path)
		return 1
	}

	result, err := style.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %s: %d validation issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		}
		return 1
	}

	// The schema accepts any version string; the load gate is stricter.
	sheet, err := style.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s (%d categories)\n", path, len(sheet.Categories()))
	return 0
}

// runFontCheck reports which label font tier is active. The bitmap
// fallback is degraded but workable, so it warns rather than fails.
func runFontCheck(out io.Writer) int {
	fmt.Fprintln(out, "Label font:")

	path := resolveFontFile()
	face := render.NewLabelFace(path)

	if path != "" && face.Source() != "user" {
		fmt.Fprintf(out, "  [WARN] configured font %s is unusable\n", path)
	}

	switch face.Source() {
	case "user":
		fmt.Fprintf(out, "  [ OK ] scalable font from %s\n", path)
	case "embedded":
		fmt.Fprintln(out, "  [ OK ] embedded Go Regular font")
	default:
		fmt.Fprintln(out, "  [WARN] bitmap fallback face (labels at a fixed size)")
	}
	return 0
}

// runTreeCheck verifies the icons root and each category manifest. A
// missing root is not a failure; generation treats it as nothing to do.
func runTreeCheck(out io.Writer) int {
	fmt.Fprintln(out, "Icons tree:")

	root := resolveIconsDir()
	entries, err := os.ReadDir(root)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found (run 'arcicons init')\n", root)
		return 0
	}

	sheet, err := loadSheet()
	if err != nil {
		fmt.Fprintf(out, "  [WARN] cannot load styles, checking against built-ins: %v\n", err)
		sheet = style.Default()
	}

	fails := 0
	categories := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		categories++
		name := entry.Name()

		if _, known := sheet.Lookup(name); !known {
			fmt.Fprintf(out, "  [WARN] %s: unknown category (fallback style applies)\n", name)
		}

		manifest := filepath.Join(root, name, icons.ManifestName)
		if _, err := os.Stat(manifest); err != nil {
			fmt.Fprintf(out, "  [WARN] %s: no %s\n", name, icons.ManifestName)
			continue
		}

		names, err := icons.ReadNames(manifest)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", name, err)
			fails++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s: %d icon name(s)\n", name, len(names))
	}

	if categories == 0 {
		fmt.Fprintf(out, "  [INFO] no category directories in %s\n", root)
	}
	return fails
}
