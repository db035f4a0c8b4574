package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Apolloisman/arcRaidertracking/internal/icons"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold the icons directory tree",
	Long: `Create the icons root with one directory per known category, each
holding an empty icon-names.txt manifest. Existing directories and
manifests are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		sheet, err := loadSheet()
		if err != nil {
			return err
		}

		root := resolveIconsDir()
		fmt.Fprintf(out, "Initializing icons tree at %s\n", root)

		for _, category := range sheet.Categories() {
			dir := filepath.Join(root, category)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating category directory %s: %w", dir, err)
			}

			manifest := filepath.Join(dir, icons.ManifestName)
			rel := filepath.Join(category, icons.ManifestName)
			if _, err := os.Stat(manifest); err == nil {
				fmt.Fprintf(out, "  - %s (exists)\n", rel)
				continue
			}
			if err := os.WriteFile(manifest, nil, 0644); err != nil {
				return fmt.Errorf("creating manifest %s: %w", manifest, err)
			}
			fmt.Fprintf(out, "  ✓ %s\n", rel)
		}

		fmt.Fprintln(out, "\nAdd icon names to the manifests, then run 'arcicons' to generate.")
		return nil
	},
}
