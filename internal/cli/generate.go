package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/Apolloisman/arcRaidertracking/internal/icons"
	"github.com/Apolloisman/arcRaidertracking/internal/render"
	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate missing icons for every category",
	Long: `Walk the icons root, read each category's icon-names.txt, and render a
placeholder PNG for every listed icon that does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sheet, err := loadSheet()
	if err != nil {
		return err
	}

	face := render.NewLabelFace(resolveFontFile())
	if !face.Scalable() {
		fmt.Fprintln(out, "[WARN] no scalable font available, labels use the bitmap face")
	}

	gen := &icons.Generator{
		Styles:   sheet,
		Renderer: render.New(face),
		Out:      out,
	}

	root := resolveIconsDir()
	sum, err := gen.Run(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "Icons root %s does not exist. Nothing to do.\n", root)
			fmt.Fprintln(out, "Run 'arcicons init' to scaffold the category directories.")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "\nGenerated %d icons across %d categories\n", sum.Generated, sum.Categories)
	fmt.Fprintf(out, "Output: %s\n", sum.Root)
	return nil
}

// loadSheet returns the active style sheet: the user sheet when one is
// configured, the built-in sheet otherwise.
func loadSheet() (*style.Sheet, error) {
	path := resolveStylesFile()
	if path == "" {
		return style.Default(), nil
	}
	return style.Load(path)
}
