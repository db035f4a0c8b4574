package cli

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Apolloisman/arcRaidertracking/internal/style"
)

var stylesJSON bool

func init() {
	stylesListCmd.Flags().BoolVar(&stylesJSON, "json", false, "Output in JSON format")
	stylesCmd.AddCommand(stylesListCmd)
	stylesCmd.AddCommand(stylesValidateCmd)
	rootCmd.AddCommand(stylesCmd)
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Inspect and validate icon style sheets",
}

var stylesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active icon styles",
	Long:  `List every category of the active style sheet with its shape, color, and label.`,
	Args:  cobra.NoArgs,
	RunE:  runStylesList,
}

var stylesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a style sheet against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStylesValidate(cmd.OutOrStdout(), args[0])
	},
}

// styleEntry represents one category style for display.
type styleEntry struct {
	Category string `json:"category"`
	Shape    string `json:"shape"`
	Color    string `json:"color"`
	Label    string `json:"label"`
}

func runStylesList(cmd *cobra.Command, args []string) error {
	sheet, err := loadSheet()
	if err != nil {
		return err
	}

	entries := make([]styleEntry, 0, len(sheet.Categories())+1)
	for _, category := range sheet.Categories() {
		st, _ := sheet.Lookup(category)
		entries = append(entries, toStyleEntry(category, st))
	}
	entries = append(entries, toStyleEntry("(fallback)", sheet.Fallback()))

	if stylesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSHAPE\tCOLOR\tLABEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Category, e.Shape, e.Color, e.Label)
	}
	return w.Flush()
}

func toStyleEntry(category string, st style.Style) styleEntry {
	return styleEntry{
		Category: category,
		Shape:    st.Shape.String(),
		Color:    hexColor(st.Color),
		Label:    st.Label,
	}
}

// hexColor formats a color the way style sheets write it.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// runStylesValidate validates one style sheet file and reports its
// issues. Doctor reuses it for the configured sheet.
func runStylesValidate(out io.Writer, path string) error {
	fmt.Fprintf(out, "Style sheet validation: %s\n", path)

	result, err := style.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("style sheet validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintf(out, "  [ OK ] Valid style sheet\n")
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("style sheet %s has %d validation issue(s)", path, len(result.Issues))
}
