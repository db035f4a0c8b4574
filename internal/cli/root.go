package cli

import (
	"github.com/spf13/cobra"

	"github.com/Apolloisman/arcRaidertracking/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags shared by the generation, scaffolding, and diagnostic commands.
var (
	flagIconsDir string
	flagStyles   string
	flagFont     string
)

var rootCmd = &cobra.Command{
	Use:   "arcicons",
	Short: "Generate placeholder map icons for the location dataset",
	Long: `arcicons renders the placeholder PNG markers the pathfinding map uses
for its location categories. Each category directory under the icons
root lists its icons in icon-names.txt; arcicons draws the ones that do
not exist yet and never touches the ones that do.

Running arcicons with no arguments performs a full generation pass.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagIconsDir, "icons-dir", "", `Icons root directory (default "icons-pathfinding")`)
	rootCmd.PersistentFlags().StringVar(&flagStyles, "styles", "", "Path to a custom style sheet")
	rootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "Path to a TTF font for icon labels")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveIconsDir picks the icons root: the flag when set, otherwise
// the environment or config file, otherwise the built-in default.
func resolveIconsDir() string {
	if flagIconsDir != "" {
		return flagIconsDir
	}
	return config.Get(config.KeyIconsDir)
}

// resolveStylesFile returns the user style sheet path, empty when the
// built-in sheet applies.
func resolveStylesFile() string {
	if flagStyles != "" {
		return flagStyles
	}
	return config.Get(config.KeyStylesFile)
}

// resolveFontFile returns the label font path, empty when the embedded
// font applies.
func resolveFontFile() string {
	if flagFont != "" {
		return flagFont
	}
	return config.Get(config.KeyFontFile)
}
