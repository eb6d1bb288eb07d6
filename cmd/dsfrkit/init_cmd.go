package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .dsfrkit.yaml settings file",
	Long:  `Create a .dsfrkit.yaml settings file in the current directory with the default values of every command.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("settings")
		if path == "" {
			path = defaultSettingsPath
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing settings file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultSettings = `# dsfrkit settings
# Every key can be overridden with a DSFRKIT_ environment variable
# (DSFRKIT_ANALYZE_PRESET=executive) or with the matching flag.

verbose: false
color: false

analyze:
  preset: ""               # conseil | executive | technique | commercial | dsfr-strict
  config: ""               # thresholds file (YAML or JSON), merged on top of the preset
  output-format: issues    # issues | summary | full | json | markdown
  output-dir: ""
  strict: false            # exit 1 on high severity issues
  history: ""              # SQLite database recording each run

detect:
  output-format: text      # text | json

contrast:
  background: "#FFFFFF"
  size: 14

audit:
  css: ""                  # DSFR stylesheet, default: built-in class list
  output-format: issues    # issues | json
  strict: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing settings file")
}
