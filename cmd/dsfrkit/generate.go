package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit"
	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate DSFR HTML components, pages and accessibility slides",
	Long: `Render DSFR components and complete pages from a JSON configuration.
Unknown configuration fields are rejected.

The slide subcommand adds a DSFR-styled accessibility slide to a copy of a deck.`,
}

var generateComponentCmd = &cobra.Command{
	Use:   "component <kind>",
	Short: "Generate one DSFR component",
	Example: `  dsfrkit generate component button --config '{"label": "Valider", "variant": "secondary"}'
  dsfrkit generate component table --config @table.json --output table.html`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: dsfr.ComponentKinds(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], dsfr.GenerateComponent)
	},
}

var generatePageCmd = &cobra.Command{
	Use:   "page <kind>",
	Short: "Generate a complete DSFR page",
	Example: `  dsfrkit generate page standard --config '{"title": "Démarches", "dark": true}'
  dsfrkit generate page error --config '{"code": 500}' --output 500.html`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: dsfr.PageKinds(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], dsfr.GeneratePage)
	},
}

var generateSlideCmd = &cobra.Command{
	Use:   "slide <kind> <file>",
	Short: "Add a DSFR accessibility slide to a copy of a deck",
	Example: `  dsfrkit generate slide contrast deck.pptx -o deck_a11y.pptx
  dsfrkit generate slide language deck.pptx -o deck_a11y.pptx --position 2`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return dsfrkit.SlideKinds(), cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"pptx"}, cobra.ShellCompDirectiveFilterFileExt
	},
	RunE: runGenerateSlide,
}

var generateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the component, page and slide kinds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Composants: %s\n", strings.Join(dsfr.ComponentKinds(), ", "))
		fmt.Fprintf(out, "Pages: %s\n", strings.Join(dsfr.PageKinds(), ", "))
		fmt.Fprintf(out, "Slides: %s\n", strings.Join(dsfrkit.SlideKinds(), ", "))
	},
}

func init() {
	for _, c := range []*cobra.Command{generateComponentCmd, generatePageCmd} {
		c.Flags().String("config", "", "JSON configuration, or @file to read it from a file")
		c.Flags().StringP("output", "o", "", "Write the HTML to this file instead of stdout")
		generateCmd.AddCommand(c)
	}

	f := generateSlideCmd.Flags()
	f.StringP("output", "o", "", "Output presentation (required)")
	f.Int("position", 0, "Position of the new slide, 1-based (0 appends)")
	_ = generateSlideCmd.MarkFlagRequired("output")
	generateCmd.AddCommand(generateSlideCmd)

	generateCmd.AddCommand(generateListCmd)
}

func runGenerateSlide(cmd *cobra.Command, args []string) error {
	kind, deckPath := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")
	position, _ := cmd.Flags().GetInt("position")

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	pos, err := dsfrkit.InsertAccessibilitySlide(deckPath, kind, output, position)
	if err != nil {
		return err
	}
	logger.Debug("accessibility slide added", zap.String("kind", kind), zap.Int("position", pos))

	fmt.Fprintf(cmd.OutOrStdout(), "Slide %q ajoutée en position %d: %s\n", kind, pos, output)
	return nil
}

func runGenerate(cmd *cobra.Command, kind string, generate func(string, []byte) (string, error)) error {
	raw, _ := cmd.Flags().GetString("config")
	data, err := readJSONArg(raw)
	if err != nil {
		return err
	}

	html, err := generate(kind, data)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), html)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(output), err)
	}
	if err := os.WriteFile(output, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Fichier généré: %s\n", output)
	return nil
}

// readJSONArg returns the JSON given inline, or read from the file named
// after "@".
func readJSONArg(arg string) ([]byte, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return []byte(arg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
