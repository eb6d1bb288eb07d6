package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit"
	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
	"github.com/yacobolo/dsfrkit/internal/report"
)

var auditCmd = &cobra.Command{
	Use:   "audit <file|dir|glob>...",
	Short: "Check DSFR classes and accessibility of HTML pages",
	Long: `Report fr- classes that the DSFR does not define (with the closest known
class) and the failed RGAA checks: page language, image alternatives, form
labels, ARIA references and the level-one heading.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

func init() {
	f := auditCmd.Flags()
	f.String("css", "", "DSFR stylesheet to read the known classes from (default: built-in list)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	files, _, err := dsfrkit.FindFiles(args, ".html", ".htm")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .html file matches %s", strings.Join(args, " "))
	}

	known, err := loadKnownClasses(getStringWithFallback("css", "audit.css", ""))
	if err != nil {
		return err
	}

	audits := make([]report.PageAudit, 0, len(files))
	issues := 0
	for _, path := range files {
		audit, err := dsfrkit.AuditPage(path, known)
		if err != nil {
			return err
		}
		logger.Debug("page audited", zap.String("path", path), zap.Int("issues", audit.IssueCount()))
		audits = append(audits, audit)
		issues += audit.IssueCount()
	}

	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("output-format", "audit.output-format", "issues"); format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(audits); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	case "issues":
		report.NewReporter(out, report.Options{
			UseColors: getBoolWithFallback("color", "color", false),
			PrintType: true,
		}).PrintAudit(audits)
	default:
		return fmt.Errorf("unknown output format %q (valid: issues, json)", format)
	}

	if getBoolWithFallback("strict", "audit.strict", false) && issues > 0 {
		return fmt.Errorf("strict mode: %d issues", issues)
	}
	return nil
}

// loadKnownClasses reads the class set of a stylesheet, or returns the
// built-in set when path is empty.
func loadKnownClasses(path string) (dsfr.ClassSet, error) {
	if path == "" {
		return dsfr.KnownClasses(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	known, err := dsfr.LoadClassesFromCSS(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("stylesheet classes loaded", zap.String("path", path), zap.Int("classes", len(known)))
	return known, nil
}
