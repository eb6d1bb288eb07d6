// Package dsfrkit reviews PowerPoint decks against presentation guidelines
// and generates DSFR (Système de Design de l'État) HTML.
//
// # Analysis
//
// Analyze a deck with the built-in thresholds or a preset:
//
//	cfg, err := config.Resolve("executive", "")
//	analysis, err := dsfrkit.Analyze("deck.pptx", cfg, dsfrkit.AnalyzeOptions{})
//	dsfrkit.WriteOutput(os.Stdout, analysis, dsfrkit.OutputIssues, dsfrkit.OutputOptions{})
//
// # Review
//
// Write a copy of the deck with colored comment boxes on every slide that has
// issues, and a summary slide after the title slide:
//
//	result, err := dsfrkit.Review("deck.pptx", "analysis.json", "deck_revu.pptx", cfg, dsfrkit.ReviewOptions{})
//
// # Accessibility slides
//
// Add a DSFR-styled reminder slide on contrast or language to a copy of a deck:
//
//	pos, err := dsfrkit.InsertAccessibilitySlide("deck.pptx", "contrast", "deck_a11y.pptx", 0)
//
// # HTML audit
//
// Check the fr- classes and the accessibility of a generated page:
//
//	audit, err := dsfrkit.AuditPage("index.html", nil)
//
// # CLI Tool
//
// dsfrkit also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/dsfrkit/cmd/dsfrkit@latest
package dsfrkit

// Public API:
// - Analyze(path string, cfg *config.Config, opts AnalyzeOptions) (*Analysis, error)
// - DetectFramework(path string, cfg *config.Config, opts AnalyzeOptions) (framework.Detection, error)
// - Review(deckPath, analysisPath, outPath string, cfg *config.Config, opts ReviewOptions) (ReviewResult, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, analysis *Analysis, format OutputFormat, opts OutputOptions) error
// - AuditPage(path string, known dsfr.ClassSet) (PageAudit, error)
// - InsertAccessibilitySlide(deckPath, kind, outPath string, position int) (int, error)
// - SlideKinds() []string
