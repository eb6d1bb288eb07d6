package dsfrkit

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/pptx"
	"github.com/yacobolo/dsfrkit/internal/report"
)

// SummarySlideTitle is the title of the slide inserted by Review.
const SummarySlideTitle = "Rapport de Révision - Synthèse"

// maxSummaryGlobalIssues caps the global issues listed on the summary slide.
const maxSummaryGlobalIssues = 3

// ReviewOptions holds the optional collaborators of Review.
type ReviewOptions struct {
	Logger *zap.Logger // nil means no logging
}

// ReviewResult describes what Review wrote.
type ReviewResult struct {
	SlidesAnnotated int
	Comments        int
	SummaryAdded    bool
	Skipped         []int // slide indexes from the report that are not in the deck
}

// Review writes a copy of deckPath to outPath with one colored box per issue
// on every slide that has issues and, when enabled in cfg, a summary slide
// right after the first slide. The source deck is never modified.
func Review(deckPath, analysisPath, outPath string, cfg *config.Config, opts ReviewOptions) (ReviewResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for _, path := range []string{deckPath, analysisPath} {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return ReviewResult{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	a, err := ReadJSONFile(analysisPath)
	if err != nil {
		return ReviewResult{}, err
	}
	pres, err := openDeck(deckPath)
	if err != nil {
		return ReviewResult{}, err
	}

	res, err := Annotate(pres, a, cfg)
	if err != nil {
		return res, err
	}
	for _, idx := range res.Skipped {
		log.Warn("report slide not in deck", zap.Int("slide", idx), zap.String("deck", deckPath))
	}

	if err := pres.Save(outPath); err != nil {
		return res, fmt.Errorf("saving %s: %w", outPath, err)
	}
	log.Debug("review written",
		zap.String("output", outPath),
		zap.Int("slides", res.SlidesAnnotated),
		zap.Int("comments", res.Comments))

	return res, nil
}

// Annotate adds the review comments and the summary slide to pres in memory.
// Comments go first: slide numbers refer to the deck before the summary
// slide is inserted.
func Annotate(pres *pptx.Presentation, a *Analysis, cfg *config.Config) (ReviewResult, error) {
	var res ReviewResult

	for _, s := range a.Slides {
		if len(s.Issues) == 0 {
			continue
		}
		if s.Index < 1 || s.Index > len(pres.Slides) {
			res.Skipped = append(res.Skipped, s.Index)
			continue
		}

		comments := make([]pptx.Comment, 0, len(s.Issues))
		for _, issue := range s.Issues {
			comments = append(comments, pptx.Comment{
				Label: report.SeverityLabel(issue.Severity),
				Text:  issue.Message,
				Fill:  cfg.SeverityColor(string(issue.Severity)),
			})
		}
		if err := pres.AddComments(s.Index, comments); err != nil {
			return res, fmt.Errorf("annotating slide %d: %w", s.Index, err)
		}
		res.SlidesAnnotated++
		res.Comments += len(comments)
	}

	if cfg.Annotation.AddSummarySlide && len(pres.Slides) > 0 {
		if err := pres.InsertSummarySlide(SummaryContent(a)); err != nil {
			return res, fmt.Errorf("inserting summary slide: %w", err)
		}
		res.SummaryAdded = true
	}

	return res, nil
}

// SummaryContent builds the summary slide text from a report.
func SummaryContent(a *Analysis) pptx.SummarySlide {
	sum := a.Summary
	lines := []string{
		"Statistiques globales",
		fmt.Sprintf("Total de slides: %d", a.TotalSlides),
		fmt.Sprintf("Mots par slide (moyenne): %.1f", sum.AvgWordsPerSlide),
		fmt.Sprintf("Problèmes détectés: %d dont %d critiques", sum.TotalIssues, sum.HighSeverityIssues),
	}

	if len(a.GlobalIssues) > 0 {
		lines = append(lines, "", "Problèmes globaux identifiés")
		for i, issue := range a.GlobalIssues {
			if i == maxSummaryGlobalIssues {
				break
			}
			lines = append(lines, severityMarker(issue.Severity)+" "+issue.Message)
		}
	}

	return pptx.SummarySlide{Title: SummarySlideTitle, Lines: lines}
}

func severityMarker(s deck.Severity) string {
	switch s {
	case deck.SeverityHigh:
		return "🔴"
	case deck.SeverityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
