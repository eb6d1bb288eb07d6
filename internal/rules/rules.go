// Package rules compares slide metrics with the configured thresholds and
// reports issues.
package rules

import (
	"fmt"

	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/textutil"
)

// Detect evaluates the per-slide rules. Every rule is independent, so a slide
// can collect several issues.
func Detect(s deck.Slide, cfg *config.Config) []deck.Issue {
	th := cfg.Thresholds
	var issues []deck.Issue

	if s.Title == "" {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueMissingTitle,
			Severity: deck.SeverityHigh,
			Message:  "Slide sans titre - chaque slide doit avoir un titre clair",
		})
	}

	if s.WordCount > th.MaxWordsPerSlide {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueTooManyWords,
			Severity: deck.SeverityMedium,
			Message:  fmt.Sprintf("Trop de texte (%d mots) - limite configurée: %d mots", s.WordCount, th.MaxWordsPerSlide),
		})
	}

	if s.BulletCount > th.MaxBulletsPerSlide {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueTooManyBullets,
			Severity: deck.SeverityMedium,
			Message:  fmt.Sprintf("Trop de points (%d) - limite configurée: %d points", s.BulletCount, th.MaxBulletsPerSlide),
		})
	}

	if n := s.DistinctFontSizes(); n > th.MaxFontVariations {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueFontVariations,
			Severity: deck.SeverityLow,
			Message:  fmt.Sprintf("Trop de tailles de police différentes (%d) - limite: %d", n, th.MaxFontVariations),
		})
	}

	if s.WordCount < th.MinWordsPerSlide && !s.HasVisual() {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueAlmostEmpty,
			Severity: deck.SeverityLow,
			Message:  fmt.Sprintf("Slide presque vide (%d mots) - minimum: %d mots ou ajouter un visuel", s.WordCount, th.MinWordsPerSlide),
		})
	}

	if th.MinFontSize > 0 {
		if smallest, ok := smallestBelow(s.FontSizes, float64(th.MinFontSize)); ok {
			issues = append(issues, deck.Issue{
				Type:     deck.IssueFontTooSmall,
				Severity: deck.SeverityLow,
				Message:  fmt.Sprintf("Police trop petite (%gpt) - minimum: %dpt", smallest, th.MinFontSize),
			})
		}
	}

	return issues
}

func smallestBelow(sizes []float64, limit float64) (float64, bool) {
	found := false
	smallest := limit
	for _, size := range sizes {
		if size < smallest {
			smallest = size
			found = true
		}
	}
	return smallest, found
}

// DetectGlobal evaluates the rules that look at the deck as a whole.
func DetectGlobal(slides []deck.Slide, cfg *config.Config) []deck.Issue {
	if len(slides) == 0 {
		return nil
	}
	th := cfg.Thresholds
	st := cfg.Structure
	var issues []deck.Issue

	if st.CheckTitleSlide && slides[0].WordCount >= th.FirstSlideMaxWords {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueTitleSlideTooLong,
			Severity: deck.SeverityMedium,
			Message: fmt.Sprintf("Première slide devrait être une slide de titre concise (%d mots, moins de %d attendus)",
				slides[0].WordCount, th.FirstSlideMaxWords),
		})
	}

	if st.CheckClosingSlide && !hasClosingMarker(slides[len(slides)-1].Title, st.ClosingMarkers) {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueMissingConclusion,
			Severity: deck.SeverityLow,
			Message:  "Dernière slide devrait être une conclusion ou des remerciements",
		})
	}

	dense := 0
	for _, s := range slides {
		if s.WordCount > th.DenseSlideWords {
			dense++
		}
	}
	if dense > th.MaxDenseSlides {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueTooManyDenseSlides,
			Severity: deck.SeverityMedium,
			Message: fmt.Sprintf("%d slides sont très denses (>%d mots) - alterner avec des slides visuelles",
				dense, th.DenseSlideWords),
		})
	}

	sizes := make(map[float64]bool)
	for _, s := range slides {
		for _, size := range s.FontSizes {
			sizes[size] = true
		}
	}
	if len(sizes) > th.MaxTotalFontSizes {
		issues = append(issues, deck.Issue{
			Type:     deck.IssueTooManyFontSizes,
			Severity: deck.SeverityMedium,
			Message:  fmt.Sprintf("Trop de tailles de police différentes dans la présentation (%d) - standardiser", len(sizes)),
		})
	}

	return issues
}

func hasClosingMarker(title string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && textutil.ContainsFold(title, marker) {
			return true
		}
	}
	return false
}

// Apply returns copies of the slides with their issues attached, plus the
// deck-wide issues. The input slice is not modified.
func Apply(slides []deck.Slide, cfg *config.Config) ([]deck.Slide, []deck.Issue) {
	out := make([]deck.Slide, len(slides))
	for i, s := range slides {
		s.Issues = Detect(s, cfg)
		if s.Issues == nil {
			s.Issues = []deck.Issue{}
		}
		out[i] = s
	}

	global := DetectGlobal(slides, cfg)
	if global == nil {
		global = []deck.Issue{}
	}
	return out, global
}
