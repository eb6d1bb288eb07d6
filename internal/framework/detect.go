package framework

import (
	"math"
	"sort"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/textutil"
)

// NoneDetected is reported when no score clears the confidence floor.
const NoneDetected = "Aucun framework clair détecté"

// DefaultMinConfidence is the floor used when the configuration has none.
const DefaultMinConfidence = 0.2

// Score is the score of one catalog entry.
type Score struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Staged bool    `json:"staged"`
}

// Step assigns a stage of the detected framework to a slide.
type Step struct {
	Slide      int     `json:"slide"` // 1-based
	Stage      string  `json:"stage"`
	Confidence float64 `json:"confidence"`
}

// Detection is the outcome of Detect.
type Detection struct {
	Detected    string  `json:"detected_framework"`
	Confidence  float64 `json:"confidence"`
	Found       bool    `json:"found"`
	Scores      []Score `json:"all_scores"`
	Progression []Step  `json:"framework_progression"`
}

// Detect scores every framework and pattern against the slide texts and keeps
// the best one when its score is strictly above minConfidence. On equal
// scores the entry listed first in the catalog wins.
func Detect(texts []string, minConfidence float64) Detection {
	folded := make([]string, len(texts))
	for i, t := range texts {
		folded[i] = textutil.Fold(t)
	}
	all := strings.Join(folded, " ")

	scores := make([]Score, 0, len(Frameworks)+len(Patterns))
	for _, f := range Frameworks {
		scores = append(scores, Score{Name: f.Name, Score: frameworkScore(all, f), Staged: true})
	}
	for _, p := range Patterns {
		scores = append(scores, Score{Name: p.Name, Score: patternScore(all, p)})
	}

	best := 0
	for i := range scores {
		if scores[i].Score > scores[best].Score {
			best = i
		}
	}

	d := Detection{
		Detected:    NoneDetected,
		Confidence:  round2(scores[best].Score),
		Progression: []Step{},
	}
	if scores[best].Score > minConfidence {
		d.Detected = scores[best].Name
		d.Found = true
		if scores[best].Staged {
			d.Progression = progression(folded, Frameworks[best])
		}
	}

	sorted := make([]Score, len(scores))
	for i, s := range scores {
		sorted[i] = Score{Name: s.Name, Score: round2(s.Score), Staged: s.Staged}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	d.Scores = sorted

	return d
}

// countKeywords sums non-overlapping occurrences of each keyword in folded text.
func countKeywords(folded string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if k := textutil.Fold(kw); k != "" {
			n += strings.Count(folded, k)
		}
	}
	return n
}

// StageScore is min(occurrences/3, 1).
func StageScore(occurrences int) float64 {
	return math.Min(float64(occurrences)/3, 1)
}

// PatternScore is min(occurrences/5, 1).
func PatternScore(occurrences int) float64 {
	return math.Min(float64(occurrences)/5, 1)
}

func frameworkScore(folded string, f Framework) float64 {
	if len(f.Stages) == 0 {
		return 0
	}
	total := 0.0
	for _, st := range f.Stages {
		total += StageScore(countKeywords(folded, st.Keywords))
	}
	return total / float64(len(f.Stages))
}

func patternScore(folded string, p Pattern) float64 {
	return PatternScore(countKeywords(folded, p.Keywords))
}

// progression picks, for each slide, the stage with the most hits. Slides
// without hits are left out. Ties go to the stage declared first, which is
// also the earliest step of the narrative.
func progression(folded []string, f Framework) []Step {
	steps := []Step{}
	for i, text := range folded {
		bestStage, bestHits := -1, 0
		for s, st := range f.Stages {
			if hits := countKeywords(text, st.Keywords); hits > bestHits {
				bestStage, bestHits = s, hits
			}
		}
		if bestStage < 0 {
			continue
		}
		steps = append(steps, Step{
			Slide:      i + 1,
			Stage:      f.Stages[bestStage].Name,
			Confidence: math.Min(float64(bestHits)/2, 1),
		})
	}
	return steps
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
