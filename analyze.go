package dsfrkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/framework"
	"github.com/yacobolo/dsfrkit/internal/metrics"
	"github.com/yacobolo/dsfrkit/internal/pptx"
	"github.com/yacobolo/dsfrkit/internal/rules"
)

// AnalyzeOptions holds the optional collaborators of Analyze.
type AnalyzeOptions struct {
	Logger *zap.Logger // nil means no logging
}

func (o AnalyzeOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// openDeck opens path, mapping a missing file to ErrFileNotFound.
func openDeck(path string) (*pptx.Presentation, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	pres, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return pres, nil
}

// Analyze opens a deck, measures every slide and evaluates the rules.
func Analyze(path string, cfg *config.Config, opts AnalyzeOptions) (*Analysis, error) {
	log := opts.logger()

	pres, err := openDeck(path)
	if err != nil {
		return nil, err
	}
	log.Debug("deck opened", zap.String("path", path), zap.Int("slides", len(pres.Slides)))

	a := AnalyzePresentation(filepath.Base(path), pres, cfg)
	log.Debug("deck analyzed",
		zap.String("path", path),
		zap.Int("issues", a.Summary.TotalIssues),
		zap.Int("high", a.Summary.HighSeverityIssues))

	return a, nil
}

// AnalyzePresentation runs the extraction and the rules on an already parsed deck.
func AnalyzePresentation(filename string, pres *pptx.Presentation, cfg *config.Config) *Analysis {
	slides, global := rules.Apply(metrics.Extract(pres), cfg)

	table := cfg.Table
	if table == nil {
		table = config.Defaults()
	}

	return &deck.Analysis{
		Version:      ReportVersion,
		Filename:     filename,
		TotalSlides:  len(slides),
		ConfigUsed:   table,
		Slides:       slides,
		GlobalIssues: global,
		Summary:      deck.Summarize(slides, global),
	}
}

// DetectFramework scores the deck text against the framework catalog using
// the configured confidence floor.
func DetectFramework(path string, cfg *config.Config, opts AnalyzeOptions) (framework.Detection, error) {
	pres, err := openDeck(path)
	if err != nil {
		return framework.Detection{}, err
	}

	d := framework.Detect(metrics.Texts(metrics.Extract(pres)), cfg.Framework.MinConfidence)
	opts.logger().Debug("framework scored",
		zap.String("path", path),
		zap.String("detected", d.Detected),
		zap.Float64("confidence", d.Confidence))
	return d, nil
}
