package dsfrkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/dsfrkit/internal/config"
)

// WriteJSON writes the analysis report as indented JSON.
func WriteJSON(w io.Writer, a *Analysis) error {
	out := *a
	if out.Version == "" {
		out.Version = ReportVersion
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// WriteJSONFile writes the report to path, creating or truncating it.
func WriteJSONFile(path string, a *Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	if err := WriteJSON(f, a); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return f.Close()
}

// ReadJSON decodes a report written by WriteJSON. Malformed input yields a
// *config.ParseError.
func ReadJSON(r io.Reader) (*Analysis, error) {
	var a Analysis
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, &config.ParseError{Path: "analysis", Err: err}
	}
	if a.Slides == nil {
		a.Slides = []Slide{}
	}
	if a.GlobalIssues == nil {
		a.GlobalIssues = []Issue{}
	}
	return &a, nil
}

// ReadJSONFile opens and decodes a report.
func ReadJSONFile(path string) (*Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening report %s: %w", path, err)
	}
	defer f.Close()

	a, err := ReadJSON(f)
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return a, nil
}
