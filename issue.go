package dsfrkit

import (
	"github.com/yacobolo/dsfrkit/internal/config"
	"github.com/yacobolo/dsfrkit/internal/deck"
)

// Analysis records, re-exported for callers outside this module.
type (
	Analysis = deck.Analysis
	Slide    = deck.Slide
	Issue    = deck.Issue
	Severity = deck.Severity
	Summary  = deck.Summary
)

// Severity levels
const (
	SeverityHigh   = deck.SeverityHigh
	SeverityMedium = deck.SeverityMedium
	SeverityLow    = deck.SeverityLow
)

// ReportVersion is written in the "version" field of JSON reports.
const ReportVersion = "1.0"

// Sentinel errors, shared with the config package so errors.Is works across both.
var (
	ErrFileNotFound = config.ErrFileNotFound
	ErrParse        = config.ErrParse
)
