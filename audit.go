package dsfrkit

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/dsfrkit/internal/a11y"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
	"github.com/yacobolo/dsfrkit/internal/report"
)

// PageAudit is the result of AuditPage.
type PageAudit = report.PageAudit

// AuditPage checks the fr- classes of an HTML file against known and runs
// the accessibility checks on it. A nil known set means the built-in DSFR
// classes.
func AuditPage(path string, known dsfr.ClassSet) (PageAudit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return PageAudit{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return PageAudit{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if known == nil {
		known = dsfr.KnownClasses()
	}

	classes, err := dsfr.AuditClasses(bytes.NewReader(content), known)
	if err != nil {
		return PageAudit{}, fmt.Errorf("auditing classes of %s: %w", path, err)
	}
	findings, err := a11y.Audit(bytes.NewReader(content))
	if err != nil {
		return PageAudit{}, fmt.Errorf("auditing %s: %w", path, err)
	}

	if classes == nil {
		classes = []dsfr.UnknownClass{}
	}
	return PageAudit{File: path, UnknownClasses: classes, Findings: findings}, nil
}
