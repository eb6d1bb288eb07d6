package report

import (
	"fmt"

	"github.com/yacobolo/dsfrkit/internal/a11y"
	"github.com/yacobolo/dsfrkit/internal/deck"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
)

// PageAudit groups the class and accessibility checks of one HTML file.
type PageAudit struct {
	File           string              `json:"file"`
	UnknownClasses []dsfr.UnknownClass `json:"unknown_classes"`
	Findings       []a11y.Finding      `json:"findings"`
}

// IssueCount is the number of problems found in the page.
func (p PageAudit) IssueCount() int {
	return len(p.UnknownClasses) + len(p.Findings)
}

// HighCount is the number of high severity findings. Unknown classes are
// never high.
func (p PageAudit) HighCount() int {
	n := 0
	for _, f := range p.Findings {
		if f.Severity == deck.SeverityHigh {
			n++
		}
	}
	return n
}

// PrintAudit writes one line per unknown class and per finding, then a
// one-line total.
func (r *Reporter) PrintAudit(audits []PageAudit) {
	total := 0
	for _, p := range audits {
		for _, u := range p.UnknownClasses {
			msg := fmt.Sprintf("classe DSFR inconnue %q sur <%s>", u.Class, u.Element)
			if u.Suggestion != "" {
				msg += fmt.Sprintf(" (vouliez-vous dire %q ?)", u.Suggestion)
			}
			r.printIssue(fmt.Sprintf("%s:%d:", p.File, u.Line), deck.Issue{
				Type:     "dsfr_class",
				Severity: deck.SeverityMedium,
				Message:  msg,
			})
		}
		for _, f := range p.Findings {
			msg := f.Message
			if f.Element != "" {
				msg += " " + f.Element
			}
			r.printIssue(p.File+":", deck.Issue{Type: f.Rule, Severity: f.Severity, Message: msg})
		}
		total += p.IssueCount()
	}

	fmt.Fprintln(r.w, "")
	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}
	fmt.Fprintf(r.w, "%s in %s.\n", pluralizeCount(total, "issue", "issues"), pluralizeCount(len(audits), "file", "files"))
}
