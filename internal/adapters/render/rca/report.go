package rca

import (
	"fmt"
	"strings"

	"github.com/komodorio/kubectl-komodor/internal/domain"
)

const (
	ruleWidth     = 80
	snippetIndent = "    "
)

// RenderReport formats a completed analysis. Sections without data are
// omitted; the order is fixed.
func RenderReport(snapshot domain.SessionSnapshot) string {
	s := newStyles()
	rule := s.rule.Render(strings.Repeat("═", ruleWidth))

	var b strings.Builder
	b.WriteString(rule)
	b.WriteString("\n")

	if snapshot.ProblemShort != "" || len(snapshot.WhatHappened) > 0 {
		b.WriteString("\n")
		b.WriteString(s.heading.Render("What Happened:"))
		b.WriteString("\n")
		if snapshot.ProblemShort != "" {
			fmt.Fprintf(&b, "  %s %s\n", s.problem.Render("!"), s.emphasis.Render(snapshot.ProblemShort))
		}
		for i, item := range snapshot.WhatHappened {
			fmt.Fprintf(&b, "  %s %s\n", s.index.Render(fmt.Sprintf("%d.", i+1)), item)
		}
	}

	if len(snapshot.EvidenceCollection) > 0 {
		b.WriteString("\n")
		b.WriteString(s.heading.Render("Related Evidence:"))
		b.WriteString("\n")
		for i, evidence := range snapshot.EvidenceCollection {
			fmt.Fprintf(&b, "  %s %s %s\n",
				s.index.Render(fmt.Sprintf("%d.", i+1)),
				s.label.Render("From:"),
				s.query.Render(evidence.Query),
			)
			for _, line := range strings.Split(evidence.Snippet, "\n") {
				b.WriteString(s.snippet.Render(snippetIndent + line))
				b.WriteString("\n")
			}
		}
	}

	if snapshot.Recommendation != "" {
		b.WriteString("\n")
		b.WriteString(s.heading.Render("Suggested Remediation:"))
		b.WriteString("\n  ")
		b.WriteString(s.remediation.Render(snapshot.Recommendation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	return b.String()
}
