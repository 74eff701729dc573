package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"planboard/internal/domain"
)

// FormatProjectList renders projects as a compact table.
func FormatProjectList(projects []*domain.Project) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHASES\tRISKS\tUPDATED")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			p.ID[:8], p.Name, len(p.Phases), len(p.Risks), p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
	return b.String()
}

// FormatProjectInspect renders the full project view: phases with their
// review state, the risk register with exposure, budget, and team.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(&b, "Created %s, updated %s\n\n", p.CreatedAt.Format("2006-01-02"), p.UpdatedAt.Format("2006-01-02"))

	b.WriteString("PHASES\n")
	for i, phase := range p.Phases {
		fmt.Fprintf(&b, "  [%d] %s (%s)\n", i, phase.Name, phase.Duration)
		if phase.StartDate != nil || phase.EndDate != nil {
			fmt.Fprintf(&b, "      %s .. %s\n", formatDate(phase.StartDate), formatDate(phase.EndDate))
		}
		for _, rev := range phase.Reviewers {
			line := fmt.Sprintf("      review %s: %s", rev.Role, rev.Status)
			if rev.ReviewedAt != nil {
				line += " at " + rev.ReviewedAt.Format("2006-01-02 15:04")
			}
			if rev.Comment != "" {
				line += fmt.Sprintf(" (%s)", rev.Comment)
			}
			b.WriteString(line + "\n")
		}
		for _, a := range phase.Attachments {
			fmt.Fprintf(&b, "      file %s (%d bytes)\n", a.Name, a.SizeBytes)
		}
	}

	if len(p.Risks) > 0 {
		b.WriteString("\nRISKS\n")
		for i, r := range p.Risks {
			fmt.Fprintf(&b, "  [%d] %s: %s (impact %s, probability %s, exposure %s)\n",
				i, r.Category, r.Description, r.Impact, r.Probability, r.Exposure())
		}
	}

	if !p.Budget.Total().IsZero() {
		fmt.Fprintf(&b, "\nBUDGET: %s total\n", p.Budget.Total().StringFixed(2))
	}

	if len(p.TeamMembers) > 0 {
		b.WriteString("\nTEAM\n")
		for _, m := range p.TeamMembers {
			fmt.Fprintf(&b, "  %s (%s): %s\n", m.Role, m.Allocation, strings.Join(m.Responsibilities, ", "))
		}
	}

	return b.String()
}

// FormatThread renders a comment thread with one level of reply indent.
func FormatThread(thread []*domain.Comment) string {
	var b strings.Builder
	for _, c := range thread {
		fmt.Fprintf(&b, "[%s] %s (%s): %s\n",
			c.Timestamp.Format("2006-01-02 15:04"), c.AuthorName, c.AuthorRole, c.Content)
		for _, a := range c.Attachments {
			fmt.Fprintf(&b, "    file %s\n", a.Name)
		}
		for _, r := range c.Replies {
			fmt.Fprintf(&b, "    [%s] %s (%s): %s\n",
				r.Timestamp.Format("2006-01-02 15:04"), r.AuthorName, r.AuthorRole, r.Content)
		}
	}
	return b.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "?"
	}
	return t.Format(domain.DateLayout)
}

func parseBudget(personnel, technology, marketing, contingency string) (domain.Budget, error) {
	var budget domain.Budget
	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"personnel", personnel, &budget.PersonnelCosts},
		{"technology", technology, &budget.TechnologyTools},
		{"marketing", marketing, &budget.MarketingLaunch},
		{"contingency", contingency, &budget.Contingency},
	}
	for _, f := range fields {
		amount, err := decimal.NewFromString(f.value)
		if err != nil {
			return domain.Budget{}, fmt.Errorf("invalid %s amount %q: %w", f.name, f.value, err)
		}
		*f.dst = amount
	}
	return budget, nil
}
