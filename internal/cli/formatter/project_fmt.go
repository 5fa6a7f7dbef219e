package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProjectDetail holds all data needed to render a project view.
type ProjectDetail struct {
	Project      *domain.Project
	Organization *domain.Organization
	// Candidates maps candidate ids to profiles for applicant names.
	Candidates map[string]*domain.Candidate
}

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects match."))
	}

	headers := []string{"ID", "TITLE", "TYPE", "STATUS", "SKILLS", "PAY", "PROGRESS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		id := p.ID
		if strings.TrimSpace(id) == "" {
			id = "--"
		}
		rows = append(rows, []string{
			Dim(id),
			Bold(p.Title),
			TypeBadge(p.Type),
			ProjectStatusPill(p.Status),
			JoinList(p.Skills),
			Money(p.Compensation),
			fmt.Sprintf("%3.0f%%", p.Progress()),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectDetail renders the project card with its milestones on the
// right and applicants below.
func FormatProjectDetail(d ProjectDetail) string {
	left := buildMetadataPanel(d)
	right := buildMilestonePanel(d.Project)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	return RenderBox("", top+"\n\n"+buildApplicantPanel(d))
}

func buildMetadataPanel(d ProjectDetail) string {
	p := d.Project
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(TypeBadge(p.Type) + "\n\n")

	org := p.OrganizationID
	if d.Organization != nil {
		org = d.Organization.DisplayName()
	}
	escrow := Dim("not funded")
	if p.EscrowFunded {
		escrow = StyleGreen.Render("funded")
	}

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	field("STATUS", ProjectStatusPill(p.Status))
	field("ID", Dim(p.ID))
	field("ORG", StyleFg.Render(org))
	field("PAY", Money(p.Compensation))
	field("ESCROW", escrow)
	field("DURATION", StyleFg.Render(domain.CoalesceStr(p.Duration, "--")))
	field("DEADLINE", HumanDate(p.Deadline))
	field("SKILLS", JoinList(p.Skills))
	if p.MentorshipOffer != "" {
		field("MENTOR", StyleFg.Render(p.MentorshipOffer))
	}
	if p.SelectedCandidateID != "" {
		field("SELECTED", candidateName(d.Candidates, p.SelectedCandidateID))
	}

	return lipgloss.NewStyle().Width(52).Render(b.String())
}

func buildMilestonePanel(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("MILESTONES") + "  " + RenderProgress(p.Progress()/100, 12) + "\n")

	if len(p.Milestones) == 0 {
		b.WriteString(Dim("No milestones"))
		return b.String()
	}
	for _, m := range p.Milestones {
		fmt.Fprintf(&b, "%d. %-12s %s\n", m.Order, m.Title, MilestoneStatusPill(m.Status))
		if m.Feedback != nil {
			fmt.Fprintf(&b, "   %s\n", Dim(fmt.Sprintf("rated %d/5", m.Feedback.Rating)))
		}
	}
	return b.String()
}

func buildApplicantPanel(d ProjectDetail) string {
	apps := d.Project.Applicants
	if len(apps) == 0 {
		return Dim("No applicants yet.")
	}

	headers := []string{"APPLICATION", "CANDIDATE", "MATCH", "STATUS"}
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{
			Dim(a.ID),
			candidateName(d.Candidates, a.CandidateID),
			ScoreStyle(a.MatchScore).Render(fmt.Sprintf("%d%%", a.MatchScore)),
			ApplicationStatusPill(a.Status),
		})
	}
	return RenderTable(headers, rows)
}

func candidateName(candidates map[string]*domain.Candidate, id string) string {
	if c, ok := candidates[id]; ok {
		return StyleFg.Render(c.Name) + " " + Dim("("+id+")")
	}
	return StyleFg.Render(id)
}

// FormatCandidateList renders candidates with their trust badge.
func FormatCandidateList(candidates []*domain.Candidate) string {
	if len(candidates) == 0 {
		return RenderBox("Candidates", Dim("No candidates."))
	}

	headers := []string{"ID", "NAME", "UNIVERSITY", "SKILLS", "LEVEL", "TRUST"}
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			Dim(c.ID),
			Bold(c.Name),
			domain.CoalesceStr(c.University, "--"),
			JoinList(c.SkillNames()),
			fmt.Sprintf("L%d", c.VerificationLevel),
			TrustBadge(c.TrustScore),
		})
	}
	return RenderBox("Candidates", RenderTable(headers, rows))
}
