package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
)

// FormatMatch renders a candidate/project score with its factor breakdown.
func FormatMatch(c *domain.Candidate, p *domain.Project, r match.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s %s\n\n",
		ScoreStyle(r.Score).Render(fmt.Sprintf("%d%% match", r.Score)),
		Bold(c.Name),
		Dim("→ "+p.Title))

	headers := []string{"FACTOR", "POINTS", "MAX"}
	rows := [][]string{
		{"Skill overlap", points(r.Skill), points(match.SkillPoints)},
		{"Learning goals", points(r.Goals), points(match.GoalPoints)},
		{"Verification", points(r.Verification), points(match.VerificationPoints * 2)},
		{"Trust", points(r.Trust), points(match.TrustPoints)},
	}
	b.WriteString(RenderTable(headers, rows))

	if len(r.Reasons) > 0 {
		b.WriteString("\n" + Header("Why") + "\n")
		for _, reason := range r.Reasons {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleGreen.Render("+"), reason.Message, Dim(points(reason.Points)))
		}
	}
	return RenderBox("Match", b.String())
}

// FormatProjectMatches renders recommended projects for a candidate.
func FormatProjectMatches(c *domain.Candidate, matches []match.ProjectMatch) string {
	title := "Recommended projects for " + c.Name
	if len(matches) == 0 {
		return RenderBox(title, Dim("No open projects."))
	}

	headers := []string{"#", "MATCH", "PROJECT", "TITLE", "SKILLS", "PAY"}
	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ScoreStyle(m.Result.Score).Render(fmt.Sprintf("%d%%", m.Result.Score)),
			Dim(m.Project.ID),
			Bold(m.Project.Title),
			JoinList(m.Project.Skills),
			Money(m.Project.Compensation),
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatCandidateMatches renders recommended candidates for a project.
func FormatCandidateMatches(p *domain.Project, matches []match.CandidateMatch) string {
	title := "Recommended candidates for " + p.Title
	if len(matches) == 0 {
		return RenderBox(title, Dim("No candidates."))
	}

	headers := []string{"#", "MATCH", "CANDIDATE", "NAME", "SKILLS", "TRUST"}
	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ScoreStyle(m.Result.Score).Render(fmt.Sprintf("%d%%", m.Result.Score)),
			Dim(m.Candidate.ID),
			Bold(m.Candidate.Name),
			JoinList(m.Candidate.SkillNames()),
			TrustBadge(m.Candidate.TrustScore),
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

func points(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
