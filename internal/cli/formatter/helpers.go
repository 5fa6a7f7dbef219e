package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate formats t as "Jan 2, 2006"; nil renders as a placeholder.
func HumanDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder()
	}
	return t.Format("Jan 2, 2006")
}

// Money formats an amount in dollars with thousands separators, dropping
// the cents when they are zero.
func Money(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac := cents % 100; frac != 0 {
		return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
	}
	return sign + "$" + b.String()
}

// JoinList joins values with ", ", or renders a placeholder when empty.
func JoinList(values []string) string {
	if len(values) == 0 {
		return Placeholder()
	}
	return strings.Join(values, ", ")
}

// ProjectStatusPill returns a colored status indicator for a project.
func ProjectStatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectOpen:
		return StyleGreen.Render("● Open")
	case domain.ProjectInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.ProjectMidCheck:
		return StyleYellow.Render("◐ Mid-Check")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectDraft:
		return StyleDim.Render("○ Draft")
	case domain.ProjectCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// MilestoneStatusPill returns a colored status indicator for a milestone.
func MilestoneStatusPill(status domain.MilestoneStatus) string {
	switch status {
	case domain.MilestonePending:
		return StyleDim.Render("○ Pending")
	case domain.MilestoneInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.MilestoneSubmitted:
		return StyleYellow.Render("◆ Submitted")
	case domain.MilestoneNeedsRevision:
		return StyleRed.Render("↺ Needs Revision")
	case domain.MilestoneApproved, domain.MilestoneCompleted:
		return StyleGreen.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ApplicationStatusPill returns a colored status indicator for an
// application.
func ApplicationStatusPill(status domain.ApplicationStatus) string {
	switch status {
	case domain.ApplicationAccepted:
		return StyleGreen.Render("✔ Accepted")
	case domain.ApplicationRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleYellow.Render("○ Pending")
	}
}

// EscrowStatusPill returns a colored status indicator for an escrow
// transaction.
func EscrowStatusPill(status domain.EscrowStatus) string {
	switch status {
	case domain.EscrowLocked:
		return StyleYellow.Render("■ Locked")
	case domain.EscrowReleased:
		return StyleGreen.Render("✔ Released")
	case domain.EscrowRefunded:
		return StyleBlue.Render("↩ Refunded")
	case domain.EscrowDisputed:
		return StyleRed.Render("! Disputed")
	default:
		return StyleDim.Render(string(status))
	}
}

// TypeBadge renders a project type label.
func TypeBadge(t domain.ProjectType) string {
	switch t {
	case domain.ProjectMicroInternship:
		return StylePurple.Render("Micro-Internship")
	case domain.ProjectGig:
		return StylePurple.Render("Project Gig")
	default:
		return Placeholder()
	}
}
