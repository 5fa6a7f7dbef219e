package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// MinFeedbackLength is the shortest comment, in characters, accepted when
// approving a milestone.
const MinFeedbackLength = 50

type Milestone struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Order       int
	Status      MilestoneStatus
	Submission  string
	Feedback    *MilestoneFeedback
	DueDate     *time.Time
	CompletedAt *time.Time
}

type MilestoneFeedback struct {
	Rating      int
	Comment     string
	Detailed    bool
	SubmittedAt time.Time
}

// MilestonePatch holds optional milestone field changes. Nil fields are left
// untouched.
type MilestonePatch struct {
	Title       *string
	Description *string
	Status      *MilestoneStatus
	Submission  *string
	DueDate     *time.Time
}

type milestoneTemplate struct {
	title       string
	description string
}

var fixedMilestones = []milestoneTemplate{
	{"Kickoff", "Project kickoff and initial planning"},
	{"Mid-Point", "Mid-project checkpoint and review"},
	{"Completion", "Final delivery and handoff"},
}

// DefaultMilestones returns the three fixed milestones every project starts
// with, back-referenced to projectID.
func DefaultMilestones(projectID string) []Milestone {
	out := make([]Milestone, 0, len(fixedMilestones))
	for i, tpl := range fixedMilestones {
		order := i + 1
		out = append(out, Milestone{
			ID:          fmt.Sprintf("%s-ms%d", projectID, order),
			ProjectID:   projectID,
			Title:       tpl.title,
			Description: tpl.description,
			Order:       order,
			Status:      MilestonePending,
		})
	}
	return out
}

// NewMilestoneFeedback builds feedback with Detailed derived from the
// comment length.
func NewMilestoneFeedback(rating int, comment string, now time.Time) MilestoneFeedback {
	return MilestoneFeedback{
		Rating:      rating,
		Comment:     comment,
		Detailed:    utf8.RuneCountInString(comment) >= MinFeedbackLength,
		SubmittedAt: now,
	}
}

// ValidateFeedbackComment rejects comments shorter than MinFeedbackLength.
func ValidateFeedbackComment(comment string) error {
	if n := utf8.RuneCountInString(comment); n < MinFeedbackLength {
		return &ValidationError{
			Field:  "feedback.comment",
			Reason: fmt.Sprintf("detailed feedback requires at least %d characters (got %d)", MinFeedbackLength, n),
			Err:    ErrFeedbackTooShort,
		}
	}
	return nil
}

// IsTerminal reports whether the milestone can no longer change status.
func (m *Milestone) IsTerminal() bool {
	return m.Status == MilestoneCompleted
}

// Start moves a pending milestone to in-progress. Other statuses are left
// as they are.
func (m *Milestone) Start() bool {
	if m.Status != MilestonePending {
		return false
	}
	m.Status = MilestoneInProgress
	return true
}

// Submit attaches the candidate's submission. Only an in-progress milestone
// accepts work.
func (m *Milestone) Submit(submission string) error {
	if m.Status != MilestoneInProgress {
		return fmt.Errorf("submitting %q (status %s): %w", m.Title, m.Status, ErrMilestoneNotInProgress)
	}
	m.Status = MilestoneSubmitted
	m.Submission = submission
	return nil
}

// Approve completes a submitted milestone with the reviewer's feedback.
func (m *Milestone) Approve(feedback MilestoneFeedback, now time.Time) error {
	if m.Status != MilestoneSubmitted {
		return fmt.Errorf("approving %q (status %s): %w", m.Title, m.Status, ErrMilestoneNotSubmitted)
	}
	m.Status = MilestoneCompleted
	m.CompletedAt = &now
	m.Feedback = &feedback
	return nil
}

// Apply merges the non-nil fields of patch into m.
func (m *Milestone) Apply(patch MilestonePatch) {
	m.Title = ValueOr(m.Title, patch.Title)
	m.Description = ValueOr(m.Description, patch.Description)
	m.Status = ValueOr(m.Status, patch.Status)
	m.Submission = ValueOr(m.Submission, patch.Submission)
	if patch.DueDate != nil {
		m.DueDate = clonePtr(patch.DueDate)
	}
}

func (m Milestone) clone() Milestone {
	m.Feedback = clonePtr(m.Feedback)
	m.DueDate = clonePtr(m.DueDate)
	m.CompletedAt = clonePtr(m.CompletedAt)
	return m
}
