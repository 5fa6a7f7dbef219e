package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID                  string
	OrganizationID      string
	Title               string
	Description         string
	Type                ProjectType
	Status              ProjectStatus
	Skills              []string
	MentorshipOffer     string
	Deliverables        []string
	Duration            string
	Compensation        float64
	EscrowFunded        bool
	CreatedAt           time.Time
	Deadline            *time.Time
	Applicants          []Application
	SelectedCandidateID string
	Milestones          []Milestone
}

// ProjectInput is the caller-supplied part of a new project. Identity,
// creation time, applicants and milestones are assigned on creation.
type ProjectInput struct {
	OrganizationID  string
	Title           string
	Description     string
	Type            ProjectType
	Status          ProjectStatus
	Skills          []string
	MentorshipOffer string
	Deliverables    []string
	Duration        string
	Compensation    float64
	EscrowFunded    bool
	Deadline        *time.Time
}

// ProjectPatch holds optional project field changes. Nil fields are left
// untouched.
type ProjectPatch struct {
	Title               *string
	Description         *string
	Type                *ProjectType
	Status              *ProjectStatus
	Skills              *[]string
	MentorshipOffer     *string
	Deliverables        *[]string
	Duration            *string
	Compensation        *float64
	EscrowFunded        *bool
	Deadline            *time.Time
	SelectedCandidateID *string
}

// ProjectFilter narrows the open-project listing. Empty fields match
// everything.
type ProjectFilter struct {
	Search string
	Type   ProjectType
	Skill  string
}

// NewProject builds a project from in with the three fixed milestones.
// Status defaults to open.
func NewProject(id string, in ProjectInput, now time.Time) *Project {
	p := &Project{
		ID:              id,
		OrganizationID:  in.OrganizationID,
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Status:          in.Status,
		Skills:          cloneStrings(in.Skills),
		MentorshipOffer: in.MentorshipOffer,
		Deliverables:    cloneStrings(in.Deliverables),
		Duration:        in.Duration,
		Compensation:    in.Compensation,
		EscrowFunded:    in.EscrowFunded,
		CreatedAt:       now,
		Deadline:        clonePtr(in.Deadline),
		Applicants:      []Application{},
		Milestones:      DefaultMilestones(id),
	}
	if p.Status == "" {
		p.Status = ProjectOpen
	}
	return p
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Skills = cloneStrings(p.Skills)
	c.Deliverables = cloneStrings(p.Deliverables)
	c.Deadline = clonePtr(p.Deadline)
	if p.Applicants != nil {
		c.Applicants = make([]Application, len(p.Applicants))
		copy(c.Applicants, p.Applicants)
	}
	if p.Milestones != nil {
		c.Milestones = make([]Milestone, len(p.Milestones))
		for i, m := range p.Milestones {
			c.Milestones[i] = m.clone()
		}
	}
	return &c
}

// Apply merges the non-nil fields of patch into p.
func (p *Project) Apply(patch ProjectPatch) {
	p.Title = ValueOr(p.Title, patch.Title)
	p.Description = ValueOr(p.Description, patch.Description)
	p.Type = ValueOr(p.Type, patch.Type)
	p.Status = ValueOr(p.Status, patch.Status)
	p.MentorshipOffer = ValueOr(p.MentorshipOffer, patch.MentorshipOffer)
	p.Duration = ValueOr(p.Duration, patch.Duration)
	p.Compensation = ValueOr(p.Compensation, patch.Compensation)
	p.EscrowFunded = ValueOr(p.EscrowFunded, patch.EscrowFunded)
	p.SelectedCandidateID = ValueOr(p.SelectedCandidateID, patch.SelectedCandidateID)
	if patch.Skills != nil {
		p.Skills = cloneStrings(*patch.Skills)
	}
	if patch.Deliverables != nil {
		p.Deliverables = cloneStrings(*patch.Deliverables)
	}
	if patch.Deadline != nil {
		p.Deadline = clonePtr(patch.Deadline)
	}
}

// MilestoneIndex returns the position of the milestone with the given ID,
// or -1.
func (p *Project) MilestoneIndex(milestoneID string) int {
	for i := range p.Milestones {
		if p.Milestones[i].ID == milestoneID {
			return i
		}
	}
	return -1
}

// Application returns the applicant with the given ID.
func (p *Project) Application(applicationID string) (*Application, bool) {
	for i := range p.Applicants {
		if p.Applicants[i].ID == applicationID {
			return &p.Applicants[i], true
		}
	}
	return nil, false
}

// Accept selects the applicant's candidate and starts the project. Every
// other applicant is rejected, including one accepted earlier: the last
// accept wins.
func (p *Project) Accept(applicationID string) (*Application, error) {
	accepted, ok := p.Application(applicationID)
	if !ok {
		return nil, fmt.Errorf("accepting %s on project %s: %w", applicationID, p.ID, ErrApplicationNotFound)
	}
	for i := range p.Applicants {
		if p.Applicants[i].ID == applicationID {
			p.Applicants[i].Status = ApplicationAccepted
		} else {
			p.Applicants[i].Status = ApplicationRejected
		}
	}
	p.Status = ProjectInProgress
	p.SelectedCandidateID = accepted.CandidateID
	if len(p.Milestones) > 0 {
		p.Milestones[0].Start()
	}
	return accepted, nil
}

// Reject marks a single applicant rejected. Other applicants and the
// project status are untouched.
func (p *Project) Reject(applicationID string) (*Application, error) {
	app, ok := p.Application(applicationID)
	if !ok {
		return nil, fmt.Errorf("rejecting %s on project %s: %w", applicationID, p.ID, ErrApplicationNotFound)
	}
	app.Status = ApplicationRejected
	return app, nil
}

// SubmitMilestone records the candidate's submission on an in-progress
// milestone.
func (p *Project) SubmitMilestone(milestoneID, submission string) (*Milestone, error) {
	idx := p.MilestoneIndex(milestoneID)
	if idx < 0 {
		return nil, fmt.Errorf("milestone %s on project %s: %w", milestoneID, p.ID, ErrMilestoneNotFound)
	}
	m := &p.Milestones[idx]
	if err := m.Submit(submission); err != nil {
		return nil, err
	}
	return m, nil
}

// ApproveMilestone completes a submitted milestone. If it was the last one
// the project is completed and completed is true; otherwise the next
// milestone is started.
func (p *Project) ApproveMilestone(milestoneID string, feedback MilestoneFeedback, now time.Time) (m *Milestone, completed bool, err error) {
	idx := p.MilestoneIndex(milestoneID)
	if idx < 0 {
		return nil, false, fmt.Errorf("milestone %s on project %s: %w", milestoneID, p.ID, ErrMilestoneNotFound)
	}
	m = &p.Milestones[idx]
	if err = m.Approve(feedback, now); err != nil {
		return nil, false, err
	}
	if idx == len(p.Milestones)-1 {
		p.Status = ProjectCompleted
		return m, true, nil
	}
	p.Milestones[idx+1].Start()
	return m, false, nil
}

// UpdateMilestone merges patch into the milestone with the given ID.
func (p *Project) UpdateMilestone(milestoneID string, patch MilestonePatch) error {
	idx := p.MilestoneIndex(milestoneID)
	if idx < 0 {
		return fmt.Errorf("milestone %s on project %s: %w", milestoneID, p.ID, ErrMilestoneNotFound)
	}
	p.Milestones[idx].Apply(patch)
	return nil
}

// Progress returns the share of completed milestones as a percentage.
func (p *Project) Progress() float64 {
	if len(p.Milestones) == 0 {
		return 0
	}
	var done int
	for _, m := range p.Milestones {
		if m.Status == MilestoneCompleted {
			done++
		}
	}
	return float64(done) / float64(len(p.Milestones)) * 100
}

// CurrentMilestone returns the first milestone that is not completed.
func (p *Project) CurrentMilestone() (*Milestone, bool) {
	for i := range p.Milestones {
		if !p.Milestones[i].IsTerminal() {
			return &p.Milestones[i], true
		}
	}
	return nil, false
}

// Matches reports whether p satisfies every non-empty field of f.
func (p *Project) Matches(f ProjectFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Skill != "" {
		q := strings.ToLower(f.Skill)
		found := false
		for _, s := range p.Skills {
			if strings.Contains(strings.ToLower(s), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
