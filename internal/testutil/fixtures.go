package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/google/uuid"
)

var testCandidateCounter atomic.Int64

// FixedNow is the reference time used by fixtures and test clocks.
var FixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// DetailedComment is a review comment long enough to approve a milestone.
const DetailedComment = "Clear structure, tests included, and the handoff notes were thorough."

// Project options
type ProjectOption func(*domain.ProjectInput)

func WithOrganization(id string) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.OrganizationID = id
	}
}

func WithSkills(skills ...string) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Skills = skills
	}
}

func WithMentorship(offer string) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.MentorshipOffer = offer
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Status = s
	}
}

func WithProjectType(t domain.ProjectType) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Type = t
	}
}

func WithDuration(d string) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Duration = d
	}
}

func WithDescription(d string) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Description = d
	}
}

func WithCompensation(amount float64) ProjectOption {
	return func(p *domain.ProjectInput) {
		p.Compensation = amount
	}
}

// NewTestProjectInput returns an open project-gig input with sensible
// defaults.
func NewTestProjectInput(title string, opts ...ProjectOption) domain.ProjectInput {
	in := domain.ProjectInput{
		OrganizationID:  "org-test",
		Title:           title,
		Description:     title + " description",
		Type:            domain.ProjectGig,
		Status:          domain.ProjectOpen,
		Skills:          []string{"React"},
		MentorshipOffer: "Weekly code review",
		Deliverables:    []string{"Source code"},
		Duration:        "4 weeks",
		Compensation:    300,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// NewTestProject builds a stored-shape project with a fresh ID.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	return domain.NewProject("proj-"+uuid.NewString(), NewTestProjectInput(title, opts...), FixedNow)
}

// Candidate options
type CandidateOption func(*domain.Candidate)

func WithCandidateSkills(names ...string) CandidateOption {
	return func(c *domain.Candidate) {
		c.Skills = c.Skills[:0]
		for _, n := range names {
			c.Skills = append(c.Skills, domain.Skill{Name: n, Level: domain.SkillIntermediate})
		}
	}
}

func WithLearningGoals(goals ...string) CandidateOption {
	return func(c *domain.Candidate) {
		c.LearningGoals = goals
	}
}

func WithVerificationLevel(level int) CandidateOption {
	return func(c *domain.Candidate) {
		c.VerificationLevel = level
	}
}

func WithTrustScore(score int) CandidateOption {
	return func(c *domain.Candidate) {
		c.TrustScore = score
	}
}

func WithCandidateID(id string) CandidateOption {
	return func(c *domain.Candidate) {
		c.ID = id
	}
}

// NewTestCandidate returns a level-1 candidate with trust score 0 and no
// skills or goals, so each test states the factors it relies on.
func NewTestCandidate(name string, opts ...CandidateOption) *domain.Candidate {
	n := testCandidateCounter.Add(1)
	c := &domain.Candidate{
		ID:                fmt.Sprintf("stu-%03d", n),
		Name:              name,
		Email:             fmt.Sprintf("student%d@uni.edu", n),
		VerificationLevel: 1,
		CreatedAt:         FixedNow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestOrganization(id, company string) *domain.Organization {
	return &domain.Organization{
		ID:                id,
		Name:              company + " Founder",
		CompanyName:       company,
		Industry:          "software",
		VerificationLevel: 1,
		TrustScore:        60,
	}
}
