package formatter

import (
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatProjectList(t *testing.T) {
	p := testutil.NewTestProject("Dashboard Rebuild",
		testutil.WithSkills("React", "TypeScript"),
		testutil.WithCompensation(1200),
	)
	p.Milestones[0].Status = domain.MilestoneCompleted

	out := stripANSI(FormatProjectList([]*domain.Project{p}))

	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, p.ID)
	assert.Contains(t, out, "Dashboard Rebuild")
	assert.Contains(t, out, "Project Gig")
	assert.Contains(t, out, "React, TypeScript")
	assert.Contains(t, out, "$1,200")
	assert.Contains(t, out, "33%")
}

func TestFormatProjectList_Empty(t *testing.T) {
	out := stripANSI(FormatProjectList(nil))
	assert.Contains(t, out, "No projects match.")
}

func TestFormatProjectDetail(t *testing.T) {
	p := testutil.NewTestProject("Dashboard Rebuild", testutil.WithOrganization("org-1"))
	cand := testutil.NewTestCandidate("Sarah Chen")
	p.Applicants = append(p.Applicants, domain.Application{
		ID: "app-1", CandidateID: cand.ID, Status: domain.ApplicationAccepted, MatchScore: 71,
	})
	p.SelectedCandidateID = cand.ID
	p.Status = domain.ProjectInProgress
	p.Milestones[0].Status = domain.MilestoneInProgress

	out := stripANSI(FormatProjectDetail(ProjectDetail{
		Project:      p,
		Organization: testutil.NewTestOrganization("org-1", "TechFlow AI"),
		Candidates:   map[string]*domain.Candidate{cand.ID: cand},
	}))

	assert.Contains(t, out, "TechFlow AI")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "MILESTONES")
	assert.Contains(t, out, "Kickoff")
	assert.Contains(t, out, "Completion")
	assert.Contains(t, out, "app-1")
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "71%")
	assert.Contains(t, out, "Accepted")
}

func TestFormatProjectDetail_NoApplicants(t *testing.T) {
	p := testutil.NewTestProject("Quiet Project")

	out := stripANSI(FormatProjectDetail(ProjectDetail{Project: p}))

	assert.Contains(t, out, "No applicants yet.")
	assert.Contains(t, out, "org-test")
}

func TestFormatCandidateList(t *testing.T) {
	c := testutil.NewTestCandidate("Marcus Johnson",
		testutil.WithCandidateSkills("Python", "SQL"),
		testutil.WithTrustScore(78),
		testutil.WithVerificationLevel(2),
	)

	out := stripANSI(FormatCandidateList([]*domain.Candidate{c}))

	assert.Contains(t, out, "Marcus Johnson")
	assert.Contains(t, out, "Python, SQL")
	assert.Contains(t, out, "L2")
	assert.Contains(t, out, "78 Good")
}
