package domain

import (
	"regexp"
	"strconv"
	"time"
)

// HoursPerWeek converts a project's duration in weeks into certified hours.
const HoursPerWeek = 15

var leadingIntPattern = regexp.MustCompile(`^\s*([+-]?[0-9]+)`)

type Certificate struct {
	ID               string
	CandidateID      string
	ProjectID        string
	ProjectTitle     string
	OrganizationName string
	Skills           []string
	CompletedAt      time.Time
	HoursWorked      *int
	Testimonial      string
}

// NewCertificate snapshots p at issuance. Later changes to p do not reach
// the certificate.
func NewCertificate(id string, p *Project, organizationName string, now time.Time) *Certificate {
	skills := cloneStrings(p.Skills)
	if skills == nil {
		skills = []string{}
	}
	return &Certificate{
		ID:               id,
		CandidateID:      p.SelectedCandidateID,
		ProjectID:        p.ID,
		ProjectTitle:     p.Title,
		OrganizationName: organizationName,
		Skills:           skills,
		CompletedAt:      now,
		HoursWorked:      HoursWorked(p.Duration),
	}
}

// HoursWorked derives certified hours from a duration label such as
// "4 weeks": the leading integer times HoursPerWeek. Labels without a
// leading integer yield nil.
func HoursWorked(duration string) *int {
	m := leadingIntPattern.FindStringSubmatch(duration)
	if m == nil {
		return nil
	}
	weeks, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	hours := weeks * HoursPerWeek
	return &hours
}

// Clone returns a deep copy of c.
func (c *Certificate) Clone() *Certificate {
	if c == nil {
		return nil
	}
	out := *c
	out.Skills = cloneStrings(c.Skills)
	out.HoursWorked = clonePtr(c.HoursWorked)
	return &out
}
