package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

// Directory receives the seeded candidates and organizations.
type Directory interface {
	AddCandidate(ctx context.Context, c *domain.Candidate) error
	AddOrganization(ctx context.Context, o *domain.Organization) error
}

// Targets are the stores a seed is written into.
type Targets struct {
	Directory    Directory
	Projects     repository.ProjectRepo
	Escrow       repository.EscrowRepo
	Certificates repository.CertificateRepo
}

// Summary counts what Apply stored.
type Summary struct {
	Candidates    int
	Organizations int
	Projects      int
	Applications  int
	Escrow        int
	Certificates  int
}

// Apply validates doc, converts it and stores every record in document
// order. Missing timestamps default to now.
func Apply(ctx context.Context, doc *Document, t Targets, now time.Time) (*Summary, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return nil, fmt.Errorf("seed has %d validation errors: %w", len(errs), errs[0])
	}

	var sum Summary
	candidates := make(map[string]*domain.Candidate, len(doc.Candidates))
	for _, cs := range doc.Candidates {
		c := ConvertCandidate(cs, now)
		if err := t.Directory.AddCandidate(ctx, c); err != nil {
			return nil, fmt.Errorf("seeding candidate %s: %w", cs.ID, err)
		}
		candidates[c.ID] = c
		sum.Candidates++
	}

	for _, org := range doc.Organizations {
		if err := t.Directory.AddOrganization(ctx, ConvertOrganization(org)); err != nil {
			return nil, fmt.Errorf("seeding organization %s: %w", org.ID, err)
		}
		sum.Organizations++
	}

	for _, ps := range doc.Projects {
		p := ConvertProject(ps, candidates, now)
		if err := t.Projects.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seeding project %s: %w", ps.ID, err)
		}
		sum.Projects++
		sum.Applications += len(p.Applicants)
	}

	for _, es := range doc.Escrow {
		if err := t.Escrow.Create(ctx, ConvertEscrow(es, now)); err != nil {
			return nil, fmt.Errorf("seeding escrow %s: %w", es.ID, err)
		}
		sum.Escrow++
	}

	for _, cs := range doc.Certificates {
		if err := t.Certificates.Create(ctx, ConvertCertificate(cs, now)); err != nil {
			return nil, fmt.Errorf("seeding certificate %s: %w", cs.ID, err)
		}
		sum.Certificates++
	}

	return &sum, nil
}

func ConvertCandidate(cs CandidateSeed, now time.Time) *domain.Candidate {
	c := &domain.Candidate{
		ID:                cs.ID,
		Name:              cs.Name,
		Email:             cs.Email,
		University:        cs.University,
		Major:             cs.Major,
		LearningGoals:     append([]string(nil), cs.LearningGoals...),
		VerificationLevel: cs.VerificationLevel,
		TrustScore:        cs.TrustScore,
		CreatedAt:         timeOr(cs.CreatedAt, now),
	}
	for _, s := range cs.Skills {
		c.Skills = append(c.Skills, domain.Skill{
			Name:      s.Name,
			Category:  s.Category,
			Level:     domain.SkillLevel(domain.CoalesceStr(s.Level, string(domain.SkillBeginner))),
			Verified:  s.Verified,
			TestScore: s.TestScore,
		})
	}
	return c
}

func ConvertOrganization(o OrganizationSeed) *domain.Organization {
	return &domain.Organization{
		ID:                o.ID,
		Name:              o.Name,
		CompanyName:       o.CompanyName,
		Industry:          o.Industry,
		VerificationLevel: o.VerificationLevel,
		TrustScore:        o.TrustScore,
	}
}

// ConvertProject builds a project with the fixed milestones, overlaid with
// any milestone state the seed carries. Applications without a match score
// are scored against the seeded candidates.
func ConvertProject(ps ProjectSeed, candidates map[string]*domain.Candidate, now time.Time) *domain.Project {
	p := domain.NewProject(ps.ID, domain.ProjectInput{
		OrganizationID:  ps.OrganizationID,
		Title:           ps.Title,
		Description:     ps.Description,
		Type:            domain.ProjectType(ps.Type),
		Status:          domain.ProjectStatus(ps.Status),
		Skills:          ps.Skills,
		MentorshipOffer: ps.MentorshipOffer,
		Deliverables:    ps.Deliverables,
		Duration:        ps.Duration,
		Compensation:    ps.Compensation,
		EscrowFunded:    ps.EscrowFunded,
		Deadline:        ps.Deadline,
	}, timeOr(ps.CreatedAt, now))
	p.SelectedCandidateID = ps.SelectedCandidateID

	if len(ps.Milestones) == len(p.Milestones) {
		for i, ms := range ps.Milestones {
			m := &p.Milestones[i]
			m.Title = ms.Title
			m.Description = domain.CoalesceStr(ms.Description, m.Description)
			m.Status = domain.MilestoneStatus(domain.CoalesceStr(ms.Status, string(domain.MilestonePending)))
			m.Submission = ms.Submission
			m.DueDate = ms.DueDate
			m.CompletedAt = ms.CompletedAt
			if ms.Feedback != nil {
				fb := domain.NewMilestoneFeedback(ms.Feedback.Rating, ms.Feedback.Comment, timeOr(ms.Feedback.SubmittedAt, now))
				m.Feedback = &fb
			}
		}
	}

	for _, as := range ps.Applications {
		score := 0
		if as.MatchScore != nil {
			score = *as.MatchScore
		} else if c, ok := candidates[as.CandidateID]; ok {
			score = match.Score(c, p).Score
		}
		p.Applicants = append(p.Applicants, domain.Application{
			ID:            as.ID,
			ProjectID:     p.ID,
			CandidateID:   as.CandidateID,
			AppliedAt:     timeOr(as.AppliedAt, now),
			Status:        domain.ApplicationStatus(domain.CoalesceStr(as.Status, string(domain.ApplicationPending))),
			CoverLetter:   as.CoverLetter,
			VideoPitchURL: as.VideoPitchURL,
			MatchScore:    score,
		})
	}
	return p
}

func ConvertEscrow(es EscrowSeed, now time.Time) *domain.EscrowTransaction {
	return &domain.EscrowTransaction{
		ID:         es.ID,
		ProjectID:  es.ProjectID,
		Amount:     es.Amount,
		Status:     domain.EscrowStatus(es.Status),
		LockedAt:   timeOr(es.LockedAt, now),
		ReleasedAt: es.ReleasedAt,
	}
}

func ConvertCertificate(cs CertificateSeed, now time.Time) *domain.Certificate {
	skills := append([]string{}, cs.Skills...)
	return &domain.Certificate{
		ID:               cs.ID,
		CandidateID:      cs.CandidateID,
		ProjectID:        cs.ProjectID,
		ProjectTitle:     cs.ProjectTitle,
		OrganizationName: cs.OrganizationName,
		Skills:           skills,
		CompletedAt:      timeOr(cs.CompletedAt, now),
		HoursWorked:      cs.HoursWorked,
		Testimonial:      cs.Testimonial,
	}
}

func timeOr(t *time.Time, fallback time.Time) time.Time {
	return domain.ValueOr(fallback, t)
}
