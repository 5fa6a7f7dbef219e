package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultSeed []byte

// Document is the top-level YAML structure of a marketplace seed.
type Document struct {
	Candidates    []CandidateSeed    `yaml:"candidates" validate:"dive"`
	Organizations []OrganizationSeed `yaml:"organizations" validate:"dive"`
	Projects      []ProjectSeed      `yaml:"projects" validate:"dive"`
	Escrow        []EscrowSeed       `yaml:"escrow" validate:"dive"`
	Certificates  []CertificateSeed  `yaml:"certificates" validate:"dive"`
}

type SkillSeed struct {
	Name      string `yaml:"name" validate:"required"`
	Category  string `yaml:"category"`
	Level     string `yaml:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Verified  bool   `yaml:"verified"`
	TestScore *int   `yaml:"test_score" validate:"omitempty,min=0,max=100"`
}

type CandidateSeed struct {
	ID                string      `yaml:"id" validate:"required"`
	Name              string      `yaml:"name" validate:"required"`
	Email             string      `yaml:"email" validate:"omitempty,email"`
	University        string      `yaml:"university"`
	Major             string      `yaml:"major"`
	Skills            []SkillSeed `yaml:"skills" validate:"dive"`
	LearningGoals     []string    `yaml:"learning_goals"`
	VerificationLevel int         `yaml:"verification_level" validate:"min=1,max=2"`
	TrustScore        int         `yaml:"trust_score" validate:"min=0,max=100"`
	CreatedAt         *time.Time  `yaml:"created_at"`
}

type OrganizationSeed struct {
	ID                string `yaml:"id" validate:"required"`
	Name              string `yaml:"name" validate:"required"`
	CompanyName       string `yaml:"company_name"`
	Industry          string `yaml:"industry"`
	VerificationLevel int    `yaml:"verification_level" validate:"min=1,max=2"`
	TrustScore        int    `yaml:"trust_score" validate:"min=0,max=100"`
}

type ProjectSeed struct {
	ID                  string            `yaml:"id" validate:"required"`
	OrganizationID      string            `yaml:"organization_id" validate:"required"`
	Title               string            `yaml:"title" validate:"required"`
	Description         string            `yaml:"description"`
	Type                string            `yaml:"type" validate:"required,oneof=micro-internship project-gig"`
	Status              string            `yaml:"status" validate:"omitempty,oneof=draft open in-progress mid-check completed cancelled"`
	Skills              []string          `yaml:"skills" validate:"dive,required"`
	MentorshipOffer     string            `yaml:"mentorship_offer"`
	Deliverables        []string          `yaml:"deliverables"`
	Duration            string            `yaml:"duration"`
	Compensation        float64           `yaml:"compensation" validate:"min=0"`
	EscrowFunded        bool              `yaml:"escrow_funded"`
	CreatedAt           *time.Time        `yaml:"created_at"`
	Deadline            *time.Time        `yaml:"deadline"`
	SelectedCandidateID string            `yaml:"selected_candidate_id"`
	Applications        []ApplicationSeed `yaml:"applications" validate:"dive"`
	Milestones          []MilestoneSeed   `yaml:"milestones" validate:"omitempty,len=3,dive"`
}

type ApplicationSeed struct {
	ID            string     `yaml:"id" validate:"required"`
	CandidateID   string     `yaml:"candidate_id" validate:"required"`
	Status        string     `yaml:"status" validate:"omitempty,oneof=pending accepted rejected"`
	CoverLetter   string     `yaml:"cover_letter" validate:"required"`
	VideoPitchURL string     `yaml:"video_pitch_url" validate:"omitempty,url"`
	MatchScore    *int       `yaml:"match_score" validate:"omitempty,min=0,max=100"`
	AppliedAt     *time.Time `yaml:"applied_at"`
}

type MilestoneSeed struct {
	Title       string        `yaml:"title" validate:"required"`
	Description string        `yaml:"description"`
	Status      string        `yaml:"status" validate:"omitempty,oneof=pending in-progress submitted needs-revision approved completed"`
	Submission  string        `yaml:"submission"`
	Feedback    *FeedbackSeed `yaml:"feedback"`
	DueDate     *time.Time    `yaml:"due_date"`
	CompletedAt *time.Time    `yaml:"completed_at"`
}

type FeedbackSeed struct {
	Rating      int        `yaml:"rating" validate:"min=1,max=5"`
	Comment     string     `yaml:"comment" validate:"required"`
	SubmittedAt *time.Time `yaml:"submitted_at"`
}

type EscrowSeed struct {
	ID         string     `yaml:"id" validate:"required"`
	ProjectID  string     `yaml:"project_id" validate:"required"`
	Amount     float64    `yaml:"amount" validate:"min=0"`
	Status     string     `yaml:"status" validate:"required,oneof=locked released refunded disputed"`
	LockedAt   *time.Time `yaml:"locked_at"`
	ReleasedAt *time.Time `yaml:"released_at"`
}

type CertificateSeed struct {
	ID               string     `yaml:"id" validate:"required"`
	CandidateID      string     `yaml:"candidate_id" validate:"required"`
	ProjectID        string     `yaml:"project_id" validate:"required"`
	ProjectTitle     string     `yaml:"project_title" validate:"required"`
	OrganizationName string     `yaml:"organization_name"`
	Skills           []string   `yaml:"skills"`
	CompletedAt      *time.Time `yaml:"completed_at"`
	HoursWorked      *int       `yaml:"hours_worked" validate:"omitempty,min=0"`
	Testimonial      string     `yaml:"testimonial"`
}

// Load reads a seed file. An empty path loads the embedded default seed.
func Load(path string) (*Document, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected and an empty
// input yields an empty document.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &doc, nil
}
