package domain

import "time"

type Application struct {
	ID            string
	ProjectID     string
	CandidateID   string
	AppliedAt     time.Time
	Status        ApplicationStatus
	CoverLetter   string
	VideoPitchURL string
	MatchScore    int
}

// ApplicationInput is what a candidate submits when applying. The match
// score is computed by the store, never supplied.
type ApplicationInput struct {
	ProjectID     string
	CandidateID   string
	CoverLetter   string
	VideoPitchURL string
}
