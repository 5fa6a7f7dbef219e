package domain

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

type Skill struct {
	Name      string
	Category  string
	Level     SkillLevel
	Verified  bool
	TestScore *int
}

// Candidate is a user looking for project work. The core only reads it.
type Candidate struct {
	ID                string
	Name              string
	Email             string
	University        string
	Major             string
	Skills            []Skill
	LearningGoals     []string
	VerificationLevel int
	TrustScore        int
	CreatedAt         time.Time
}

// SkillNames returns the candidate's skill names in order.
func (c *Candidate) SkillNames() []string {
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.Name)
	}
	return names
}

// VerifiedSkillCount returns how many skills carry a verified flag.
func (c *Candidate) VerifiedSkillCount() int {
	var n int
	for _, s := range c.Skills {
		if s.Verified {
			n++
		}
	}
	return n
}

// Organization is a user posting project work.
type Organization struct {
	ID                string
	Name              string
	CompanyName       string
	Industry          string
	VerificationLevel int
	TrustScore        int
}

// DisplayName prefers the company name over the contact name.
func (o *Organization) DisplayName() string {
	return CoalesceStr(o.CompanyName, o.Name)
}
