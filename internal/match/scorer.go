package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// Factor weights. The four factors sum to MaxScore.
const (
	SkillPoints        = 50.0
	GoalPoints         = 20.0
	VerificationPoints = 7.5 // per verification level
	TrustPoints        = 15.0
	MaxScore           = 100
)

type ReasonCode string

const (
	ReasonSkillOverlap   ReasonCode = "SKILL_OVERLAP"
	ReasonNoSkills       ReasonCode = "NO_REQUIRED_SKILLS"
	ReasonGoalMentorship ReasonCode = "GOAL_IN_MENTORSHIP"
	ReasonGoalSkill      ReasonCode = "GOAL_MATCHES_SKILL"
	ReasonVerification   ReasonCode = "VERIFICATION_BONUS"
	ReasonTrust          ReasonCode = "TRUST_BONUS"
)

// Reason explains one factor's contribution to a score.
type Reason struct {
	Code    ReasonCode
	Message string
	Points  float64
}

// Result is a scored candidate/project pair. Score is the rounded total;
// the per-factor points are kept unrounded.
type Result struct {
	Score        int
	Raw          float64
	Skill        float64
	Goals        float64
	Verification float64
	Trust        float64
	Reasons      []Reason
}

// Score computes the compatibility of c with p. Both must be non-nil; the
// service layer maps missing records to a zero score.
func Score(c *domain.Candidate, p *domain.Project) Result {
	var res Result
	factors := []struct {
		dst *float64
		fn  func(*domain.Candidate, *domain.Project) (float64, *Reason)
	}{
		{&res.Skill, scoreSkillOverlap},
		{&res.Goals, scoreGoalAlignment},
		{&res.Verification, scoreVerification},
		{&res.Trust, scoreTrust},
	}
	for _, f := range factors {
		pts, reason := f.fn(c, p)
		*f.dst = pts
		res.Raw += pts
		if reason != nil {
			res.Reasons = append(res.Reasons, *reason)
		}
	}
	res.Score = roundHalfUp(res.Raw)
	return res
}

// roundHalfUp rounds to the nearest integer with ties going up, then clamps
// to the 0-100 range.
func roundHalfUp(x float64) int {
	n := int(math.Floor(x + 0.5))
	switch {
	case n < 0:
		return 0
	case n > MaxScore:
		return MaxScore
	}
	return n
}

func scoreSkillOverlap(c *domain.Candidate, p *domain.Project) (float64, *Reason) {
	if len(p.Skills) == 0 {
		return 0, &Reason{Code: ReasonNoSkills, Message: "Project lists no required skills"}
	}
	have := lowerAll(c.SkillNames())
	matched := 0
	for _, s := range p.Skills {
		if overlapsAny(strings.ToLower(s), have) {
			matched++
		}
	}
	pts := math.Min(SkillPoints, float64(matched)/float64(len(p.Skills))*SkillPoints)
	if matched == 0 {
		return 0, nil
	}
	return pts, &Reason{
		Code:    ReasonSkillOverlap,
		Message: fmt.Sprintf("Matches %d of %d required skills", matched, len(p.Skills)),
		Points:  pts,
	}
}

// scoreGoalAlignment is all or nothing.
func scoreGoalAlignment(c *domain.Candidate, p *domain.Project) (float64, *Reason) {
	goals := lowerAll(c.LearningGoals)
	if len(goals) == 0 {
		return 0, nil
	}
	offer := strings.ToLower(p.MentorshipOffer)
	if offer != "" && overlapsAny(offer, goals) {
		return GoalPoints, &Reason{
			Code:    ReasonGoalMentorship,
			Message: "Mentorship covers a learning goal",
			Points:  GoalPoints,
		}
	}
	for _, s := range p.Skills {
		if overlapsAny(strings.ToLower(s), goals) {
			return GoalPoints, &Reason{
				Code:    ReasonGoalSkill,
				Message: fmt.Sprintf("Required skill %q is a learning goal", s),
				Points:  GoalPoints,
			}
		}
	}
	return 0, nil
}

func scoreVerification(c *domain.Candidate, _ *domain.Project) (float64, *Reason) {
	if c.VerificationLevel <= 0 {
		return 0, nil
	}
	pts := float64(c.VerificationLevel) * VerificationPoints
	return pts, &Reason{
		Code:    ReasonVerification,
		Message: fmt.Sprintf("Verification level %d", c.VerificationLevel),
		Points:  pts,
	}
}

func scoreTrust(c *domain.Candidate, _ *domain.Project) (float64, *Reason) {
	if c.TrustScore <= 0 {
		return 0, nil
	}
	pts := float64(c.TrustScore) / 100 * TrustPoints
	return pts, &Reason{
		Code:    ReasonTrust,
		Message: fmt.Sprintf("Trust score %d (%s)", c.TrustScore, domain.TrustLabel(c.TrustScore)),
		Points:  pts,
	}
}

// overlapsAny reports whether s contains, or is contained by, any of the
// candidates. Blank strings never match.
func overlapsAny(s string, candidates []string) bool {
	if s == "" {
		return false
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if strings.Contains(s, c) || strings.Contains(c, s) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
