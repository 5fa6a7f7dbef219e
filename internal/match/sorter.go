package match

import (
	"sort"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

type ProjectMatch struct {
	Project *domain.Project
	Result  Result
}

type CandidateMatch struct {
	Candidate *domain.Candidate
	Result    Result
}

// RankProjects scores every project for c and sorts by score, highest
// first. Equal scores keep their input order.
func RankProjects(c *domain.Candidate, projects []*domain.Project) []ProjectMatch {
	out := make([]ProjectMatch, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectMatch{Project: p, Result: Score(c, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}

// RankCandidates scores every candidate for p with the same ordering rule
// as RankProjects.
func RankCandidates(p *domain.Project, candidates []*domain.Candidate) []CandidateMatch {
	out := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, CandidateMatch{Candidate: c, Result: Score(c, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}
