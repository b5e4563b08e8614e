package algorithms

import (
	"strings"

	"freelancehub_backend/internal/models"
)

// normalizeSkills lowercases and trims a skill list and drops empties,
// so that "Go" and "go " compare equal.
func normalizeSkills(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// SkillsOverlap reports whether the two skill lists share at least one
// skill, compared case-insensitively.
func SkillsOverlap(required, offered []string) bool {
	if len(required) == 0 || len(offered) == 0 {
		return false
	}
	want := normalizeSkills(required)
	for _, s := range offered {
		s = strings.ToLower(strings.TrimSpace(s))
		if _, ok := want[s]; ok {
			return true
		}
	}
	return false
}

// FreelancerSkills flattens the skills of every portfolio item a
// freelancer has. Duplicates are kept; overlap checks do not care.
func FreelancerSkills(freelancer *models.User) []string {
	var skills []string
	for i := range freelancer.PortfolioItems {
		skills = append(skills, freelancer.PortfolioItems[i].GetSkills()...)
	}
	return skills
}

// MatchingFreelancers filters candidates down to those whose portfolio
// skills overlap the required set. An empty required set matches nobody.
func MatchingFreelancers(required []string, candidates []models.User) []models.User {
	if len(required) == 0 {
		return nil
	}
	var matched []models.User
	for i := range candidates {
		if SkillsOverlap(required, FreelancerSkills(&candidates[i])) {
			matched = append(matched, candidates[i])
		}
	}
	return matched
}
