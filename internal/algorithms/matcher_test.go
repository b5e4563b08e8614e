package algorithms

import (
	"testing"

	"freelancehub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSkillsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		offered  []string
		want     bool
	}{
		{"exact match", []string{"Go"}, []string{"Go"}, true},
		{"case insensitive", []string{"Go", "SQL"}, []string{"go"}, true},
		{"whitespace trimmed", []string{"React"}, []string{" react "}, true},
		{"no overlap", []string{"Go"}, []string{"Python", "Rust"}, false},
		{"empty required", nil, []string{"Go"}, false},
		{"empty offered", []string{"Go"}, nil, false},
		{"both empty", nil, nil, false},
		{"blank entries ignored", []string{""}, []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillsOverlap(tt.required, tt.offered))
		})
	}
}

func TestFreelancerSkillsFlattensPortfolio(t *testing.T) {
	var u models.User
	first := models.PortfolioItem{}
	first.SetSkills([]string{"Go", "SQL"})
	second := models.PortfolioItem{}
	second.SetSkills([]string{"Docker"})
	u.PortfolioItems = []models.PortfolioItem{first, second}

	assert.ElementsMatch(t, []string{"Go", "SQL", "Docker"}, FreelancerSkills(&u))
}

func TestMatchingFreelancers(t *testing.T) {
	makeFreelancer := func(id string, skills ...string) models.User {
		var u models.User
		u.ID = id
		item := models.PortfolioItem{}
		item.SetSkills(skills)
		u.PortfolioItems = []models.PortfolioItem{item}
		return u
	}

	candidates := []models.User{
		makeFreelancer("go-dev", "Go", "SQL"),
		makeFreelancer("py-dev", "Python"),
		makeFreelancer("lower-go", "go"),
		makeFreelancer("no-portfolio"),
	}

	matched := MatchingFreelancers([]string{"Go", "SQL"}, candidates)
	ids := make([]string, 0, len(matched))
	for _, m := range matched {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"go-dev", "lower-go"}, ids)

	assert.Nil(t, MatchingFreelancers(nil, candidates))
	assert.Empty(t, MatchingFreelancers([]string{"Rust"}, candidates))
}
