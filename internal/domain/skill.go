package domain

import (
	"context"
	"strings"
)

// Skill is a master-list entry used by pickers. Job and user skill sets are
// stored as normalized token arrays; the comma-separated string form only
// exists at the API boundary.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) error
	DeleteSkill(ctx context.Context, id int64) error
}

// ParseSkillList splits a comma-separated skill string into trimmed,
// lower-cased tokens, dropping empties and duplicates. Token order follows
// first appearance.
func ParseSkillList(s string) []string {
	if s == "" {
		return nil
	}
	seen := make(map[string]bool)
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// MatchSkills returns the job tokens also present in the user's set,
// case-insensitive, preserving job token order.
func MatchSkills(jobSkills, userSkills []string) []string {
	if len(jobSkills) == 0 || len(userSkills) == 0 {
		return nil
	}
	have := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	var matched []string
	for _, s := range jobSkills {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			matched = append(matched, s)
		}
	}
	return matched
}

// JoinSkillList renders tokens back into the API string form.
func JoinSkillList(tokens []string) string {
	return strings.Join(tokens, ", ")
}
