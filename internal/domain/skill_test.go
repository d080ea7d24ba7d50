package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobtrack-backend/internal/domain"
)

func TestParseSkillList(t *testing.T) {
	t.Run("Should trim, lowercase and dedupe", func(t *testing.T) {
		tokens := domain.ParseSkillList(" Go , SQL, go ,Docker,, sql ")
		assert.Equal(t, []string{"go", "sql", "docker"}, tokens)
	})

	t.Run("Should return nil for an empty string", func(t *testing.T) {
		assert.Nil(t, domain.ParseSkillList(""))
	})

	t.Run("Should return nil for only separators", func(t *testing.T) {
		assert.Empty(t, domain.ParseSkillList(" , ,, "))
	})
}

func TestMatchSkills(t *testing.T) {
	t.Run("Should match case-insensitively in job order", func(t *testing.T) {
		matched := domain.MatchSkills([]string{"Go", "SQL", "Kubernetes"}, []string{"sql", "GO", "python"})
		assert.Equal(t, []string{"Go", "SQL"}, matched)
	})

	t.Run("Should return nil when nothing overlaps", func(t *testing.T) {
		assert.Nil(t, domain.MatchSkills([]string{"go"}, []string{"java"}))
	})

	t.Run("Should return nil when either side is empty", func(t *testing.T) {
		assert.Nil(t, domain.MatchSkills(nil, []string{"go"}))
		assert.Nil(t, domain.MatchSkills([]string{"go"}, nil))
	})
}

func TestJoinSkillList(t *testing.T) {
	assert.Equal(t, "go, sql", domain.JoinSkillList([]string{"go", "sql"}))
	assert.Equal(t, "", domain.JoinSkillList(nil))
}
