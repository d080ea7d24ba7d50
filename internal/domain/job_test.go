package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobtrack-backend/internal/domain"
)

func TestProjectStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)

	t.Run("Should stay active without a deadline", func(t *testing.T) {
		job := &domain.Job{}
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusActive, job.Status)
	})

	t.Run("Should stay active on the deadline day", func(t *testing.T) {
		deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		job := &domain.Job{ApplicationDeadline: &deadline}
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusActive, job.Status)
	})

	t.Run("Should go inactive the day after the deadline", func(t *testing.T) {
		deadline := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
		job := &domain.Job{ApplicationDeadline: &deadline}
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusInactive, job.Status)
	})

	t.Run("Should compare dates, not clock times", func(t *testing.T) {
		// Deadline later today by date even though the clock time already passed.
		deadline := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
		job := &domain.Job{ApplicationDeadline: &deadline}
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusActive, job.Status)
	})

	t.Run("Should overwrite a stale stored status", func(t *testing.T) {
		deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		job := &domain.Job{Status: domain.JobStatusActive, ApplicationDeadline: &deadline}
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusInactive, job.Status)

		// Idempotent on repeated projection.
		job.ProjectStatus(now)
		assert.Equal(t, domain.JobStatusInactive, job.Status)
	})
}
