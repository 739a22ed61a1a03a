package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("EXPORT_RATE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port, "unparsable values fall back to the default")
	assert.Equal(t, 10, cfg.RateLimit.ExportRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.ExportWindow)
	assert.Equal(t, "plan-reports", cfg.Storage.Bucket)
	assert.Equal(t, valueobject.ActivityWeightShareOfParent, cfg.Planning.ActivityWeightShare)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ENABLED", "0")
	t.Setenv("PLAN_SUMMARY_TTL", "90s")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("STORAGE_BUCKET", "archive")
	t.Setenv("PLAN_REVIEW_INBOX", "review@moh.gov.et")
	t.Setenv("EMAIL_WORKER_POLL_INTERVAL", "not-a-duration")
	t.Setenv("WEIGHT_TOLERANCE", "0.5")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Redis.SummaryTTL)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "archive", cfg.Storage.Bucket)
	assert.Equal(t, "review@moh.gov.et", cfg.Email.ReviewInbox)
	assert.Equal(t, 5*time.Second, cfg.Email.PollInterval)
	assert.Equal(t, 0.5, cfg.Planning.WeightTolerance)
}

func TestPlanningConfigRules(t *testing.T) {
	t.Run("zero values keep the built-in rules", func(t *testing.T) {
		assert.Equal(t, valueobject.DefaultPlanningRules(), PlanningConfig{}.Rules())
	})

	t.Run("overrides", func(t *testing.T) {
		rules := PlanningConfig{
			ActivityWeightShare: 0.6,
			MeasureWeightShare:  0.4,
			WeightTolerance:     0.05,
			DefaultImplementor:  "Regional Health Bureau",
		}.Rules()

		assert.True(t, rules.ActivityWeightShare.Equal(decimal.RequireFromString("0.6")))
		assert.True(t, rules.MeasureWeightShare.Equal(decimal.RequireFromString("0.4")))
		assert.True(t, rules.WeightTolerance.Equal(decimal.RequireFromString("0.05")))
		assert.Equal(t, "Regional Health Bureau", rules.DefaultImplementor)
		assert.True(t, rules.InitiativeWeightShare.Equal(decimal.NewFromInt(1)))
	})
}
