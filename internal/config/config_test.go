package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("07:00")
	require.NoError(t, err)
	assert.Equal(t, 7*60, minutes)

	minutes, err = parseClock("08:15")
	require.NoError(t, err)
	assert.Equal(t, 8*60+15, minutes)

	_, err = parseClock("25:00")
	assert.Error(t, err)
	_, err = parseClock("0700")
	assert.Error(t, err)
}

func TestParseLevelThresholds(t *testing.T) {
	thresholds, err := parseLevelThresholds("300:3, 0:1,100:2")
	require.NoError(t, err)
	require.Len(t, thresholds, 3)

	// sorted ascending by minimum XP regardless of input order
	assert.Equal(t, int64(0), thresholds[0].MinXp)
	assert.Equal(t, 1, thresholds[0].Level)
	assert.Equal(t, int64(300), thresholds[2].MinXp)
	assert.Equal(t, 3, thresholds[2].Level)

	_, err = parseLevelThresholds("abc")
	assert.Error(t, err)
	_, err = parseLevelThresholds("100:x")
	assert.Error(t, err)
}

func TestValidate_WindowOrdering(t *testing.T) {
	cfg := &Config{
		Database:     DatabaseConfig{Password: "secret"},
		JWT:          JWTConfig{Secret: "secret"},
		App:          AppConfig{Timezone: "Asia/Makassar"},
		Attendance:   AttendanceConfig{WindowStart: "08:15", WindowEnd: "07:00", MaxScore: 100},
		Gamification: GamificationConfig{LevelThresholds: []LevelThreshold{{MinXp: 0, Level: 1}}},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCORE_WINDOW_END")
}

func TestValidate_Timezone(t *testing.T) {
	cfg := &Config{
		Database:     DatabaseConfig{Password: "secret"},
		JWT:          JWTConfig{Secret: "secret"},
		App:          AppConfig{Timezone: "Not/AZone"},
		Attendance:   AttendanceConfig{WindowStart: "07:00", WindowEnd: "08:15", MaxScore: 100},
		Gamification: GamificationConfig{LevelThresholds: []LevelThreshold{{MinXp: 0, Level: 1}}},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_TIMEZONE")
}
