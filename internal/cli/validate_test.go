package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitai/plancheck/internal/engine"
)

const maintenanceProfile = `{
  "personal_info": {
    "age": 30,
    "gender": "male",
    "wake_time": "07:00",
    "sleep_time": "23:00",
    "occupation_type": "desk_job"
  },
  "diet_preferences": {
    "diet_type": "balanced",
    "breakfast_enabled": true,
    "lunch_enabled": true,
    "dinner_enabled": true,
    "habits": {"drinks_enough_water": true, "eats_regular_meals": true}
  },
  "body_analysis": {
    "height_cm": 175,
    "current_weight_kg": 80,
    "target_weight_kg": 80,
    "target_timeline_weeks": 12,
    "body_fat_percentage": 20
  },
  "workout_preferences": {
    "workout_frequency_per_week": 3,
    "time_preference_minutes": 60,
    "intensity": "intermediate",
    "workout_types": ["strength"],
    "primary_goals": ["general_fitness"],
    "activity_level": "moderate",
    "experience_years": 2
  }
}`

const pregnancyDeficitProfile = `{
  "personal_info": {
    "age": 30,
    "gender": "female",
    "wake_time": "07:00",
    "sleep_time": "23:00",
    "occupation_type": "desk_job"
  },
  "diet_preferences": {
    "diet_type": "balanced",
    "breakfast_enabled": true,
    "lunch_enabled": true,
    "dinner_enabled": true,
    "habits": {}
  },
  "body_analysis": {
    "height_cm": 165,
    "current_weight_kg": 70,
    "target_weight_kg": 65,
    "target_timeline_weeks": 10,
    "body_fat_percentage": 25,
    "pregnancy_status": true,
    "pregnancy_trimester": 2
  },
  "workout_preferences": {
    "workout_frequency_per_week": 2,
    "time_preference_minutes": 30,
    "intensity": "beginner",
    "workout_types": ["yoga"],
    "primary_goals": ["general_fitness"],
    "activity_level": "light",
    "experience_years": 1
  }
}`

// writeProfile drops content into a temp file and returns its path.
func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI executes the root command with args and returns combined output.
// The shared json flag is reset afterwards so tests stay independent.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		validateJSON = false
		_ = validateCmd.Flags().Set("json", "false")
	}()
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateCommand_Proceeds(t *testing.T) {
	path := writeProfile(t, maintenanceProfile)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, ExitCode(err))
	assert.Contains(t, out, "✓ Plan can proceed")
	assert.Contains(t, out, "Target 2310 kcal")
}

func TestValidateCommand_Blocked(t *testing.T) {
	path := writeProfile(t, pregnancyDeficitProfile)

	out, err := runCLI(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitBlocked, ExitCode(err))
	assert.Contains(t, out, "✗ Plan blocked")
	assert.Contains(t, out, "UNSAFE_PREGNANCY_BREASTFEEDING")
}

func TestValidateCommand_JSON(t *testing.T) {
	path := writeProfile(t, maintenanceProfile)

	out, err := runCLI(t, "validate", path, "--json")
	require.NoError(t, err)

	var r engine.Results
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.CanProceed)
	assert.Equal(t, 2310, r.Metrics.TargetCalories)
	assert.Equal(t, 1749, r.Metrics.BMR)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "validate", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, ExitInvalidProfile, ExitCode(err))
}

func TestValidateCommand_ContractViolation(t *testing.T) {
	path := writeProfile(t, `{"personal_info": {"age": 7}}`)

	_, err := runCLI(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidProfile, ExitCode(err))
}
