package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

var hhmmPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// validatorInstance returns the shared validator with the hhmm tag
// registered. validator.Validate is safe for concurrent use.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// hhmm: 24-hour wall-clock time, e.g. "07:00" or "23:30"
		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return hhmmPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate enforces the caller contract on the four input records: enum
// membership, numeric ranges and time formats. The engine assumes inputs
// have passed here; out-of-range values reaching it are programming errors.
func Validate(p *PersonalInfo, d *DietPreferences, b *BodyAnalysis, w *WorkoutPreferences) error {
	v := validatorInstance()
	for _, rec := range []struct {
		name string
		val  any
	}{
		{"personal_info", p},
		{"diet_preferences", d},
		{"body_analysis", b},
		{"workout_preferences", w},
	} {
		if err := v.Struct(rec.val); err != nil {
			return fmt.Errorf("%s: %w", rec.name, err)
		}
	}
	if b.PregnancyStatus && b.PregnancyTrimester == 0 {
		return fmt.Errorf("body_analysis: pregnancy_trimester is required when pregnancy_status is set")
	}
	return nil
}

// ValidateProfile is the bundled-record form of Validate.
func ValidateProfile(pr *Profile) error {
	return Validate(&pr.Personal, &pr.Diet, &pr.Body, &pr.Workout)
}

// SleepHours derives nightly sleep duration in hours from a sleep/wake
// HH:MM pair, handling the wrap past midnight (sleep 23:00, wake 07:00 is
// eight hours). Both inputs must already satisfy the hhmm contract.
func SleepHours(wakeTime, sleepTime string) (float64, error) {
	wake, err := parseClockMinutes(wakeTime)
	if err != nil {
		return 0, fmt.Errorf("wake_time: %w", err)
	}
	sleep, err := parseClockMinutes(sleepTime)
	if err != nil {
		return 0, fmt.Errorf("sleep_time: %w", err)
	}
	diff := (wake - sleep + 24*60) % (24 * 60)
	return float64(diff) / 60, nil
}

// parseClockMinutes converts "HH:MM" to minutes past midnight.
func parseClockMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}
