package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a profile file (JSON or YAML, chosen by extension), applies
// PLANCHECK_-prefixed environment overrides, and validates the result.
// Priority: environment variables > file values.
//
// Env keys map dot-separated paths with double underscores, e.g.
// PLANCHECK_BODY_ANALYSIS__STRESS_LEVEL=high overrides
// body_analysis.stress_level.
func Load(path string) (*Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("profile file: %w", err)
	}

	k := koanf.New(".")

	parser, err := parserForExt(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}

	// Environment overrides (highest priority)
	if err := k.Load(env.Provider("PLANCHECK_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var pr Profile
	if err := k.Unmarshal("", &pr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	if err := ValidateProfile(&pr); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &pr, nil
}

// parserForExt picks the koanf parser matching a profile file extension.
func parserForExt(ext string) (koanf.Parser, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported profile format %q (want .json, .yaml or .yml)", ext)
	}
}

// envTransform converts environment variable names to config keys.
// Example: PLANCHECK_BODY_ANALYSIS__STRESS_LEVEL -> body_analysis.stress_level
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "PLANCHECK_"))
	return strings.ReplaceAll(s, "__", ".")
}
