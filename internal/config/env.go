package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FromEnv builds a configuration layer from JSDEV_* environment variables.
// The getenv indirection keeps tests hermetic.
func FromEnv(getenv func(string) string) (FileConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg FileConfig
	var errs []error

	if raw := strings.TrimSpace(getenv("JSDEV_TAGS")); raw != "" {
		list := splitList(raw)
		cfg.Tags = &list
	}
	if raw := getenv("JSDEV_COMMENT"); strings.TrimSpace(raw) != "" {
		list := []string{raw}
		cfg.Comments = &list
	}
	if raw := strings.TrimSpace(getenv("JSDEV_COLOR")); raw != "" {
		value := raw
		cfg.Color = &value
	}
	if raw := strings.TrimSpace(getenv("JSDEV_MAX_TAG_LENGTH")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid JSDEV_MAX_TAG_LENGTH: %q", raw))
		} else {
			cfg.MaxTagLength = &n
		}
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
