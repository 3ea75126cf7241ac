package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var keyAliases = map[string]string{
	"tags":           "tags",
	"tag":            "tags",
	"comment":        "comment",
	"comments":       "comment",
	"color":          "color",
	"max_tag_length": "max_tag_length",
	"max_tag_len":    "max_tag_length",
}

// Load reads one config file, decoding YAML, TOML, or JSON by extension.
// Unknown keys are errors so a typo never silently disables a tag.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (FileConfig, error) {
	var cfg FileConfig
	for key, value := range raw {
		canonical, ok := keyAliases[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		switch canonical {
		case "tags":
			list, err := expectStringList(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Tags = &list
		case "comment":
			list, err := expectLines(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Comments = &list
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return cfg, err
			}
			trimmed := strings.TrimSpace(str)
			cfg.Color = &trimmed
		case "max_tag_length":
			n, err := expectInt(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.MaxTagLength = &n
		}
	}
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// expectLines accepts a scalar string or a list of strings. Unlike tag
// lists, a scalar comment is one verbatim line and is never word-split.
func expectLines(value any, field string) ([]string, error) {
	if s, ok := value.(string); ok {
		return []string{s}, nil
	}
	return expectStringList(value, field)
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return splitList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	case []string:
		return append([]string(nil), v...), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// splitList breaks a comma or whitespace separated value into entries.
func splitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
