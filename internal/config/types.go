package config

import (
	"fmt"

	"github.com/phyten/jsdev/internal/tagset"
)

// FileConfig mirrors one configuration layer with pointer fields so an
// absent key is distinguishable from a zero value.
type FileConfig struct {
	Tags         *[]string `yaml:"tags" toml:"tags" json:"tags"`
	Comments     *[]string `yaml:"comment" toml:"comment" json:"comment"`
	Color        *string   `yaml:"color" toml:"color" json:"color"`
	MaxTagLength *int      `yaml:"max_tag_length" toml:"max_tag_length" json:"max_tag_length"`
}

// Settings は全レイヤをマージした後の確定値
type Settings struct {
	Tags         []string
	Comments     []string
	Color        string
	MaxTagLength int
}

func Defaults() Settings {
	return Settings{
		Color:        "auto",
		MaxTagLength: tagset.DefaultMaxName,
	}
}

// Normalize validates the merged settings.
func (s Settings) Normalize() (Settings, error) {
	if s.MaxTagLength < 1 {
		return s, fmt.Errorf("max_tag_length must be >= 1, got %d", s.MaxTagLength)
	}
	return s, nil
}

// Tokens flattens the settings back into the startup token stream consumed
// by tagset.Build, preserving declaration order.
func (s Settings) Tokens() []string {
	tokens := make([]string, 0, len(s.Tags)+2*len(s.Comments))
	for _, c := range s.Comments {
		tokens = append(tokens, "-comment", c)
	}
	tokens = append(tokens, s.Tags...)
	return tokens
}
