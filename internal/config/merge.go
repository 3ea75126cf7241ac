package config

import "strings"

// Merge applies layers over base in order; a later layer's present keys
// win. Callers pass file, environment, and command-line layers in that
// order.
func Merge(base Settings, layers ...FileConfig) Settings {
	out := base
	for _, layer := range layers {
		out.Tags = resolveStrings(out.Tags, layer.Tags)
		out.Comments = resolveStrings(out.Comments, layer.Comments)
		out.Color = resolveAndTrim(out.Color, layer.Color)
		out.MaxTagLength = resolveInt(out.MaxTagLength, layer.MaxTagLength)
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func resolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			if len(*v) == 0 {
				result = []string{}
				continue
			}
			result = cloneStrings(*v)
		}
	}
	return result
}

func resolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveAndTrim(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return strings.TrimSpace(result)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
