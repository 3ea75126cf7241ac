package tagset

import "fmt"

// DefaultMaxName bounds tag and method name length. This is a guard
// against a malformed method line, not a semantic limit.
const DefaultMaxName = 80

// Definition は起動時に宣言された 1 つのタグを表す
type Definition struct {
	Name   string
	Method string
}

// Registry is the ordered set of active tags plus the leading comment
// lines. Order is declaration order: when two definitions share a name the
// first one wins, so lookup never deduplicates.
type Registry struct {
	defs     []Definition
	comments []string
	maxName  int
}

// Build parses the startup token stream. Each token is either a tag name,
// tag:method, or -comment followed by a verbatim comment line. Built once
// before scanning begins and read-only afterwards.
func Build(tokens []string, maxName int) (*Registry, error) {
	if maxName <= 0 {
		maxName = DefaultMaxName
	}
	r := &Registry{maxName: maxName}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "-comment" {
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("-comment requires a value")
			}
			i++
			r.comments = append(r.comments, tokens[i])
			continue
		}
		if err := r.add(tok); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(token string) error {
	name, rest := splitIdent(token)
	if name == "" {
		return fmt.Errorf("bad tag %q", token)
	}
	if len(name) > r.maxName {
		return fmt.Errorf("tag %q exceeds %d characters", name, r.maxName)
	}
	def := Definition{Name: name}
	if rest != "" {
		if rest[0] != ':' {
			return fmt.Errorf("bad tag %q", token)
		}
		method, tail := splitIdent(rest[1:])
		if method == "" || tail != "" {
			return fmt.Errorf("bad method in %q", token)
		}
		if len(method) > r.maxName {
			return fmt.Errorf("method in %q exceeds %d characters", token, r.maxName)
		}
		def.Method = method
	}
	r.defs = append(r.defs, def)
	return nil
}

// Lookup returns the first definition whose name matches exactly.
func (r *Registry) Lookup(name string) (Definition, bool) {
	for _, d := range r.defs {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

func (r *Registry) Len() int { return len(r.defs) }

// Comments returns the leading comment lines in declaration order.
func (r *Registry) Comments() []string { return r.comments }

// MaxNameLen is the configured identifier length bound, shared with the
// scanner's tag recognition.
func (r *Registry) MaxNameLen() int { return r.maxName }

func splitIdent(s string) (ident, rest string) {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isIdentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_' || c == '$' || c == '.'
}
