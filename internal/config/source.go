package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Source holds one parsed configuration tree.
type Source struct {
	tree map[string]any
}

// Load reads and parses a TOML configuration file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses TOML configuration data.
func Parse(data []byte) (*Source, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &Source{tree: tree}, nil
}

// Bool returns the boolean at a dotted path.
func (s *Source) Bool(path string) (bool, bool) {
	v, ok := s.lookup(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// StringMap returns the string-to-string table at a dotted path.
// Non-string values within the table are dropped.
func (s *Source) StringMap(path string) (map[string]string, bool) {
	v, ok := s.lookup(path)
	if !ok {
		return nil, false
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		if str, ok := val.(string); ok {
			out[k] = str
		}
	}
	return out, true
}

// lookup walks the tree along a dotted path.
func (s *Source) lookup(path string) (any, bool) {
	if s == nil || s.tree == nil {
		return nil, false
	}
	var node any = s.tree
	for _, part := range strings.Split(path, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}
