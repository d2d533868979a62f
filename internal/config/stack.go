package config

// Stack layers configuration sources; lookups try each layer in order
// and the first hit wins. Typical use is a session-specific source over
// the shared preset.
type Stack struct {
	layers []*Source
}

// NewStack creates a stack from highest priority to lowest. Nil sources
// are skipped.
func NewStack(layers ...*Source) *Stack {
	s := &Stack{}
	for _, l := range layers {
		if l != nil {
			s.layers = append(s.layers, l)
		}
	}
	return s
}

// Bool returns the boolean at a dotted path from the first layer that
// defines it.
func (s *Stack) Bool(path string) (bool, bool) {
	for _, l := range s.layers {
		if v, ok := l.Bool(path); ok {
			return v, true
		}
	}
	return false, false
}

// StringMap returns the table at a dotted path from the first layer
// that defines it. Layers are not merged; the table is taken wholesale.
func (s *Stack) StringMap(path string) (map[string]string, bool) {
	for _, l := range s.layers {
		if v, ok := l.StringMap(path); ok {
			return v, true
		}
	}
	return nil, false
}
