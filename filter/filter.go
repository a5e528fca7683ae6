package filter

import "github.com/google/uuid"

// Filter is a traffic-matching rule.
//
// Pattern holds the rule source text. Editors read and write Pattern only;
// every other field is carried through unchanged.
type Filter struct {
	ID      string `yaml:"id,omitempty"`
	Name    string `yaml:"name,omitempty"`
	Pattern string `yaml:"pattern"`
	Enabled bool   `yaml:"enabled"`

	// Subscribers names the services that receive traffic matched by the rule.
	Subscribers []string          `yaml:"subscribers,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
}

// New returns an enabled filter with a fresh random ID and an empty pattern.
func New(name string) Filter {
	return Filter{
		ID:      uuid.NewString(),
		Name:    name,
		Enabled: true,
	}
}

// WithPattern returns a shallow copy of f with only Pattern replaced.
//
// Subscribers and Labels are shared with f, not cloned.
func (f Filter) WithPattern(pattern string) Filter {
	next := f
	next.Pattern = pattern
	return next
}

// InitialText is the text an editing surface is seeded with.
func (f Filter) InitialText() string { return f.Pattern }

// Key identifies the filter for editor mounting: two values with the same key
// are edits of the same filter.
func (f Filter) Key() string { return f.ID }
