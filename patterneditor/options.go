package patterneditor

// LanguagePython is the rule language of filter patterns.
const LanguagePython = "python"

// Axis selects the terminal dimension a Dimension is relative to.
type Axis int

const (
	ViewportWidth Axis = iota
	ViewportHeight
)

// Dimension is a size relative to the terminal viewport.
type Dimension struct {
	Percent int
	Of      Axis
	// Min is the smallest size Resolve returns when the viewport is non-empty.
	Min int
}

// Resolve returns the size in cells for a viewport of width x height.
func (d Dimension) Resolve(width, height int) int {
	base := width
	if d.Of == ViewportHeight {
		base = height
	}
	if base <= 0 {
		return 0
	}
	n := base * d.Percent / 100
	if n < d.Min {
		n = d.Min
	}
	if n > base {
		n = base
	}
	return n
}

type MinimapOptions struct {
	Enabled bool
}

// Options is the construction-time options bag passed to an editing surface.
//
// Options are fixed; operators cannot change them. A surface receives a copy
// at mount time.
type Options struct {
	Language        string
	AutomaticLayout bool
	FontSize        int
	ReadOnly        bool
	Minimap         MinimapOptions

	Width  Dimension
	Height Dimension
}

// pinned returns o with the editing contract restored: the rule language,
// editable, no minimap.
func pinned(o Options) Options {
	o.Language = LanguagePython
	o.ReadOnly = false
	o.Minimap = MinimapOptions{Enabled: false}
	return o
}

// DefaultOptions returns the options every pattern editor mounts with.
func DefaultOptions() Options {
	return Options{
		Language:        LanguagePython,
		AutomaticLayout: true,
		FontSize:        16,
		ReadOnly:        false,
		Minimap:         MinimapOptions{Enabled: false},
		Width:           Dimension{Percent: 100, Of: ViewportWidth},
		Height:          Dimension{Percent: 30, Of: ViewportHeight, Min: 3},
	}
}
