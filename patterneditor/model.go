package patterneditor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/filterpad/filter"
)

// Config wires a Model to its host.
type Config struct {
	// Current returns the host's current filter. It is read at mount time and
	// on every change event.
	Current func() filter.Filter
	// SetCurrent replaces the host's current filter.
	SetCurrent filter.Setter

	// Surface builds the editing surface. Nil selects Flourish().
	Surface Factory
	// Options overrides the layout fields of DefaultOptions. Language,
	// ReadOnly and Minimap are always the defaults. Nil selects
	// DefaultOptions().
	Options *Options
}

// Model is a Bubble Tea component rendering one editing surface bound to the
// host filter's Pattern.
type Model struct {
	cfg  Config
	opts Options

	surface    Surface
	mountedKey string
	// written is the last pattern this binding seeded or wrote.
	written *string

	winW, winH int
}

func New(cfg Config) Model {
	if cfg.Current == nil {
		cfg.Current = func() filter.Filter { return filter.Filter{} }
	}
	if cfg.SetCurrent == nil {
		cfg.SetCurrent = func(filter.Action) {}
	}
	if cfg.Surface == nil {
		cfg.Surface = Flourish()
	}

	m := Model{cfg: cfg, opts: DefaultOptions()}
	if cfg.Options != nil {
		m.opts = pinned(*cfg.Options)
	}
	return m.mount()
}

// Options returns the options the surface was mounted with.
func (m Model) Options() Options { return m.opts }

// Surface returns the mounted surface.
func (m Model) Surface() Surface { return m.surface }

// MountedKey is the key of the filter the surface was seeded from.
func (m Model) MountedKey() string { return m.mountedKey }

func (m Model) Init() tea.Cmd { return nil }

// Sync remounts the surface when the host's current filter is a different
// filter (by Key) than the one it was seeded from. Pattern changes of the
// same filter never re-seed the buffer.
//
// A filter without a key has no identity to compare, so any pattern the
// binding did not seed or write itself remounts.
func (m Model) Sync() Model {
	cur := m.cfg.Current()
	if cur.Key() != m.mountedKey {
		return m.mount()
	}
	if cur.Key() == "" && cur.Pattern != *m.written {
		return m.mount()
	}
	return m
}

// Remount discards the surface buffer and seeds a new one from the host's
// current filter.
func (m Model) Remount() Model { return m.mount() }

// SetSize sizes the surface directly, bypassing automatic layout.
func (m Model) SetSize(width, height int) Model {
	m.surface = m.surface.SetSize(width, height)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m = m.Sync()

	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.winW, m.winH = ws.Width, ws.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.surface, cmd = m.surface.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.surface.View() }

func (m Model) mount() Model {
	cur := m.cfg.Current()
	written := cur.InitialText()
	m.written = &written
	m.surface = m.cfg.Surface(Mount{
		Options:         m.opts,
		DefaultLanguage: m.opts.Language,
		DefaultValue:    written,
		OnChange:        changeHandler(m.cfg.Current, m.cfg.SetCurrent, m.written),
	})
	m.mountedKey = cur.Key()
	m.layout()
	return m
}

func (m *Model) layout() {
	if !m.opts.AutomaticLayout || m.winW <= 0 || m.winH <= 0 {
		return
	}
	w := m.opts.Width.Resolve(m.winW, m.winH)
	h := m.opts.Height.Resolve(m.winW, m.winH)
	m.surface = m.surface.SetSize(w, h)
}

// changeHandler maps a surface change into exactly one SetCurrent call
// carrying the current filter with Pattern replaced. The written text is
// recorded in written.
func changeHandler(current func() filter.Filter, set filter.Setter, written *string) ChangeFunc {
	return func(text string, ok bool) {
		if !ok {
			text = ""
		}
		*written = text
		set(filter.Value(current().WithPattern(text)))
	}
}
