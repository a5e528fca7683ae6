package patterneditor

import tea "github.com/charmbracelet/bubbletea"

// Surface is a text-editing component the binding renders and feeds messages
// to. Implementations own their text buffer.
type Surface interface {
	Update(msg tea.Msg) (Surface, tea.Cmd)
	View() string
	SetSize(width, height int) Surface
	Text() string
}

// ChangeFunc receives the surface text after a buffer mutation. ok is false
// when the surface reports no value (a cleared buffer).
type ChangeFunc func(text string, ok bool)

// Mount is everything a surface is constructed with.
type Mount struct {
	Options         Options
	DefaultLanguage string
	DefaultValue    string
	OnChange        ChangeFunc
}

// Factory constructs a surface. It is called once per mount.
type Factory func(Mount) Surface
