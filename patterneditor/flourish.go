package patterneditor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/flourish/editor"
)

type flourishConfig struct {
	highlighters map[string]editor.Highlighter
	wrap         editor.WrapMode
	style        editor.Style
	styleSet     bool
}

// FlourishOption customizes surfaces built by Flourish.
type FlourishOption func(*flourishConfig)

// WithHighlighter registers h for patterns written in lang.
func WithHighlighter(lang string, h editor.Highlighter) FlourishOption {
	return func(c *flourishConfig) {
		if c.highlighters == nil {
			c.highlighters = make(map[string]editor.Highlighter)
		}
		c.highlighters[lang] = h
	}
}

func WithWrapMode(mode editor.WrapMode) FlourishOption {
	return func(c *flourishConfig) { c.wrap = mode }
}

func WithStyle(style editor.Style) FlourishOption {
	return func(c *flourishConfig) {
		c.style = style
		c.styleSet = true
	}
}

// Flourish returns a Factory backed by the flourish editor component.
//
// FontSize and Minimap have no terminal rendition and are not forwarded.
func Flourish(opts ...FlourishOption) Factory {
	var fc flourishConfig
	for _, o := range opts {
		o(&fc)
	}
	if !fc.styleSet {
		fc.style = editor.DefaultStyle()
	}

	return func(mt Mount) Surface {
		gate := &changeGate{last: mt.DefaultValue, onChange: mt.OnChange}
		ed := editor.New(editor.Config{
			Text:        mt.DefaultValue,
			Gutter:      editor.LineNumberGutter(),
			Style:       fc.style,
			ReadOnly:    mt.Options.ReadOnly,
			WrapMode:    fc.wrap,
			Highlighter: fc.highlighters[mt.DefaultLanguage],
			OnChange:    gate.observe,
		})
		return flourishSurface{ed: ed}
	}
}

// changeGate forwards flourish change events that altered the text. Flourish
// also reports cursor and selection moves.
type changeGate struct {
	last     string
	onChange ChangeFunc
}

func (g *changeGate) observe(ev editor.ChangeEvent) {
	if ev.Text == g.last {
		return
	}
	g.last = ev.Text
	if g.onChange != nil {
		g.onChange(ev.Text, true)
	}
}

type flourishSurface struct {
	ed editor.Model
}

func (s flourishSurface) Update(msg tea.Msg) (Surface, tea.Cmd) {
	var cmd tea.Cmd
	s.ed, cmd = s.ed.Update(msg)
	return s, cmd
}

func (s flourishSurface) View() string { return s.ed.View() }

func (s flourishSurface) SetSize(width, height int) Surface {
	s.ed = s.ed.SetSize(width, height)
	return s
}

func (s flourishSurface) Text() string { return s.ed.Buffer().Text() }
