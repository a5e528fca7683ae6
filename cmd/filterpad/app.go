package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/filterpad/filter"
	"github.com/iw2rmb/filterpad/internal/filewatch"
	"github.com/iw2rmb/filterpad/patterneditor"
)

type keyMap struct {
	Quit   key.Binding
	Reload key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		// ctrl+c is copy inside the editor.
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "done")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload from disk")),
	}
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit, k.Reload} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type stats struct {
	edits int
}

type appConfig struct {
	Filter  filter.Filter
	Surface patterneditor.Factory
	Watcher *filewatch.Watcher
	Logger  *slog.Logger
}

// app is the host: it owns the filter state and renders the pattern editor
// above a status line.
type app struct {
	state   *filter.State
	stats   *stats
	editor  patterneditor.Model
	watcher *filewatch.Watcher
	logger  *slog.Logger

	keys keyMap
	help help.Model

	pending *filter.Filter
	notice  string
	width   int

	statusStyle lipgloss.Style
	noticeStyle lipgloss.Style
}

func newApp(cfg appConfig) app {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	st := filter.NewState(cfg.Filter)
	s := &stats{}
	st.Subscribe(func(prev, next filter.Filter) {
		if prev.Pattern != next.Pattern {
			s.edits++
		}
	})

	a := app{
		state:   st,
		stats:   s,
		watcher: cfg.Watcher,
		logger:  cfg.Logger,
		keys:    defaultKeyMap(),
		help:    help.New(),

		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		noticeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
	a.editor = patterneditor.New(patterneditor.Config{
		Current:    st.Current,
		SetCurrent: st.Setter(),
		Surface:    cfg.Surface,
	})
	return a
}

func (a app) Init() tea.Cmd { return a.nextWatch() }

func (a app) nextWatch() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Next()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Reload):
			a.reload()
			return a, nil
		}

	case filewatch.ChangedMsg:
		a.onDiskChange(msg.Path)
		return a, a.nextWatch()

	case filewatch.ErrorMsg:
		a.notice = msg.Err.Error()
		return a, a.nextWatch()
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// onDiskChange stages the file's filter. A different filter replaces the
// current one right away; a newer revision of the same filter waits for an
// explicit reload so in-flight edits are not overwritten.
func (a *app) onDiskChange(path string) {
	f, err := readFilter(path)
	if err != nil {
		a.logger.Warn("reload failed", "path", path, "error", err)
		a.notice = err.Error()
		return
	}

	cur := a.state.Current()
	if f.Key() != cur.Key() {
		a.logger.Info("filter replaced on disk", "from", cur.ID, "to", f.ID)
		a.state.Set(filter.Value(f))
		a.editor = a.editor.Sync()
		a.pending = nil
		a.notice = "switched to " + describe(f)
		return
	}
	if f.Pattern == cur.Pattern {
		a.state.Set(filter.Value(f))
		a.pending = nil
		return
	}

	a.pending = &f
	a.notice = "changed on disk, " + a.keys.Reload.Help().Key + " to reload"
}

func (a *app) reload() {
	if a.pending == nil {
		return
	}
	a.state.Set(filter.Value(*a.pending))
	a.editor = a.editor.Remount()
	a.pending = nil
	a.notice = "reloaded"
}

func (a app) View() string {
	return a.editor.View() + "\n" + a.statusLine() + "\n" + a.help.View(a.keys)
}

func (a app) statusLine() string {
	cur := a.state.Current()
	parts := []string{
		describe(cur),
		fmt.Sprintf("%d chars", uniseg.GraphemeClusterCount(cur.Pattern)),
		fmt.Sprintf("%d edits", a.stats.edits),
	}
	if !cur.Enabled {
		parts = append(parts, "disabled")
	}
	status := strings.Join(parts, " · ")
	notice := a.notice
	if a.width > 0 {
		status = runewidth.Truncate(status, a.width, "…")
		room := a.width - runewidth.StringWidth(status) - 2
		if room <= 0 {
			notice = ""
		} else {
			notice = runewidth.Truncate(notice, room, "…")
		}
	}

	line := a.statusStyle.Render(status)
	if notice != "" {
		line += "  " + a.noticeStyle.Render(notice)
	}
	return line
}

func describe(f filter.Filter) string {
	id := runewidth.Truncate(f.ID, 8, "")
	if f.Name == "" {
		return id
	}
	return f.Name + " (" + id + ")"
}
