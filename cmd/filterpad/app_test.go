package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/flourish/editor"

	"github.com/iw2rmb/filterpad"
	"github.com/iw2rmb/filterpad/filter"
	"github.com/iw2rmb/filterpad/internal/filewatch"
	"github.com/iw2rmb/filterpad/patterneditor"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sized(t *testing.T, f filter.Filter) app {
	t.Helper()
	a := newApp(appConfig{Filter: f})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m.(app)
}

func send(a app, msgs ...tea.Msg) app {
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(app)
	}
	return a
}

func writeFilter(t *testing.T, path string, f filter.Filter) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, filter.Encode(&buf, f))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestApp_TypingUpdatesHostState(t *testing.T) {
	a := sized(t, filter.Filter{ID: "abc", Name: "login", Pattern: "ab", Enabled: true})

	a = send(a,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")},
	)

	assert.Equal(t, filter.Filter{ID: "abc", Name: "login", Pattern: "abc", Enabled: true}, a.state.Current())
	assert.Equal(t, 1, a.stats.edits)

	view := a.View()
	assert.Contains(t, view, "login (abc) · 3 chars · 1 edits")
	assert.Contains(t, view, "ctrl+q")
}

func TestApp_QuitKey(t *testing.T) {
	a := sized(t, filter.Filter{ID: "1"})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_SameFilterChangedOnDiskWaitsForReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	a := sized(t, filter.Filter{ID: "1", Pattern: "mine"})

	writeFilter(t, path, filter.Filter{ID: "1", Pattern: "theirs", Enabled: true})
	a = send(a, filewatch.ChangedMsg{Path: path})

	require.NotNil(t, a.pending)
	assert.Equal(t, "mine", a.state.Current().Pattern)
	assert.Contains(t, a.View(), "changed on disk")

	a = send(a, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, a.pending)
	assert.Equal(t, filter.Filter{ID: "1", Pattern: "theirs", Enabled: true}, a.state.Current())
	assert.Equal(t, "theirs", a.editor.Surface().Text())
}

func TestApp_OtherFilterOnDiskSwitchesImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	a := sized(t, filter.Filter{ID: "1", Pattern: "mine"})

	writeFilter(t, path, filter.Filter{ID: "2", Name: "other", Pattern: "new"})
	a = send(a, filewatch.ChangedMsg{Path: path})

	assert.Nil(t, a.pending)
	assert.Equal(t, "2", a.editor.MountedKey())
	assert.Equal(t, "new", a.editor.Surface().Text())
	assert.Contains(t, a.View(), "switched to other (2)")
}

func TestApp_ReloadWithoutPendingIsNoop(t *testing.T) {
	a := sized(t, filter.Filter{ID: "1", Pattern: "mine"})

	a = send(a, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, "mine", a.state.Current().Pattern)
	assert.Empty(t, a.notice)
}

func TestApp_BrokenFileOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: [oops"), 0o644))
	a := sized(t, filter.Filter{ID: "1", Pattern: "mine"})

	a = send(a, filewatch.ChangedMsg{Path: path})

	assert.Contains(t, a.notice, ErrOpenFilter.Error())
	assert.Equal(t, "mine", a.state.Current().Pattern)
}

func TestStatusLine_Truncates(t *testing.T) {
	a := newApp(appConfig{Filter: filter.Filter{ID: "0123456789abcdef", Name: strings.Repeat("n", 40)}})
	a = send(a, tea.WindowSizeMsg{Width: 20, Height: 10})
	a.notice = "something long happened"

	line := a.statusLine()
	assert.LessOrEqual(t, lipgloss.Width(line), 20)
	assert.True(t, strings.HasPrefix(line, "nnnn"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "login (01234567)", describe(filter.Filter{ID: "0123456789abcdef", Name: "login"}))
	assert.Equal(t, "abc", describe(filter.Filter{ID: "abc"}))

	got := describe(filter.Filter{ID: "ééééééééééé"})
	assert.Equal(t, "éééééééé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestParseWrap(t *testing.T) {
	cases := []struct {
		in   string
		want editor.WrapMode
	}{
		{in: "", want: editor.WrapNone},
		{in: "none", want: editor.WrapNone},
		{in: "Word", want: editor.WrapWord},
		{in: "grapheme", want: editor.WrapGrapheme},
	}
	for _, tc := range cases {
		got, err := parseWrap(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseWrap("soft")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewLogger(t *testing.T) {
	_, _, err := newLogger("", "loud")
	assert.ErrorIs(t, err, ErrConfig)

	path := filepath.Join(t.TempDir(), "filterpad.log")
	logger, closeLog, err := newLogger(path, "debug")
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello k=v")
}

func TestReadFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	writeFilter(t, path, filter.Filter{ID: "9", Pattern: "return True", Enabled: true})

	f, err := readFilter(path)
	require.NoError(t, err)
	assert.Equal(t, filter.Filter{ID: "9", Pattern: "return True", Enabled: true}, f)

	_, err = readFilter(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrOpenFilter)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, filterpad.VersionTag()+"\n", out.String())
}

func TestPrintVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	printVersion(&out, &errOut, "1.4.0")
	assert.Equal(t, "v1.4.0\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	printVersion(&out, &errOut, "dev")
	assert.Equal(t, "vdev\n", out.String())
	assert.Contains(t, errOut.String(), `"dev" is not SemVer`)
}

func TestStarterFilter(t *testing.T) {
	f := starterFilter(nil)

	_, err := uuid.Parse(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "untitled", f.Name)
	assert.Equal(t, patterneditor.Template, f.Pattern)
	assert.True(t, f.Enabled)

	named := starterFilter([]string{"register"})
	assert.Equal(t, "register", named.Name)
	assert.NotEqual(t, f.ID, named.ID)
}
