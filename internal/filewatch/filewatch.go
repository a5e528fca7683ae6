// Package filewatch reports on-disk changes of a single file as Bubble Tea
// messages.
package filewatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

var ErrWatch = errors.New("watch file")

// ChangedMsg is delivered after the watched file was written or created
// (including a rename-and-replace save).
type ChangedMsg struct {
	Path string
}

// ErrorMsg carries a watcher error.
type ErrorMsg struct {
	Err error
}

// Watcher watches one file. The parent directory is watched so that editors
// which save through rename-and-replace are still observed.
type Watcher struct {
	path   string
	logger *slog.Logger

	w      *fsnotify.Watcher
	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

// Watch starts watching path. A nil logger discards log output.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}

	w := &Watcher{
		path:   abs,
		logger: logger,
		w:      fw,
		events: make(chan tea.Msg, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Next returns a command that waits for the next change or error. It returns
// nil once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.events:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("filter file changed", "path", ev.Name, "op", ev.Op.String())
			w.send(ChangedMsg{Path: w.path})
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
			w.send(ErrorMsg{Err: fmt.Errorf("%w: %w", ErrWatch, err)})
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	// A rename of the path moves the file away; a replacing save follows up
	// with Create.
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// send coalesces: while an undelivered message is pending, newer change
// notifications are dropped.
func (w *Watcher) send(msg tea.Msg) {
	select {
	case w.events <- msg:
	case <-w.done:
	default:
	}
}
