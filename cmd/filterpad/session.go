package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/filterpad/filter"
	"github.com/iw2rmb/filterpad/internal/filewatch"
	"github.com/iw2rmb/filterpad/patterneditor"
)

// session runs the editor over f and prints the resulting filter. When
// watchPath is set, on-disk changes to it are offered as reloads.
func session(cmd *cobra.Command, f filter.Filter, watchPath string) error {
	logger, closeLog, err := newLogger(viper.GetString("log.file"), viper.GetString("log.level"))
	if err != nil {
		return err
	}
	defer closeLog()

	wrap, err := parseWrap(viper.GetString("editor.wrap"))
	if err != nil {
		return err
	}

	var w *filewatch.Watcher
	if watchPath != "" {
		w, err = filewatch.Watch(watchPath, logger)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	logger.Info("editing filter", "id", f.ID, "name", f.Name, "watch", watchPath)

	a := newApp(appConfig{
		Filter:  f,
		Surface: patterneditor.Flourish(patterneditor.WithWrapMode(wrap)),
		Watcher: w,
		Logger:  logger,
	})
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrRunProgram, err)
	}

	final := a.state.Current()
	logger.Info("editor closed", "id", final.ID, "edits", a.stats.edits)
	if err := filter.Encode(cmd.OutOrStdout(), final); err != nil {
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	return nil
}
