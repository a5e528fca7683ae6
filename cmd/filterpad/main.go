package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/flourish/editor"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "filterpad",
	Short: "Edit traffic filter patterns in the terminal",
	Long: `filterpad opens a traffic filter's pattern in a full-screen editor.

The edited filter is printed as YAML when the editor exits (ctrl+q).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("wrap", "none", "line wrapping (none, word, grapheme)")

	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("editor.wrap", rootCmd.PersistentFlags().Lookup("wrap"))
}

func initConfig() error {
	viper.SetEnvPrefix("FILTERPAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// newLogger builds the process logger. The terminal belongs to the editor,
// so logs are discarded unless a log file is configured.
func newLogger(path, level string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("%w: log level %q", ErrConfig, level)
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLogFile, err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f.Close, nil
}

func parseWrap(s string) (editor.WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return editor.WrapNone, nil
	case "word":
		return editor.WrapWord, nil
	case "grapheme":
		return editor.WrapGrapheme, nil
	default:
		return editor.WrapNone, fmt.Errorf("%w: unknown wrap mode %q", ErrConfig, s)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
