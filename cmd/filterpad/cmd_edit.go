package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/filterpad/filter"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit the pattern of a filter stored in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().Bool("watch", false, "offer to reload the filter when the file changes on disk")
	viper.BindPFlag("watch", editCmd.Flags().Lookup("watch"))

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := readFilter(path)
	if err != nil {
		return err
	}

	watch := ""
	if viper.GetBool("watch") {
		watch = path
	}
	return session(cmd, f, watch)
}

func readFilter(path string) (filter.Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %w", ErrOpenFilter, err)
	}
	defer file.Close()

	f, err := filter.Decode(file)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %s: %w", ErrOpenFilter, path, err)
	}
	return f, nil
}
