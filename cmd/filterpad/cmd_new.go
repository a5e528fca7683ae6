package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/filterpad/filter"
	"github.com/iw2rmb/filterpad/patterneditor"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Author a new filter starting from the template rule",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return session(cmd, starterFilter(args), "")
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

// starterFilter is a fresh filter named by args[0] ("untitled" by default),
// seeded with the template rule.
func starterFilter(args []string) filter.Filter {
	name := "untitled"
	if len(args) == 1 && args[0] != "" {
		name = args[0]
	}
	return filter.New(name).WithPattern(patterneditor.Template)
}
