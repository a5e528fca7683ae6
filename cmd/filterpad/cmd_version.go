package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/filterpad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the filterpad version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), cmd.ErrOrStderr(), filterpad.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion writes the tag form of v, warning on stderr when the build
// carries a non-SemVer version.
func printVersion(out, errOut io.Writer, v string) {
	fmt.Fprintln(out, filterpad.Tag(v))
	if !filterpad.IsSemver(v) {
		fmt.Fprintf(errOut, "warning: build version %q is not SemVer\n", v)
	}
}
