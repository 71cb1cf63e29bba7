package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellosrv/pkg/style"
	"github.com/yeisme/hellosrv/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display build information for the hellosrv binary.

This is the version of the server program. The version served in the greeting
comes from the manifest; see 'hellosrv manifest'.

Examples:
  # Show short version info (default)
  hellosrv version

  # Show detailed version info as a table
  hellosrv version --detailed

  # Show version info in JSON format
  hellosrv version --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		switch {
		case versionJSON:
			return style.PrintJSON(out, version.GetVersion())
		case versionDetailed:
			fmt.Fprintln(out, version.GetVersionString())
			return style.PrintTable(out, []string{"Field", "Value"}, version.GetVersion().Rows(), 0)
		default:
			fmt.Fprintln(out, version.GetShortVersionString())
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
