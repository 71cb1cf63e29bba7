// Package cmd provides command-line interface commands for hellosrv
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	appctx "github.com/yeisme/hellosrv/pkg/context"
	log2 "github.com/yeisme/hellosrv/pkg/utils/log"
	"github.com/yeisme/hellosrv/pkg/utils/version"
)

var (
	appCtx *appctx.AppContext
	log    log2.Logger

	// Global flags
	globalFlags       = appctx.GlobalFlags{}
	versionEnableFlag bool
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves like `hellosrv serve`.
var rootCmd = &cobra.Command{
	Use:   "hellosrv",
	Short: "hellosrv answers every HTTP request with a greeting and the manifest version",
	Long: `hellosrv is a single endpoint HTTP server. Every request, whatever its method
or path, receives 200 text/plain "Hello World" followed by the version read
from the package manifest when the server started.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		return runServe(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := appctx.InitAppContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}

		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "hellosrv", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
	addServeFlags(rootCmd)
}
