package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellosrv/pkg/style"
)

//go:embed docs.md
var docsMarkdown string

var (
	docsWidth int
	docsTheme string
	docsRaw   bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the HTTP contract and configuration reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if docsRaw {
			_, err := cmd.OutOrStdout().Write([]byte(docsMarkdown))
			return err
		}
		return style.RenderMarkdown(cmd.OutOrStdout(), docsMarkdown, docsWidth, docsTheme)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().IntVarP(&docsWidth, "width", "w", 0, "wrap width (default terminal width, 80-120)")
	docsCmd.Flags().StringVar(&docsTheme, "theme", "", "glamour theme (dark, light, dracula, notty, ...)")
	docsCmd.Flags().BoolVar(&docsRaw, "raw", false, "print the markdown source without rendering")
}
