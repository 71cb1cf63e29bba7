package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/hellosrv/pkg/manifest"
	"github.com/yeisme/hellosrv/pkg/style"
)

var (
	manifestPath string
	manifestJSON bool
)

// manifestCmd loads the manifest exactly as serve would and reports the result.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Show the version the server would serve",
	Long: `
Load the configured manifest and print its path, format, name and version.
Exits non-zero when the manifest would stop 'hellosrv serve' from starting.

Examples:
  hellosrv manifest
  hellosrv manifest --path Cargo.toml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := appCtx.Config.Manifest.Path
		if cmd.Flags().Changed("path") {
			path = manifestPath
		}

		m, err := manifest.Load(path)
		if err != nil {
			return err
		}
		semverErr := manifest.CheckSemver(m.Version)

		out := cmd.OutOrStdout()
		if manifestJSON {
			err = style.PrintJSON(out, struct {
				*manifest.Manifest
				Semver bool `json:"semver"`
			}{m, semverErr == nil})
		} else {
			semver := style.Status(true, "valid")
			if semverErr != nil {
				semver = style.Status(false, "invalid")
			}
			err = style.PrintTable(out, []string{"Field", "Value"}, [][]string{
				{"path", m.Path},
				{"format", string(m.Format)},
				{"name", m.Name},
				{"version", m.Version},
				{"semver", semver},
			}, 0)
		}
		if err != nil {
			return err
		}
		if semverErr != nil && appCtx.Config.Manifest.StrictSemver {
			return semverErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)

	manifestCmd.Flags().StringVar(&manifestPath, "path", "", "manifest file (default from config)")
	manifestCmd.Flags().BoolVarP(&manifestJSON, "json", "j", false, "output in JSON format")
}
