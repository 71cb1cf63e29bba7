package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellosrv/pkg/configs"
	"github.com/yeisme/hellosrv/pkg/utils/schema"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage hellosrv configuration",
		Long:    `hellosrv config allows you to view and manage your hellosrv configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate hellosrv configuration",
		Long:  `hellosrv config validate checks the validity of your configuration file and environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 配置在 PersistentPreRunE 中已经加载并校验, 这里只报告来源
			if err := appCtx.Config.Validate(); err != nil {
				return err
			}

			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(none, defaults and environment only)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid. Config file used: %s\n", fileUsed)
			return nil
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List hellosrv configuration",
		Long: `hellosrv config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - server: Listener settings
  - manifest: Manifest settings
  - log: Logging settings
  - app: Application settings

Examples:
  hellosrv config list                    # Show all configuration (viper raw data)
  hellosrv config list --all              # Show all configuration with defaults
  hellosrv config list server             # Show only server settings
  hellosrv config list --format json      # Output in JSON format
  hellosrv config list --toml             # Output in TOML format (shorthand)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("error getting config section: %w", err)
			}

			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize hellosrv configuration",
		Long: `hellosrv config init creates a new configuration file with default settings.

Examples:
  hellosrv config init                              # Create .hellosrv.yaml in current directory
  hellosrv config init --path ~/.config/hellosrv/hellosrv.yaml
  hellosrv config init --format toml                # Create .hellosrv.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}

			// 如果没有指定路径，使用默认路径
			if path == "" {
				path = ".hellosrv." + string(format)
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}

			log.Info().Str("path", path).Msg("Config file created successfully")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configSchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return schema.GenConfigSchema(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
		configSchemaCmd,
	)

	// 添加 config list 标志
	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// 添加 config init 标志
	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
