package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/video-transcriber/internal"
	"github.com/iksnae/video-transcriber/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initGlobal bool
	initForce  bool
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Show or create the configuration file",
	Annotations: map[string]string{skipValidation: "true"},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration as YAML",
	Annotations: map[string]string{skipValidation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if cfg.Source != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.Source)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to a config file",
	Long: `Write the effective configuration (defaults plus any --server/--timeout
flags) to .video-transcriber/config.yaml, or to ~/.video-transcriber/config.yaml
with --global.`,
	Annotations: map[string]string{skipValidation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		path := config.ProjectConfigPath()
		if initGlobal {
			global, err := config.GlobalConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			path = global
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		internal.PrintSuccess(fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "Write the global config in the home directory")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}
