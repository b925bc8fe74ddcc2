package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/denismitr/cali/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return errors.Errorf("%s already exists, use --force to overwrite", a.configPath)
			}

			if err := config.Save(config.DefaultConfig(), a.configPath); err != nil {
				return err
			}

			_, err := fmt.Fprintf(a.rt.Out, "Wrote %s\n", a.configPath)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(a.rt.Out).Encode(a.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
