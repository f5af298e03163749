package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenaire/site/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.cfgFile)
			}
			if err := config.Default().Save(opts.cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.cfgFile)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file plus environment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cfgCmd.AddCommand(initCmd, showCmd)
	return cfgCmd
}
