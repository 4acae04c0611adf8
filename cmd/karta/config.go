package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jask/karta/internal/config"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			path := v.ConfigFileUsed()
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config written to "+path)
			return nil
		},
	}
}
