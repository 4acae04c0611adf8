package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/karta/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var (
		cfgFile string
		noMouse bool
	)

	root := &cobra.Command{
		Use:           "karta",
		Short:         "Karta-AD transit booking terminal UI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if noMouse {
				v.Set("ui.mouse", false)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return runUI(cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/karta/config.toml)")
	root.Flags().String("log-file", "", "write debug log to this file")
	root.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
	if err := v.BindPFlag("log.file", root.Flags().Lookup("log-file")); err != nil {
		panic(err)
	}

	root.AddCommand(newCatalogCmd(v), newConfigCmd(v))
	return root
}
