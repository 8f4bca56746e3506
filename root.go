package main

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio serves a single-page developer portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// bare invocation keeps the old "go run ." behaviour
			return runServe(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "portfolio.yml", "Path to configuration file")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newContentCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) load() (*config.Config, error) {
	return config.Load(f.configPath)
}
