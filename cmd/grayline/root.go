package main

import (
	"github.com/spf13/cobra"

	"grayline/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "grayline",
		Short:         "Assemble and ship GELF log records",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	loadConfig := func() (*config.Config, error) {
		cfg, _, _, err := config.Load(configFlag)
		return cfg, err
	}

	rootCmd.AddCommand(newSendCommand(loadConfig))
	rootCmd.AddCommand(newPreviewCommand(loadConfig))
	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
