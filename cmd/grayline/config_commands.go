package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grayline/internal/config"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage grayline configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an annotated sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configFlag
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, resolved, exists, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			status := "missing, defaults in effect"
			if exists {
				status = "loaded"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", resolved, status)
			return nil
		},
	})

	return cmd
}
