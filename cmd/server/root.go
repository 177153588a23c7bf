package main

import (
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the ticketing CLI.
func NewRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "ticketing",
		Short:         "Ticketing API - projects, tasks and the people working on them",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")
	config.RegisterFlags(cmd.PersistentFlags())

	// Add subcommands
	cmd.AddCommand(NewServeCmd(&configFile))
	cmd.AddCommand(NewMigrateCmd(&configFile))
	cmd.AddCommand(NewCreateAdminCmd(&configFile))

	return cmd
}

func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	return config.Load(cmd.Flags(), configFile)
}
