package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"animal-control-admin/internal/platform/config"
)

func rootCommand(a *app) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "admin",
		Short:         "Animal control and reproductive records admin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("api", "", "Records API base URL")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json")
	rootCmd.PersistentFlags().String("session", "", "Session file (bbolt)")

	rootCmd.AddCommand(
		serveCommand(a),
		loginCommand(a),
		logoutCommand(a),
		signupCommand(a),
		animalControlCommand(a),
		reproductiveCommand(a),
		exportCommand(a),
		directoryCommand(a),
		reportsCommand(a),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := a.init(configFile); err != nil {
			return err
		}

		// flags explícitos pisan env / archivo
		binds := map[string]string{
			"api":        config.KeyAPIBaseURL,
			"log-level":  config.KeyLogLevel,
			"log-format": config.KeyLogFormat,
			"session":    config.KeySessionPath,
		}
		for flag, key := range binds {
			f := cmd.Flags().Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}

		return a.setup()
	}

	return rootCmd
}
