// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gutenwords CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gutenwords CLI.
var rootCmd = &cobra.Command{
	Use:   "gutenwords",
	Short: "Word-frequency analysis of Project Gutenberg texts",
	Long: `gutenwords downloads plain-text books from Project Gutenberg, extracts
header metadata (title and author block), computes filtered word
frequencies over the body text, and stores the results in a local
SQLite library.

Each stage is a subcommand: fetch downloads texts, analyze runs the
full pipeline, and library lists, shows, and exports stored results.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gutenwords.yaml or ~/.config/gutenwords/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gutenwords")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gutenwords"))
		}
	}

	viper.SetEnvPrefix("GUTENWORDS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configString resolves a string setting: an explicitly set flag wins,
// then the config file / environment, then the flag default.
func configString(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// configInt resolves an integer setting with the same precedence as
// configString.
func configInt(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
