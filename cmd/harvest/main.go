package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sethgrid/harvest/internal/config"
	"github.com/sethgrid/harvest/internal/discovery"
	"github.com/sethgrid/harvest/internal/logger"
)

const Version = "v0.1.0"

var (
	rulesPath string
	logLevel  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "harvest",
		Short:         "Harvest Valley - a small farming game for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			// If version flag is set, print version and exit
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return
			}
			// Otherwise show help
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a rules file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// settings resolves environment and flags. Flags win.
func settings() (config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, err
	}
	if rulesPath != "" {
		env.RulesPath = rulesPath
	}
	if logLevel != "" {
		env.LogLevel = logLevel
	}
	return env, nil
}

func newLogger(env config.Env) zerolog.Logger {
	cfg := logger.DefaultConfig()
	cfg.Level = env.LogLevel
	cfg.Format = env.LogFormat
	cfg.Version = Version
	return logger.New(cfg, os.Stderr)
}

// loadRules returns the resolved rules and the file they came from. An
// empty path means the built-in defaults.
func loadRules(env config.Env) (config.Rules, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Rules{}, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	path, err := discovery.Resolve(env.RulesPath, cwd)
	if err != nil {
		return config.Rules{}, "", err
	}
	if path == "" {
		return config.Default(), "", nil
	}

	r, err := config.Load(path)
	if err != nil {
		return config.Rules{}, "", err
	}
	return r, path, nil
}
