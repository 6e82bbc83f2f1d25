package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sethgrid/harvest/internal/config"
)

func newRulesCmd() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage game rules files",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default rules to .harvest/rules.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, _ := cmd.Flags().GetBool("global")

			var baseDir string
			if global {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("failed to get home directory: %w", err)
				}
				baseDir = home
			} else {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
				baseDir = cwd
			}

			path, err := config.WriteDefault(baseDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rules written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("global", false, "Write to the home directory instead of the current one")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the rules in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := settings()
			if err != nil {
				return err
			}
			r, path, err := loadRules(env)
			if err != nil {
				return err
			}

			data, err := config.Marshal(r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "# built-in defaults")
			} else {
				fmt.Fprintf(out, "# %s\n", path)
			}
			_, err = out.Write(data)
			return err
		},
	}

	rulesCmd.AddCommand(initCmd)
	rulesCmd.AddCommand(showCmd)
	return rulesCmd
}
