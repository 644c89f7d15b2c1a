package main

import (
	"os"

	"github.com/spf13/cobra"

	"checkmate/internal/interfaces/cli/migrate"
	"checkmate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checkmate",
		Short: "Checkmate - chess study backend",
		Long:  `Checkmate is the backend for a chess study application: account and OAuth login, bearer-token auth, and saved board management.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
