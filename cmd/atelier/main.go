package main

import (
	"os"

	"github.com/spf13/cobra"

	"atelier/internal/interfaces/cli/migrate"
	"atelier/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atelier",
		Short: "Atelier - quote and booking API for the studio",
		Long:  `Atelier serves the pricing catalog, quote management, consultation booking and review desk APIs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
