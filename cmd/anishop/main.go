package main

import (
	"os"

	"github.com/spf13/cobra"

	"anishop/internal/interfaces/cli/bot"
	"anishop/internal/interfaces/cli/migrate"
	"anishop/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anishop",
		Short: "AniShop - order intermediation storefront",
		Long:  "AniShop runs the storefront HTTP server, the Telegram bot client and database migration tools.",
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		bot.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
