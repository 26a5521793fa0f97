package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/cli"
	"github.com/example/genrepo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "genrepo",
		Short:   "genrepo - Repository Pattern code generator",
		Version: version.String(),
		Long: `genrepo reads a genrepo.yaml describing your data models and generates
Python repository classes over SQLModel or SQLAlchemy.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.InitConfigCmd())
	rootCmd.AddCommand(cli.InitTemplatesCmd())
	rootCmd.AddCommand(cli.HealthcheckCmd())
	rootCmd.AddCommand(cli.WatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
