package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/templates"
	"github.com/example/genrepo/internal/version"
)

// HealthcheckCmd returns the healthcheck command
func HealthcheckCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Verify the genrepo installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := templates.List()
			if err != nil {
				return fmt.Errorf("packaged templates unavailable: %w", err)
			}
			color.New(color.FgGreen).Println("genrepo: ok")
			if verbose {
				fmt.Printf("  version:   %s\n", version.String())
				fmt.Printf("  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
				fmt.Printf("  templates: %d packaged\n", len(names))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print version and platform details")

	return cmd
}
