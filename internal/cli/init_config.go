package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/templates"
)

// InitConfigCmd returns the init-config command
func InitConfigCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a starter genrepo.yaml",
		Long: `Write a commented starter genrepo.yaml into the current project.

The sample uses combined mode with a wildcard model entry, so running
'genrepo generate' afterwards produces a base repository plus one user
repository per discovered model.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if _, err := os.Stat(abs); err == nil && !force {
				color.New(color.FgYellow).Printf("Config already exists: %s (use --force to overwrite)\n", abs)
				return nil
			}
			sample, err := templates.SampleConfig()
			if err != nil {
				return err
			}
			if err := os.WriteFile(abs, []byte(sample), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", abs, err)
			}
			color.New(color.FgGreen).Printf("Created %s\n", abs)
			fmt.Println("Edit it, then run: genrepo generate")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "genrepo.yaml", "Where to write the config")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}
