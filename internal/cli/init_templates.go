package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/templates"
)

// InitTemplatesCmd returns the init-templates command
func InitTemplatesCmd() *cobra.Command {
	var (
		dest  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init-templates",
		Short: "Copy the packaged templates for customization",
		Long: `Copy the packaged repository templates into a local directory.

Point 'genrepo generate --templates-dir' at the copy to render with your
edited templates instead of the packaged ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDest, err := filepath.Abs(dest)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(absDest, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", absDest, err)
			}

			names, err := templates.List()
			if err != nil {
				return err
			}
			copied, skipped := 0, 0
			for _, name := range names {
				target := filepath.Join(absDest, name)
				if _, err := os.Stat(target); err == nil && !force {
					skipped++
					continue
				}
				data, err := templates.Read(name)
				if err != nil {
					return err
				}
				if err := os.WriteFile(target, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", target, err)
				}
				copied++
			}

			color.New(color.FgGreen).Printf("Copied %d template(s) to %s\n", copied, absDest)
			if skipped > 0 {
				fmt.Printf("Skipped %d existing (use --force to overwrite)\n", skipped)
			}
			fmt.Printf("Use them with: genrepo generate --templates-dir %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "templates", "Directory to copy templates into")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing template files")

	return cmd
}
