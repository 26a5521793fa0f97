package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/config"
	"github.com/example/genrepo/internal/generator"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var (
		configPath   string
		dryRun       bool
		check        bool
		format       string
		stubOnly     bool
		force        bool
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate repositories from genrepo.yaml",
		Long: `Generate repository files from a genrepo.yaml configuration.

Modes:
  standalone - one self-contained file per model
  base       - only the shared base repository file
  combined   - shared base file plus per-model user repositories,
               created once and preserved across reruns

Examples:
  genrepo generate
  genrepo generate --config ./genrepo.yaml --force
  genrepo generate --check --format json
  genrepo generate --dry-run --stub-only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("--format must be 'text' or 'json'")
			}
			absConfig, err := filepath.Abs(configPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(absConfig)
			if err != nil {
				return reportError(format, absConfig, err)
			}
			if stubOnly {
				cfg.Generation.StubOnly = true
			}
			opts := generator.Options{
				ProjectRoot:  filepath.Dir(absConfig),
				Force:        force,
				TemplatesDir: templatesDir,
			}

			if dryRun || check {
				report, err := generator.Plan(cfg, opts)
				if err != nil {
					return reportError(format, absConfig, err)
				}
				if format == "json" {
					out, err := json.MarshalIndent(report, "", "  ")
					if err != nil {
						return err
					}
					fmt.Println(string(out))
				} else {
					printPlan(report)
				}
				if check && report.HasDrift() {
					return fmt.Errorf("drift detected: %d file(s) would change", len(report.ToWrite())+len(report.Conflicts()))
				}
				return nil
			}

			written, err := generator.Generate(cfg, opts)
			if err != nil {
				return reportError(format, absConfig, err)
			}
			printSummary(cfg, written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "genrepo.yaml", "Path to genrepo.yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan generation without writing files")
	cmd.Flags().BoolVar(&check, "check", false, "Exit with non-zero if changes would be made")
	cmd.Flags().StringVar(&format, "format", "text", "Output format for plan (text|json)")
	cmd.Flags().BoolVar(&stubOnly, "stub-only", false, "Generate stub-only repositories ignoring ORM/async details")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing generated files")
	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Override templates directory (e.g. ./templates)")

	return cmd
}

// reportError surfaces a fatal error in the selected format. In JSON mode
// stdout carries a single structured error object; the human-readable
// message still goes to stderr via the root command.
func reportError(format, configPath string, err error) error {
	if format == "json" {
		out, jerr := json.Marshal(map[string]string{"error": err.Error()})
		if jerr == nil {
			fmt.Println(string(out))
		}
		return err
	}
	return fmt.Errorf("error while reading %s: %w", configPath, err)
}

func printPlan(report *generator.Report) {
	toWrite := len(report.ToWrite())
	upToDate := len(report.UpToDate())
	fmt.Printf("Plan: %d to write, %d up-to-date, %d total\n", toWrite, upToDate, len(report.Files))
	for _, f := range report.Files {
		status := f.Status
		if f.WouldWrite {
			status = "WRITE"
		}
		fmt.Printf(" - %19s | %s\n", status, f.Path)
	}
}

func printSummary(cfg *config.Config, written []string) {
	if len(written) == 0 {
		fmt.Printf("%s %s\n",
			color.New(color.FgYellow).Sprint("No files generated."),
			"(maybe they already exist and --force is not set)")
		return
	}

	color.New(color.FgGreen, color.Bold).Printf("Generated %d file(s)\n", len(written))

	baseName := cfg.Generation.BaseFilename
	var basePath string
	var repoFiles []string
	for _, p := range written {
		if filepath.Base(p) == baseName {
			basePath = p
		} else if filepath.Base(p) != "__init__.py" {
			repoFiles = append(repoFiles, p)
		}
	}

	if basePath != "" {
		fmt.Printf(" %s: %s\n", color.New(color.FgCyan).Sprint("base"), basePath)
	}
	if len(repoFiles) == 0 {
		return
	}

	// Classify repos created from explicit entries vs discovery.
	explicit := make(map[string]bool)
	for _, m := range cfg.Models {
		if !m.IsWildcard() {
			explicit[m.Name] = true
		}
	}
	explicitCount, wildcardCount := 0, 0
	for _, p := range repoFiles {
		stem := strings.TrimSuffix(filepath.Base(p), ".py")
		modelSnake := strings.TrimSuffix(stem, "_repository")
		if explicit[generator.ToPascalCase(modelSnake)] {
			explicitCount++
		} else {
			wildcardCount++
		}
	}
	fmt.Printf(" %s: %d (explicit: %d, wildcard: %d)\n",
		color.New(color.FgCyan).Sprint("repos"), len(repoFiles), explicitCount, wildcardCount)
	for _, p := range repoFiles {
		fmt.Printf("  - %s\n", p)
	}
}
