package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/example/genrepo/internal/config"
	"github.com/example/genrepo/internal/generator"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	var (
		configPath   string
		templatesDir string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the config or templates change",
		Long: `Run generation once, then keep watching the config file (and the
templates directory, when --templates-dir is set) and regenerate on
every change. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			absConfig, err := filepath.Abs(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to start watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the config file's directory rather than the file itself;
			// editors replace files by rename, which drops a direct watch.
			if err := watcher.Add(filepath.Dir(absConfig)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absConfig), err)
			}
			if templatesDir != "" {
				absTemplates, err := filepath.Abs(templatesDir)
				if err != nil {
					return err
				}
				if err := watcher.Add(absTemplates); err != nil {
					return fmt.Errorf("failed to watch %s: %w", absTemplates, err)
				}
			}

			run := func() {
				cfg, err := config.Load(absConfig)
				if err != nil {
					color.New(color.FgRed).Printf("error while reading %s: %v\n", absConfig, err)
					return
				}
				written, err := generator.Generate(cfg, generator.Options{
					ProjectRoot:  filepath.Dir(absConfig),
					Force:        force,
					TemplatesDir: templatesDir,
				})
				if err != nil {
					color.New(color.FgRed).Printf("generation failed: %v\n", err)
					return
				}
				printSummary(cfg, written)
			}

			fmt.Printf("Watching %s (Ctrl-C to stop)\n", absConfig)
			run()

			// Coalesce event bursts from editors that save in several steps.
			debounce := time.NewTimer(0)
			if !debounce.Stop() {
				<-debounce.C
			}
			pending := false

			for {
				select {
				case <-ctx.Done():
					fmt.Println("Stopped.")
					return nil
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !relevantEvent(ev, absConfig) {
						continue
					}
					if pending && !debounce.Stop() {
						<-debounce.C
					}
					debounce.Reset(200 * time.Millisecond)
					pending = true
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					color.New(color.FgRed).Printf("watch error: %v\n", err)
				case <-debounce.C:
					pending = false
					run()
				}
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "genrepo.yaml", "Path to genrepo.yaml")
	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Also watch this templates directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing generated files on each run")

	return cmd
}

// relevantEvent reports whether ev should trigger regeneration: a write,
// create, or rename touching the config file or a template.
func relevantEvent(ev fsnotify.Event, absConfig string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return ev.Name == absConfig || strings.HasSuffix(ev.Name, ".tmpl")
}
