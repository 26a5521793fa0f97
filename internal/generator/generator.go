// Package generator turns a validated configuration into repository
// files: it resolves the model list, selects templates, plans the file
// operations, and either applies the plan or reports drift.
package generator

import "github.com/example/genrepo/internal/config"

// Generate plans and applies generation for cfg, returning the written
// paths in plan order.
func Generate(cfg *config.Config, opts Options) ([]string, error) {
	report, err := Plan(cfg, opts)
	if err != nil {
		return nil, err
	}
	return Apply(report, OutputDir(cfg, opts.ProjectRoot))
}
