package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/genrepo/internal/config"
)

// ResolveModels produces the effective ordered model list for a
// configuration: the explicit entries, plus discovered entries when
// discovery is enabled via `models: all` or a wildcard entry.
//
// Discovered models are ordered lexicographically by filename, so the
// generated output is deterministic across platforms.
func ResolveModels(cfg *config.Config, projectRoot string) ([]config.Model, error) {
	var models []config.Model
	var wildcard *config.Model
	explicit := make(map[string]bool)
	for i := range cfg.Models {
		m := cfg.Models[i]
		if m.IsWildcard() {
			wildcard = &m
			continue
		}
		explicit[m.Name] = true
		models = append(models, m)
	}

	if cfg.DiscoverAll || wildcard != nil {
		discovered, err := discoverModels(cfg, wildcard, projectRoot, explicit)
		if err != nil {
			return nil, err
		}
		models = append(models, discovered...)
		return models, nil
	}

	if !cfg.AllowMissingModels {
		for i := range models {
			if err := checkImportable(&models[i], projectRoot); err != nil {
				return nil, err
			}
		}
	}
	return models, nil
}

// discoverModels lists *.py files directly under the models directory and
// derives one model per file, skipping dunder files such as __init__.py.
// Explicit entries with the same class name take precedence.
func discoverModels(cfg *config.Config, wildcard *config.Model, projectRoot string, explicit map[string]bool) ([]config.Model, error) {
	dir := cfg.ModelsDir
	if dir == "" {
		dir = "app/models"
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(projectRoot, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ModelResolutionError{Dir: dir}
	}

	pkg := cfg.ModelsPackage
	if pkg == "" && wildcard != nil && !strings.Contains(wildcard.ImportPath, ":") {
		pkg = wildcard.ImportPath
	}
	if pkg == "" {
		pkg = "app.models"
	}

	defaults := config.Model{IDField: "id", IDType: "int", Methods: []config.Method{config.PresetAll}}
	if wildcard != nil {
		defaults = *wildcard
		if defaults.IDField == "" {
			defaults.IDField = "id"
		}
		if defaults.IDType == "" {
			defaults.IDType = "int"
		}
		if defaults.Methods == nil {
			defaults.Methods = []config.Method{config.PresetAll}
		}
	}
	methods, err := config.NormalizeMethods(defaults.Methods)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".py") || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var models []config.Model
	for _, name := range names {
		stem := strings.TrimSuffix(name, ".py")
		class := ToPascalCase(stem)
		if explicit[class] {
			continue
		}
		models = append(models, config.Model{
			Name:               class,
			ImportPath:         fmt.Sprintf("%s.%s:%s", pkg, stem, class),
			IDField:            defaults.IDField,
			IDType:             defaults.IDType,
			Methods:            methods,
			PersonalizeMethods: defaults.PersonalizeMethods,
		})
	}
	return models, nil
}

// checkImportable verifies that a model's import path points at a source
// file under the project root. module.path:Class resolves to
// <root>/module/path.py; a missing file fails resolution.
func checkImportable(m *config.Model, projectRoot string) error {
	module, class := m.SplitImportPath()
	if module == "" || class == "" {
		return &ModelResolutionError{ImportPath: m.ImportPath}
	}
	rel := filepath.Join(strings.Split(module, ".")...) + ".py"
	if _, err := os.Stat(filepath.Join(projectRoot, rel)); err != nil {
		return &ModelResolutionError{ImportPath: m.ImportPath}
	}
	return nil
}
