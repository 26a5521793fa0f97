// Package config loads and validates the genrepo.yaml configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ORM identifiers.
const (
	ORMSQLModel   = "sqlmodel"
	ORMSQLAlchemy = "sqlalchemy"
)

// Generation modes.
const (
	ModeStandalone = "standalone"
	ModeBase       = "base"
	ModeCombined   = "combined"
)

// Commit strategies for write-method bodies.
const (
	CommitStrategyCommit = "commit"
	CommitStrategyFlush  = "flush"
	CommitStrategyNone   = "none"
)

// Model describes one repository to generate.
type Model struct {
	Name               string   `yaml:"name"`
	ImportPath         string   `yaml:"import_path"`
	IDField            string   `yaml:"id_field"`
	IDType             string   `yaml:"id_type"`
	Methods            []Method `yaml:"methods"`
	PersonalizeMethods []string `yaml:"personalize_methods"`
}

// IsWildcard reports whether the entry supplies discovery defaults
// instead of naming a concrete model.
func (m *Model) IsWildcard() bool {
	n := strings.ToLower(m.Name)
	return n == "all" || n == "*"
}

// SplitImportPath splits "module.path:Class" into its module and class
// parts. The class part is empty for package-only paths.
func (m *Model) SplitImportPath() (module, class string) {
	module, class, _ = strings.Cut(m.ImportPath, ":")
	return module, class
}

// Generation holds the generation-mode settings.
type Generation struct {
	Mode          string `yaml:"mode"`
	BaseFilename  string `yaml:"base_filename"`
	BaseClassName string `yaml:"base_class_name"`
	OverwriteBase bool   `yaml:"overwrite_base"`
	StubOnly      bool   `yaml:"stub_only"`
}

// Config is the validated in-memory form of genrepo.yaml.
type Config struct {
	ORM                string     `yaml:"orm"`
	AsyncMode          bool       `yaml:"async_mode"`
	OutputDir          string     `yaml:"output_dir"`
	Models             []Model    `yaml:"-"`
	ModelsDir          string     `yaml:"models_dir"`
	ModelsPackage      string     `yaml:"models_package"`
	DiscoverAll        bool       `yaml:"discover_all"`
	CommitStrategy     string     `yaml:"commit_strategy"`
	AllowMissingModels bool       `yaml:"allow_missing_models"`
	Generation         Generation `yaml:"generation"`
}

// BaseModule returns the base file's Python module name (filename without
// the .py suffix).
func (c *Config) BaseModule() string {
	return strings.TrimSuffix(c.Generation.BaseFilename, ".py")
}

// rawConfig mirrors Config but defers the models field, which may be a
// list of entries or the literal string "all".
type rawConfig struct {
	ORM                string     `yaml:"orm"`
	AsyncMode          bool       `yaml:"async_mode"`
	OutputDir          string     `yaml:"output_dir"`
	Models             yaml.Node  `yaml:"models"`
	ModelsDir          string     `yaml:"models_dir"`
	ModelsPackage      string     `yaml:"models_package"`
	DiscoverAll        bool       `yaml:"discover_all"`
	CommitStrategy     string     `yaml:"commit_strategy"`
	AllowMissingModels bool       `yaml:"allow_missing_models"`
	Generation         Generation `yaml:"generation"`
}

// Load reads and validates a genrepo.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raw rawConfig
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{Reason: err.Error()}
	}

	cfg := &Config{
		ORM:                raw.ORM,
		AsyncMode:          raw.AsyncMode,
		OutputDir:          raw.OutputDir,
		ModelsDir:          raw.ModelsDir,
		ModelsPackage:      raw.ModelsPackage,
		DiscoverAll:        raw.DiscoverAll,
		CommitStrategy:     raw.CommitStrategy,
		AllowMissingModels: raw.AllowMissingModels,
		Generation:         raw.Generation,
	}
	applyDefaults(cfg)

	if err := decodeModels(cfg, &raw.Models); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if cfg.DiscoverAll && cfg.ModelsDir == "" && cfg.ModelsPackage == "" {
		cfg.ModelsDir = "app/models"
		cfg.ModelsPackage = "app.models"
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ORM == "" {
		cfg.ORM = ORMSQLModel
	}
	if cfg.CommitStrategy == "" {
		cfg.CommitStrategy = CommitStrategyNone
	}
	if cfg.Generation.Mode == "" {
		cfg.Generation.Mode = ModeStandalone
	}
	if cfg.Generation.BaseFilename == "" {
		cfg.Generation.BaseFilename = "base_repository.py"
	}
	if cfg.Generation.BaseClassName == "" {
		cfg.Generation.BaseClassName = "BaseRepository"
	}
}

// decodeModels interprets the models field: absent (allowed only in base
// mode), the discovery sentinel "all", or an explicit non-empty list.
func decodeModels(cfg *Config, node *yaml.Node) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		if cfg.Generation.Mode != ModeBase {
			return &Error{Reason: "missing 'models'. Use 'models: all' for discovery or provide an explicit list under 'models:'."}
		}
		return nil
	}
	if node.Kind == yaml.ScalarNode {
		switch strings.ToLower(strings.TrimSpace(node.Value)) {
		case "all":
			cfg.DiscoverAll = true
			return nil
		case "none":
			return &Error{Reason: "no models configured. Use 'models: all' for discovery or define an explicit list under 'models:'."}
		default:
			return &Error{Reason: "invalid value for 'models'. Use 'all' or an explicit list of models."}
		}
	}
	if node.Kind != yaml.SequenceNode {
		return &Error{Reason: "invalid value for 'models'. Use 'all' or an explicit list of models."}
	}
	var models []Model
	if err := node.Decode(&models); err != nil {
		return &Error{Reason: err.Error()}
	}
	if len(models) == 0 {
		return &Error{Reason: "empty 'models' list. Use 'models: all' for discovery or provide one or more models."}
	}
	cfg.Models = models
	return nil
}

func validate(cfg *Config) error {
	if cfg.ORM != ORMSQLModel && cfg.ORM != ORMSQLAlchemy {
		return &Error{Reason: fmt.Sprintf("unsupported orm: %s. Supported: sqlmodel, sqlalchemy", cfg.ORM)}
	}
	switch cfg.Generation.Mode {
	case ModeStandalone, ModeBase, ModeCombined:
	default:
		return &Error{Reason: fmt.Sprintf("unsupported generation mode: %s", cfg.Generation.Mode)}
	}
	switch cfg.CommitStrategy {
	case CommitStrategyCommit, CommitStrategyFlush, CommitStrategyNone:
	default:
		return &Error{Reason: fmt.Sprintf("unsupported commit_strategy: %s", cfg.CommitStrategy)}
	}
	if cfg.OutputDir == "" {
		return &Error{Reason: "missing 'output_dir'"}
	}

	seen := make(map[string]bool, len(cfg.Models))
	for i := range cfg.Models {
		m := &cfg.Models[i]
		if err := validateModel(m); err != nil {
			return err
		}
		if m.IsWildcard() {
			continue
		}
		if seen[m.Name] {
			return &Error{Reason: "duplicate model names in configuration"}
		}
		seen[m.Name] = true
	}
	return nil
}

func validateModel(m *Model) error {
	if !m.IsWildcard() && (m.Name == "" || !unicode.IsLetter(rune(m.Name[0]))) {
		return &Error{Reason: "model name must start with a letter"}
	}
	if strings.Contains(m.ImportPath, ":") {
		module, class := m.SplitImportPath()
		if module == "" || class == "" {
			return &Error{Reason: "import_path must include both module and class"}
		}
	}
	if m.Methods == nil && !m.IsWildcard() {
		m.Methods = append([]Method(nil), DefaultMethods...)
	}
	normalized, err := NormalizeMethods(m.Methods)
	if err != nil {
		return err
	}
	m.Methods = normalized
	m.PersonalizeMethods = dedupe(m.PersonalizeMethods)
	return nil
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		out = append(out, s)
		seen[s] = true
	}
	return out
}
