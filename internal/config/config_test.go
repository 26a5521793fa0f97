package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const minimalStandalone = `
orm: sqlmodel
output_dir: app/repositories
models:
  - name: User
    import_path: app.models.user:User
    id_field: id
    id_type: int
`

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte(minimalStandalone))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.ORM != ORMSQLModel {
		t.Errorf("ORM = %q, want sqlmodel", cfg.ORM)
	}
	if cfg.Generation.Mode != ModeStandalone {
		t.Errorf("Mode = %q, want standalone default", cfg.Generation.Mode)
	}
	if cfg.CommitStrategy != CommitStrategyNone {
		t.Errorf("CommitStrategy = %q, want none default", cfg.CommitStrategy)
	}
	if cfg.Generation.BaseFilename != "base_repository.py" {
		t.Errorf("BaseFilename = %q", cfg.Generation.BaseFilename)
	}
	if cfg.Generation.BaseClassName != "BaseRepository" {
		t.Errorf("BaseClassName = %q", cfg.Generation.BaseClassName)
	}
	if len(cfg.Models) != 1 {
		t.Fatalf("expected 1 model, got %d", len(cfg.Models))
	}
	if got := cfg.Models[0].Methods; !reflect.DeepEqual(got, DefaultMethods) {
		t.Errorf("Methods = %v, want defaults %v", got, DefaultMethods)
	}
}

func TestParseModelsAll(t *testing.T) {
	cfg, err := Parse([]byte(`
orm: sqlmodel
output_dir: repos
models: all
models_dir: app/models
models_package: app.models
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cfg.DiscoverAll {
		t.Error("DiscoverAll should be set by 'models: all'")
	}
	if len(cfg.Models) != 0 {
		t.Errorf("expected no explicit models, got %d", len(cfg.Models))
	}
}

func TestParseDiscoveryDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
output_dir: repos
models: all
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.ModelsDir != "app/models" || cfg.ModelsPackage != "app.models" {
		t.Errorf("discovery defaults = %q / %q", cfg.ModelsDir, cfg.ModelsPackage)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing models outside base mode",
			yaml: "output_dir: repos\n",
			want: "missing 'models'",
		},
		{
			name: "models none",
			yaml: "output_dir: repos\nmodels: none\n",
			want: "no models configured",
		},
		{
			name: "models garbage scalar",
			yaml: "output_dir: repos\nmodels: everything\n",
			want: "invalid value for 'models'",
		},
		{
			name: "empty models list",
			yaml: "output_dir: repos\nmodels: []\n",
			want: "empty 'models' list",
		},
		{
			name: "unsupported orm",
			yaml: "orm: django\noutput_dir: repos\nmodels: all\n",
			want: "unsupported orm: django",
		},
		{
			name: "unsupported mode",
			yaml: "output_dir: repos\nmodels: all\ngeneration:\n  mode: hybrid\n",
			want: "unsupported generation mode: hybrid",
		},
		{
			name: "unsupported commit strategy",
			yaml: "output_dir: repos\ncommit_strategy: rollback\nmodels: all\n",
			want: "unsupported commit_strategy: rollback",
		},
		{
			name: "missing output_dir",
			yaml: "models: all\n",
			want: "missing 'output_dir'",
		},
		{
			name: "unknown top-level field",
			yaml: "output_dir: repos\nmodels: all\nasync: true\n",
			want: "field async not found",
		},
		{
			name: "model name must start with a letter",
			yaml: "output_dir: repos\nmodels:\n  - name: \"1User\"\n",
			want: "model name must start with a letter",
		},
		{
			name: "import_path missing class",
			yaml: "output_dir: repos\nmodels:\n  - name: User\n    import_path: \"app.models.user:\"\n",
			want: "import_path must include both module and class",
		},
		{
			name: "duplicate model names",
			yaml: "output_dir: repos\nmodels:\n  - name: User\n  - name: User\n",
			want: "duplicate model names",
		},
		{
			name: "invalid method",
			yaml: "output_dir: repos\nmodels:\n  - name: User\n    methods: [get, upsert]\n",
			want: "invalid method: upsert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *config.Error, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseBaseModeWithoutModels(t *testing.T) {
	cfg, err := Parse([]byte(`
output_dir: repos
generation:
  mode: base
`))
	if err != nil {
		t.Fatalf("base mode should not require models: %v", err)
	}
	if len(cfg.Models) != 0 || cfg.DiscoverAll {
		t.Errorf("unexpected model configuration: %+v", cfg.Models)
	}
}

func TestParseWildcardEntry(t *testing.T) {
	cfg, err := Parse([]byte(`
output_dir: repos
models:
  - name: All
    import_path: app.models
    methods: [none]
    personalize_methods: [calc, calc]
  - name: User
    import_path: app.models.user:User
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Models) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.Models))
	}
	wc := cfg.Models[0]
	if !wc.IsWildcard() {
		t.Error("entry named All should be a wildcard")
	}
	if !reflect.DeepEqual(wc.PersonalizeMethods, []string{"calc"}) {
		t.Errorf("personalize methods not deduped: %v", wc.PersonalizeMethods)
	}
	if got := len(wc.Methods); got != 0 {
		t.Errorf("wildcard methods [none] should normalize to empty, got %v", wc.Methods)
	}
}

func TestParseWildcardNamesDoNotCollide(t *testing.T) {
	_, err := Parse([]byte(`
output_dir: repos
models:
  - name: All
  - name: "*"
`))
	if err != nil {
		t.Fatalf("wildcard entries must not trip duplicate detection: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "genrepo.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config not found") {
		t.Errorf("expected config-not-found error, got %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genrepo.yaml")
	if err := os.WriteFile(path, []byte(minimalStandalone), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Models[0].Name != "User" {
		t.Errorf("model name = %q", cfg.Models[0].Name)
	}
}

func TestSplitImportPath(t *testing.T) {
	m := Model{ImportPath: "app.models.user:User"}
	module, class := m.SplitImportPath()
	if module != "app.models.user" || class != "User" {
		t.Errorf("SplitImportPath = %q, %q", module, class)
	}

	m = Model{ImportPath: "app.models"}
	module, class = m.SplitImportPath()
	if module != "app.models" || class != "" {
		t.Errorf("package-only SplitImportPath = %q, %q", module, class)
	}
}

func TestBaseModule(t *testing.T) {
	cfg := Config{Generation: Generation{BaseFilename: "repo_base.py"}}
	if got := cfg.BaseModule(); got != "repo_base" {
		t.Errorf("BaseModule = %q, want repo_base", got)
	}
}
