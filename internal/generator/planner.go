package generator

import (
	"os"
	"path/filepath"

	"github.com/example/genrepo/internal/config"
)

// Write statuses in a generation report.
const (
	StatusCreate       = "create"
	StatusOverwrite    = "overwrite"
	StatusUpToDate     = "up-to-date"
	StatusSkipExisting = "exists-no-overwrite"
	StatusWouldChange  = "would-change"
)

// PlannedWrite is one planned file operation.
type PlannedWrite struct {
	Path       string `json:"path"`
	Template   string `json:"template"`
	Model      string `json:"model,omitempty"`
	Status     string `json:"status"`
	Existed    bool   `json:"existed"`
	WouldWrite bool   `json:"would_write"`

	// Content is the rendered file body. Not serialized.
	Content string `json:"-"`
}

// Report is an ordered generation plan. Entries appear in base-file-first,
// then model-resolution order, so repeated runs produce identical reports.
type Report struct {
	Files []PlannedWrite `json:"files"`
}

// ToWrite returns the entries apply mode would write.
func (r *Report) ToWrite() []PlannedWrite {
	var out []PlannedWrite
	for _, f := range r.Files {
		if f.WouldWrite {
			out = append(out, f)
		}
	}
	return out
}

// UpToDate returns the entries whose targets already match the rendered
// content.
func (r *Report) UpToDate() []PlannedWrite {
	var out []PlannedWrite
	for _, f := range r.Files {
		if f.Status == StatusUpToDate {
			out = append(out, f)
		}
	}
	return out
}

// Conflicts returns the entries that would change a pre-existing target
// without permission to overwrite it.
func (r *Report) Conflicts() []PlannedWrite {
	var out []PlannedWrite
	for _, f := range r.Files {
		if f.Status == StatusWouldChange {
			out = append(out, f)
		}
	}
	return out
}

// HasDrift reports whether any target differs from the rendered content.
// Missing targets count as drift; create-once files that already exist do
// not.
func (r *Report) HasDrift() bool {
	for _, f := range r.Files {
		switch f.Status {
		case StatusCreate, StatusOverwrite, StatusWouldChange:
			return true
		}
	}
	return false
}

// Options configures a plan or generate run.
type Options struct {
	// ProjectRoot anchors relative paths; normally the config file's
	// directory.
	ProjectRoot string
	// Force permits overwriting standalone files that already exist.
	Force bool
	// TemplatesDir overrides the packaged templates when non-empty.
	TemplatesDir string
}

// Plan renders every target for cfg and classifies it against the current
// filesystem state. Nothing is written; apply and check modes both
// consume the resulting report.
func Plan(cfg *config.Config, opts Options) (*Report, error) {
	renderer, err := NewRenderer(opts.TemplatesDir)
	if err != nil {
		return nil, err
	}
	outDir := OutputDir(cfg, opts.ProjectRoot)
	report := &Report{}
	mode := cfg.Generation.Mode

	if mode == config.ModeBase || mode == config.ModeCombined {
		name, err := SelectTemplate(cfg, RoleBase)
		if err != nil {
			return nil, err
		}
		content, err := renderer.Render(name, baseContext(cfg))
		if err != nil {
			return nil, err
		}
		pw := classify(filepath.Join(outDir, cfg.Generation.BaseFilename), content, classifyOpts{
			overwrite:  cfg.Generation.OverwriteBase,
			createOnce: !cfg.Generation.OverwriteBase,
		})
		pw.Template = name
		report.Files = append(report.Files, pw)
		if mode == config.ModeBase {
			return report, nil
		}
	}

	models, err := ResolveModels(cfg, opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	role := RoleStandalone
	copts := classifyOpts{overwrite: opts.Force}
	if mode == config.ModeCombined {
		// User repositories are created once and never regenerated.
		role = RoleUser
		copts = classifyOpts{createOnce: true}
	}
	name, err := SelectTemplate(cfg, role)
	if err != nil {
		return nil, err
	}
	for i := range models {
		m := &models[i]
		content, err := renderer.Render(name, modelContext(cfg, m))
		if err != nil {
			return nil, err
		}
		target := filepath.Join(outDir, ToSnakeCase(m.Name)+"_repository.py")
		pw := classify(target, content, copts)
		pw.Template = name
		pw.Model = m.Name
		report.Files = append(report.Files, pw)
	}
	return report, nil
}

// OutputDir resolves the configured output directory against the project
// root.
func OutputDir(cfg *config.Config, projectRoot string) string {
	if filepath.IsAbs(cfg.OutputDir) {
		return cfg.OutputDir
	}
	return filepath.Join(projectRoot, cfg.OutputDir)
}

func baseContext(cfg *config.Config) RenderContext {
	return RenderContext{
		ORM:            cfg.ORM,
		Async:          cfg.AsyncMode,
		CommitStrategy: cfg.CommitStrategy,
		BaseModule:     cfg.BaseModule(),
		BaseClassName:  cfg.Generation.BaseClassName,
	}
}

func modelContext(cfg *config.Config, m *config.Model) RenderContext {
	module, class := m.SplitImportPath()
	if class == "" {
		class = m.Name
	}
	return RenderContext{
		ModelName:          m.Name,
		ModelModule:        module,
		ModelClass:         class,
		IDField:            m.IDField,
		IDType:             m.IDType,
		Methods:            m.Methods,
		PersonalizeMethods: m.PersonalizeMethods,
		ORM:                cfg.ORM,
		Async:              cfg.AsyncMode,
		CommitStrategy:     cfg.CommitStrategy,
		BaseModule:         cfg.BaseModule(),
		BaseClassName:      cfg.Generation.BaseClassName,
	}
}

type classifyOpts struct {
	// overwrite permits replacing an existing, differing target.
	overwrite bool
	// createOnce marks targets that are written only when absent:
	// the shared base file without overwrite_base, and combined-mode
	// user repositories.
	createOnce bool
}

// classify compares rendered content against the target's current state.
// Pre-existence is recorded here, in the plan, so that check mode and
// apply mode share one code path and never consult filesystem side
// effects observed mid-run.
func classify(path, content string, opts classifyOpts) PlannedWrite {
	pw := PlannedWrite{Path: path, Content: content}
	current, err := os.ReadFile(path)
	if err != nil {
		pw.Status = StatusCreate
		pw.WouldWrite = true
		return pw
	}
	pw.Existed = true
	if string(current) == content {
		pw.Status = StatusUpToDate
		return pw
	}
	if opts.createOnce {
		pw.Status = StatusSkipExisting
		return pw
	}
	if opts.overwrite {
		pw.Status = StatusOverwrite
		pw.WouldWrite = true
		return pw
	}
	pw.Status = StatusWouldChange
	return pw
}
