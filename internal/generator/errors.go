package generator

import "fmt"

// ModelResolutionError reports a model whose import path cannot be
// resolved, or a discovery directory that does not exist.
type ModelResolutionError struct {
	ImportPath string
	Dir        string
}

func (e *ModelResolutionError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("models directory not found: %s", e.Dir)
	}
	return fmt.Sprintf("could not import model: %s. Create the model or adjust 'import_path'.", e.ImportPath)
}

// TemplateSelectionError reports a (mode, orm, role) combination outside
// the packaged template matrix. The mapping is total for every validated
// configuration, so seeing one means the config slipped past validation.
type TemplateSelectionError struct {
	Mode string
	ORM  string
	Role Role
}

func (e *TemplateSelectionError) Error() string {
	return fmt.Sprintf("no template for mode=%s orm=%s role=%s", e.Mode, e.ORM, e.Role)
}

// FileConflictError reports a pre-existing target that generation would
// change but is not allowed to overwrite without --force.
type FileConflictError struct {
	Path string
}

func (e *FileConflictError) Error() string {
	return fmt.Sprintf("refusing to overwrite %s (use --force)", e.Path)
}
