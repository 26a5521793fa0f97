package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Apply writes every planned file and returns the written paths in plan
// order. Entries that would change a protected target fail with
// FileConflictError before anything is written; skips (up-to-date,
// create-once targets that exist) are not errors.
func Apply(report *Report, outDir string) ([]string, error) {
	var conflicts []error
	for _, f := range report.Conflicts() {
		conflicts = append(conflicts, &FileConflictError{Path: f.Path})
	}
	if len(conflicts) > 0 {
		return nil, errors.Join(conflicts...)
	}
	if len(report.ToWrite()) == 0 {
		return nil, nil
	}
	if err := ensurePackage(outDir); err != nil {
		return nil, err
	}
	var written []string
	for _, f := range report.Files {
		if !f.WouldWrite {
			continue
		}
		if err := writeFileAtomic(f.Path, f.Content); err != nil {
			return written, err
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// ensurePackage creates the output directory with an empty __init__.py so
// the generated files import as a Python package.
func ensurePackage(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	initFile := filepath.Join(dir, "__init__.py")
	if _, err := os.Stat(initFile); os.IsNotExist(err) {
		if err := os.WriteFile(initFile, nil, 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", initFile, err)
		}
	}
	return nil
}

// writeFileAtomic writes content via a temp file and rename so an
// interrupted run never leaves a partially written target.
func writeFileAtomic(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
