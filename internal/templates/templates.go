// Package templates provides the packaged repository templates and the
// starter configuration file.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed repository/*.tmpl genrepo.sample.yaml
var packaged embed.FS

// Repository returns the packaged repository template set rooted at the
// template files, suitable for template.ParseFS.
func Repository() (fs.FS, error) {
	return fs.Sub(packaged, "repository")
}

// List returns the packaged template filenames in lexicographic order.
func List() ([]string, error) {
	entries, err := fs.ReadDir(packaged, "repository")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Read returns the content of one packaged template.
func Read(name string) ([]byte, error) {
	return packaged.ReadFile("repository/" + name)
}

// SampleConfig returns the starter genrepo.yaml content.
func SampleConfig() (string, error) {
	content, err := packaged.ReadFile("genrepo.sample.yaml")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
