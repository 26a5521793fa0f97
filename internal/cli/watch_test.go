package cli

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestRelevantEvent(t *testing.T) {
	absConfig := "/proj/genrepo.yaml"
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"config write", fsnotify.Event{Name: absConfig, Op: fsnotify.Write}, true},
		{"config rename", fsnotify.Event{Name: absConfig, Op: fsnotify.Rename}, true},
		{"template create", fsnotify.Event{Name: "/proj/templates/repository_sqlmodel.py.tmpl", Op: fsnotify.Create}, true},
		{"unrelated file", fsnotify.Event{Name: "/proj/notes.md", Op: fsnotify.Write}, false},
		{"config chmod only", fsnotify.Event{Name: absConfig, Op: fsnotify.Chmod}, false},
		{"config remove only", fsnotify.Event{Name: absConfig, Op: fsnotify.Remove}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(tt.ev, absConfig))
		})
	}
}
