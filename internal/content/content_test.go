package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		text     string
		want     Kind
	}{
		{"markdown by extension", "README.md", "# Title", KindMarkdown},
		{"markdown long extension", "notes.markdown", "text", KindMarkdown},
		{"plain text extension", "notes.txt", "just some words", KindPlain},
		{"log extension", "server.log", "2026-01-01 started", KindPlain},
		{"go source", "main.go", "package main", KindCode},
		{"python source", "script.py", "print('hi')", KindCode},
		{"yaml source", "config.yaml", "key: value", KindCode},
		{"shebang without extension", "run", "#!/bin/bash\necho hi\n", KindCode},
		{"prose without extension", "LICENSE", "Permission is hereby granted to any person.", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.fileName, tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindMarkdown.String() != "markdown" || KindCode.String() != "code" || KindPlain.String() != "plain" {
		t.Error("unexpected Kind string values")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads and classifies a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(path, []byte("# Hello\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		d, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if d.Title != "doc.md" {
			t.Errorf("expected title 'doc.md', got %q", d.Title)
		}
		if d.Kind != KindMarkdown {
			t.Errorf("expected markdown kind, got %v", d.Kind)
		}
		if d.Text != "# Hello\n" {
			t.Errorf("unexpected text %q", d.Text)
		}
		if !filepath.IsAbs(d.Path) {
			t.Errorf("expected absolute path, got %q", d.Path)
		}
	})

	t.Run("rejects binary files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "blob.bin")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected an error for a binary file")
		}
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestReload(t *testing.T) {
	t.Run("picks up new text and kind, keeps the title", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.txt")
		if err := os.WriteFile(path, []byte("before"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		d, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		d.Title = "renamed"

		if err := os.WriteFile(path, []byte("after"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		if err := d.Reload(); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}

		if d.Text != "after" {
			t.Errorf("expected reloaded text 'after', got %q", d.Text)
		}
		if d.Title != "renamed" {
			t.Errorf("expected title to survive the reload, got %q", d.Title)
		}
	})

	t.Run("built-in documents reload to themselves", func(t *testing.T) {
		d := &Document{Title: "welcome.md", Kind: KindMarkdown, Text: "# Hi"}
		if err := d.Reload(); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
		if d.Text != "# Hi" {
			t.Errorf("expected text to be unchanged, got %q", d.Text)
		}
	})
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "quire {{version}} on {{date}}",
			vars:     Variables{Version: "1.2.3", Date: "2026-08-25"},
			want:     "quire 1.2.3 on 2026-08-25",
		},
		{
			name:     "empty values",
			template: "v{{version}}{{config}}",
			vars:     Variables{Version: "dev"},
			want:     "vdev",
		},
		{
			name:     "unknown placeholder left untouched",
			template: "{{version}} {{unknown}}",
			vars:     Variables{Version: "dev"},
			want:     "dev {{unknown}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, tt.vars); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	docs := Builtin("9.9.9", "/home/u/.config/quire/quire.yml")

	if len(docs) != 3 {
		t.Fatalf("expected 3 built-in documents, got %d", len(docs))
	}

	welcome := docs[0]
	if welcome.Kind != KindMarkdown {
		t.Errorf("expected the welcome page to be markdown, got %v", welcome.Kind)
	}
	if !strings.Contains(welcome.Text, "9.9.9") {
		t.Error("expected the version to be substituted into the welcome page")
	}
	if strings.Contains(welcome.Text, "{{") {
		t.Error("expected no unresolved placeholders in the welcome page")
	}

	for _, d := range docs {
		if d.Path != "" {
			t.Errorf("expected built-in %q to have no path", d.Title)
		}
		if d.Title == "" || d.Text == "" {
			t.Errorf("expected built-in documents to have a title and text")
		}
	}
}
