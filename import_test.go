package inkpress

import (
	"os"
	"path/filepath"
	"testing"
)

func writeContentFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestImportDir(t *testing.T) {
	s := setupTestStore(t)
	dir := t.TempDir()

	writeContentFile(t, dir, "first-post.md", `---
title: First Post
date: 2025-02-24
series: go-editor
tags: [go]
summary: First.
---
Body one.
`)
	writeContentFile(t, filepath.Join(dir, "projects"), "editor.md", `---
title: Editor
date: 2025-03-03
kind: project
link: https://github.com/user/editor
summary: A toy real-time editor backend.
---
Body two.
`)
	writeContentFile(t, dir, "notes.txt", "not markdown, skipped")

	n, err := s.ImportDir(dir)
	if err != nil {
		t.Fatalf("ImportDir failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d entries, want 2", n)
	}

	post, err := s.GetEntry("first-post")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if post.Title != "First Post" || post.Content != "Body one." {
		t.Errorf("post = %+v", post)
	}
	if len(post.Series) != 1 || post.Series[0] != "go-editor" {
		t.Errorf("Series = %v", post.Series)
	}

	proj, err := s.GetEntry("editor")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if proj.Kind != KindProject {
		t.Errorf("Kind = %q, want project", proj.Kind)
	}
	if proj.Link != "https://github.com/user/editor" {
		t.Errorf("Link = %q, want the front-matter link", proj.Link)
	}
}

func TestImportDirBadFrontMatter(t *testing.T) {
	s := setupTestStore(t)
	dir := t.TempDir()

	writeContentFile(t, dir, "broken.md", "no front matter here\n")

	if _, err := s.ImportDir(dir); err == nil {
		t.Error("expected error for file without front matter")
	}
}

func TestImportDirBadDate(t *testing.T) {
	s := setupTestStore(t)
	dir := t.TempDir()

	writeContentFile(t, dir, "bad-date.md", "---\ntitle: T\ndate: 24-02-2025\n---\nbody")

	if _, err := s.ImportDir(dir); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestImportDirIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	dir := t.TempDir()

	writeContentFile(t, dir, "once.md", "---\ntitle: Once\ndate: 2025-01-01\nsummary: s\n---\nbody")

	if _, err := s.ImportDir(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ImportDir(dir); err != nil {
		t.Fatal(err)
	}
	all, err := s.ListAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("re-import duplicated entries: %d", len(all))
	}
}
