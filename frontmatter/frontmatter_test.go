package frontmatter

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	src := `---
title: Building the Editor Backend
date: 2025-02-24
series: go-editor
tags:
  - go
  - websockets
summary: First post in the series.
draft: false
---

# Hello

Body text.
`
	meta, body, err := Split([]byte(src))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if meta.Title != "Building the Editor Backend" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Date != "2025-02-24" {
		t.Errorf("Date = %q", meta.Date)
	}
	if !reflect.DeepEqual([]string(meta.Series), []string{"go-editor"}) {
		t.Errorf("Series = %v, want [go-editor]", meta.Series)
	}
	if !reflect.DeepEqual([]string(meta.Tags), []string{"go", "websockets"}) {
		t.Errorf("Tags = %v", meta.Tags)
	}
	if meta.Draft {
		t.Error("Draft should be false")
	}
	if !strings.HasPrefix(body, "\n# Hello") {
		t.Errorf("body starts with %q", body[:20])
	}
}

func TestSplitSeriesAsList(t *testing.T) {
	src := "---\ntitle: T\ndate: 2025-01-01\nseries: [a, b]\n---\nbody"
	meta, _, err := Split([]byte(src))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if !reflect.DeepEqual([]string(meta.Series), []string{"a", "b"}) {
		t.Errorf("Series = %v, want [a b]", meta.Series)
	}
}

func TestSplitDraft(t *testing.T) {
	src := "---\ntitle: WIP\ndate: 2025-01-01\ndraft: true\n---\n"
	meta, _, err := Split([]byte(src))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if !meta.Draft {
		t.Error("Draft should be true")
	}
	if len(meta.Series) != 0 {
		t.Errorf("Series = %v, want empty", meta.Series)
	}
}

func TestSplitErrors(t *testing.T) {
	cases := map[string]string{
		"no front matter":   "# Just markdown\n",
		"unterminated":      "---\ntitle: T\n",
		"invalid yaml":      "---\ntitle: [\n---\nbody",
		"series wrong kind": "---\nseries:\n  a: b\n---\nbody",
	}
	for name, src := range cases {
		if _, _, err := Split([]byte(src)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestSplitCRLF(t *testing.T) {
	src := "---\r\ntitle: T\r\ndate: 2025-01-01\r\n---\r\nbody\r\n"
	meta, body, err := Split([]byte(src))
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if meta.Title != "T" {
		t.Errorf("Title = %q", meta.Title)
	}
	if !strings.Contains(body, "body") {
		t.Errorf("body = %q", body)
	}
}
