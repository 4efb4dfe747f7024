package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, source string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, source); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRenderHeadingsAndParagraphs(t *testing.T) {
	out := render(t, "# Title\n\nSome *emphasis* and **bold**.")
	for _, want := range []string{"<h1", "Title</h1>", "<em>emphasis</em>", "<strong>bold</strong>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGFMTable(t *testing.T) {
	out := render(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<td>1</td>") {
		t.Errorf("table not rendered:\n%s", out)
	}
}

func TestRenderFencedCode(t *testing.T) {
	out := render(t, "```go\nfmt.Println(\"hi\")\n```\n")
	if !strings.Contains(out, "language-go") {
		t.Errorf("code fence language missing:\n%s", out)
	}
}

func TestRenderAutoHeadingID(t *testing.T) {
	out := render(t, "## My Section\n")
	if !strings.Contains(out, `id="my-section"`) {
		t.Errorf("heading id missing:\n%s", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Component("plain text").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Component render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>plain text</p>") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
