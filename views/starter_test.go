package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/inkpress/inkpress"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestStarterHome(t *testing.T) {
	v := Starter("My Site")
	posts := []inkpress.ContentEntry{
		{Slug: "hello", Title: "Hello <World>", Link: "/blog/hello",
			PublishedAt: time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC)},
	}
	out := renderToString(t, v.Home(posts, "", nil, "https://example.com"))

	if !strings.Contains(out, "<title>My Site</title>") {
		t.Errorf("missing site title: %s", out)
	}
	if !strings.Contains(out, `<a href="/blog/hello/">`) {
		t.Errorf("post link not rendered: %s", out)
	}
	if !strings.Contains(out, "Hello &lt;World&gt;") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, "February 24, 2025") {
		t.Errorf("date not formatted: %s", out)
	}
}

func TestStarterProjectLinks(t *testing.T) {
	v := Starter("My Site")
	projects := []inkpress.ContentEntry{
		{Slug: "repo-proj", Kind: inkpress.KindProject, Title: "Repo",
			Link:        "https://github.com/user/repo",
			PublishedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Slug: "bare-proj", Kind: inkpress.KindProject, Title: "Bare",
			PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	out := renderToString(t, v.Projects(projects, "https://example.com"))

	// External links are used verbatim; no trailing slash appended.
	if !strings.Contains(out, `<a href="https://github.com/user/repo">Repo</a>`) {
		t.Errorf("external project link wrong: %s", out)
	}
	// A project without a link gets a plain list item, never a dead URL.
	if !strings.Contains(out, "<li>Bare <time>") {
		t.Errorf("linkless project should render without an anchor: %s", out)
	}
	if strings.Contains(out, "/projects/bare-proj") {
		t.Errorf("made-up project URL rendered: %s", out)
	}
}

func TestStarterGroupListing(t *testing.T) {
	v := Starter("My Site")
	out := renderToString(t, v.GroupListing("series", "go-editor", nil, "https://example.com"))
	if !strings.Contains(out, "<h1>Go Editor</h1>") {
		t.Errorf("series heading wrong: %s", out)
	}
}
