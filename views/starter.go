package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/inkpress/inkpress"
	"github.com/inkpress/inkpress/markdown"
)

func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html><html><head><title>%s</title></head><body>", html.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func entryList(w io.Writer, entries []inkpress.ContentEntry) error {
	if _, err := io.WriteString(w, "<ul>"); err != nil {
		return err
	}
	for _, e := range entries {
		title := html.EscapeString(e.Title)
		date := FormatDate(e.PublishedAt)
		var err error
		switch {
		case e.Link == "":
			_, err = fmt.Fprintf(w, `<li>%s <time>%s</time></li>`, title, date)
		case strings.HasPrefix(e.Link, "/"):
			_, err = fmt.Fprintf(w, `<li><a href="%s/">%s</a> <time>%s</time></li>`, e.Link, title, date)
		default:
			_, err = fmt.Fprintf(w, `<li><a href="%s">%s</a> <time>%s</time></li>`, e.Link, title, date)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul>")
	return err
}

// Starter returns a plain, unstyled ViewFuncs wiring. It backs `inkpress
// serve` and freshly scaffolded sites until the owner swaps in their own
// templ components.
func Starter(siteName string) inkpress.ViewFuncs {
	home := func(posts []inkpress.ContentEntry, activeTag string, tags []string, siteURL string) templ.Component {
		return page(siteName, func(w io.Writer) error {
			return entryList(w, posts)
		})
	}
	listing := func(grouping, name string, entries []inkpress.ContentEntry, siteURL string) templ.Component {
		title := SeriesTitle(name)
		return page(title, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(title)); err != nil {
				return err
			}
			return entryList(w, entries)
		})
	}
	return inkpress.ViewFuncs{
		Home:        home,
		HomePartial: home,
		BlogSection: func(posts []inkpress.ContentEntry, activeTag string, tags []string) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				return entryList(w, posts)
			})
		},
		Post: func(entry inkpress.ContentEntry, posts []inkpress.ContentEntry, siteURL string) templ.Component {
			return page(entry.Title, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "<h1>%s</h1>", html.EscapeString(entry.Title)); err != nil {
					return err
				}
				return markdown.Render(w, entry.Content)
			})
		},
		PostPartial: func(entry inkpress.ContentEntry, posts []inkpress.ContentEntry, siteURL string) templ.Component {
			return markdown.Component(entry.Content)
		},
		Projects: func(projects []inkpress.ContentEntry, siteURL string) templ.Component {
			return page("Projects", func(w io.Writer) error {
				return entryList(w, projects)
			})
		},
		SeriesIndex: func(names []string, index inkpress.GroupIndex, siteURL string) templ.Component {
			return page("Series", func(w io.Writer) error {
				for _, name := range names {
					if _, err := fmt.Fprintf(w, `<h2><a href="/series/%s/">%s</a> (%d)</h2>`,
						name, html.EscapeString(SeriesTitle(name)), len(index[name])); err != nil {
						return err
					}
				}
				return nil
			})
		},
		GroupListing: listing,
		AdminLogin: func(showError bool, csrfToken string) templ.Component {
			return page("Login", func(w io.Writer) error {
				if showError {
					if _, err := io.WriteString(w, "<p>Wrong password.</p>"); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, `<form method="post" action="/admin/login/"><input type="hidden" name="_csrf" value="%s"/><input type="password" name="password"/><button>Log in</button></form>`, csrfToken)
				return err
			})
		},
		AdminDashboard: func(entries []inkpress.ContentEntry, message string, csrfToken string) templ.Component {
			return page("Admin", func(w io.Writer) error {
				if message != "" {
					if _, err := fmt.Fprintf(w, "<p>%s</p>", html.EscapeString(message)); err != nil {
						return err
					}
				}
				return entryList(w, entries)
			})
		},
		AdminFormPartial: func(entry inkpress.ContentEntry, csrfToken string) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := fmt.Fprintf(w, `<textarea name="content">%s</textarea>`, html.EscapeString(entry.Content))
				return err
			})
		},
		AdminImages: func(images []inkpress.Image, csrfToken string) templ.Component {
			return page("Images", func(w io.Writer) error {
				for _, img := range images {
					if _, err := fmt.Fprintf(w, `<img src="/public/uploads/%s" width="160"/>`, img.Filename); err != nil {
						return err
					}
				}
				return nil
			})
		},
		NotFound: func() templ.Component {
			return page("Not found", func(w io.Writer) error {
				_, err := io.WriteString(w, "<h1>404</h1>")
				return err
			})
		},
		ServerError: func() templ.Component {
			return page("Error", func(w io.Writer) error {
				_, err := io.WriteString(w, "<h1>Something went wrong</h1>")
				return err
			})
		},
	}
}
