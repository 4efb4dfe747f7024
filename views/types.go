// Package views holds helpers for user-owned templ templates: display
// formatting, CSS class builders, and per-page metadata types.
package views

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
