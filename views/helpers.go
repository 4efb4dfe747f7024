package views

import (
	"net/url"
	"strings"
	"time"
)

// FormatDate renders an entry's publication date for display.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// PathEscape wraps url.PathEscape for use in templ expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// JoinNames formats a series or tag slice as a comma-separated string for
// form fields and meta tags.
func JoinNames(names []string) string {
	return strings.Join(names, ", ")
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink dark:border-white/30 bg-stone-100 dark:bg-neutral-700 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em] hover:-translate-y-0.5 hover:shadow-sm transition"
	if active {
		base += " bg-ink dark:bg-white text-white dark:text-ink"
	}
	return base
}

// SeriesTitle turns a series slug into a display title, e.g.
// "go-editor" -> "Go Editor". Group names double as URL segments and
// headings, so listing pages title themselves from the identifier.
func SeriesTitle(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
