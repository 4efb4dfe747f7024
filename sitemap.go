package inkpress

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapPaths returns every path the site publishes for the given posts:
// the fixed pages, one URL per post, and one listing URL per distinct series
// and tag.
func SitemapPaths(posts []ContentEntry) [][]string {
	paths := [][]string{
		{},
		{"projects"},
		{"series"},
	}
	for _, e := range posts {
		if e.Draft {
			continue
		}
		paths = append(paths, []string{"blog", e.Slug})
	}
	for _, name := range DistinctGroups(posts, BySeries) {
		paths = append(paths, []string{"series", name})
	}
	for _, name := range DistinctGroups(posts, ByTag) {
		paths = append(paths, []string{"tags", name})
	}
	return paths
}

func (a *App) renderSitemap(c echo.Context, posts []ContentEntry) error {
	base := a.Config.URL
	lastMod := make(map[string]string, len(posts))
	for _, e := range posts {
		lastMod[BuildURL(base, "blog", e.Slug)] = e.PublishedAt.Format(dateFormat)
	}
	var urls []sitemapURL
	for _, segments := range SitemapPaths(posts) {
		loc := BuildURL(base, segments...)
		urls = append(urls, sitemapURL{Loc: loc, LastMod: lastMod[loc]})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
