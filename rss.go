package inkpress

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// renderFeed writes an RSS 2.0 feed for the given entries. The same renderer
// serves the global feed and the per-series feeds; only title and entry set
// differ.
func (a *App) renderFeed(c echo.Context, title string, entries []ContentEntry) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(entries))
	for _, e := range entries {
		entryURL := BuildURL(base, "blog", e.Slug)
		items = append(items, rssItem{
			Title:       e.Title,
			Link:        entryURL,
			Description: e.Summary,
			PubDate:     e.PublishedAt.Format(time.RFC1123Z),
			GUID:        entryURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
