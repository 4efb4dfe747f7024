package inkpress

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	tags := DistinctGroups(posts, ByTag)
	shown := posts
	if tag != "" {
		shown = EntriesForGroup(posts, ByTag, tag)
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		switch c.QueryParam("partial") {
		case "blog":
			return Render(c, a.Views.BlogSection(shown, tag, tags))
		case "home":
			return Render(c, a.Views.HomePartial(shown, tag, tags, a.Config.URL))
		}
	}
	return Render(c, a.Views.Home(shown, tag, tags, a.Config.URL))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == ErrNotFound {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "post" {
		return Render(c, a.Views.PostPartial(post, posts, a.Config.URL))
	}
	return Render(c, a.Views.Post(post, posts, a.Config.URL))
}

func (a *App) handleProjects(c echo.Context) error {
	projects, err := a.Cache.Projects()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Projects(projects, a.Config.URL))
}

func (a *App) handleSeriesIndex(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	idx := BuildIndex(posts, BySeries)
	return Render(c, a.Views.SeriesIndex(DistinctGroups(posts, BySeries), idx, a.Config.URL))
}

func (a *App) handleSeries(c echo.Context) error {
	return a.renderGroupListing(c, "series", BySeries)
}

func (a *App) handleTag(c echo.Context) error {
	return a.renderGroupListing(c, "tags", ByTag)
}

func (a *App) renderGroupListing(c echo.Context, grouping string, groupsOf GroupsFunc) error {
	name := c.Param("name")
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	entries := EntriesForGroup(posts, groupsOf, name)
	return Render(c, a.Views.GroupListing(grouping, name, entries, a.Config.URL))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderFeed(c, a.Config.Name, posts)
}

func (a *App) handleSeriesFeed(c echo.Context) error {
	name := c.Param("name")
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	entries := EntriesForGroup(posts, BySeries, name)
	return a.renderFeed(c, a.Config.Name+": "+name, entries)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
