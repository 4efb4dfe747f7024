// Package inkpress is a publishing engine for personal blogs and project
// showcases, built with Go, Echo, and templ. It provides entry CRUD, series
// and tag listing pages, an admin dashboard, RSS, and sitemap out of the box.
//
// Users provide their own templ components via the ViewFuncs struct, and
// inkpress handles all the handler logic, middleware, and database operations.
package inkpress

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets users
// own and customize all templates.
type ViewFuncs struct {
	Home             func(posts []ContentEntry, activeTag string, tags []string, siteURL string) templ.Component
	HomePartial      func(posts []ContentEntry, activeTag string, tags []string, siteURL string) templ.Component
	BlogSection      func(posts []ContentEntry, activeTag string, tags []string) templ.Component
	Post             func(entry ContentEntry, posts []ContentEntry, siteURL string) templ.Component
	PostPartial      func(entry ContentEntry, posts []ContentEntry, siteURL string) templ.Component
	Projects         func(projects []ContentEntry, siteURL string) templ.Component
	SeriesIndex      func(names []string, index GroupIndex, siteURL string) templ.Component
	GroupListing     func(grouping, name string, entries []ContentEntry, siteURL string) templ.Component
	AdminLogin       func(showError bool, csrfToken string) templ.Component
	AdminDashboard   func(entries []ContentEntry, message string, csrfToken string) templ.Component
	AdminFormPartial func(entry ContentEntry, csrfToken string) templ.Component
	AdminImages      func(images []Image, csrfToken string) templ.Component
	NotFound         func() templ.Component
	ServerError      func() templ.Component
}

// App is the central inkpress application. It wires together the store,
// cache, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *EntryCache
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new inkpress App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, routes, and starts the server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("inkpress: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("inkpress: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("inkpress: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewEntryCache(a.Store, a.Config.EntryCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/projects/", a.handleProjects)

	// Group listing pages: one page per series / tag discovered in the
	// published entries. Unknown names render an empty listing.
	e.GET("/series/", a.handleSeriesIndex)
	e.GET("/series/:name/", a.handleSeries)
	e.GET("/series/:name/feed.xml", a.handleSeriesFeed)
	e.GET("/tags/:name/", a.handleTag)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/entry/:slug/", a.handleAdminEntry)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/entry/:slug/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
// This is a convenience function for use in scaffolded main.go files.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("inkpress: required environment variable %s is not set", key)
	}
	return v
}
