package inkpress

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = sql.ErrNoRows

// EntryCache is an in-memory cache of published entries with TTL, one slice
// per entry kind. Handlers read from it on every request; admin writes call
// Invalidate so the next read reloads from the store.
type EntryCache struct {
	mu       sync.RWMutex
	posts    []ContentEntry
	projects []ContentEntry
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewEntryCache creates an EntryCache backed by the given Store.
func NewEntryCache(s *Store, ttl time.Duration) *EntryCache {
	return &EntryCache{store: s, ttl: ttl}
}

func (c *EntryCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *EntryCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.projects = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached slices after ensuring they are fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *EntryCache) ensureLoaded() (posts, projects []ContentEntry, err error) {
	c.mu.RLock()
	if c.valid() {
		posts, projects = c.posts, c.projects
		c.mu.RUnlock()
		return posts, projects, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		posts, err := c.store.ListEntries(KindPost)
		if err != nil {
			return nil, nil, err
		}
		projects, err := c.store.ListEntries(KindProject)
		if err != nil {
			return nil, nil, err
		}
		c.posts = posts
		c.projects = projects
		c.fetched = time.Now()
	}
	return c.posts, c.projects, nil
}

// Posts returns all published posts, newest first.
func (c *EntryCache) Posts() ([]ContentEntry, error) {
	posts, _, err := c.ensureLoaded()
	return posts, err
}

// Projects returns all published project entries, newest first.
func (c *EntryCache) Projects() ([]ContentEntry, error) {
	_, projects, err := c.ensureLoaded()
	return projects, err
}

// GetPost returns a single published post by slug from the cache.
func (c *EntryCache) GetPost(slug string) (ContentEntry, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return ContentEntry{}, err
	}
	for _, e := range posts {
		if e.Slug == slug {
			return e, nil
		}
	}
	return ContentEntry{}, ErrNotFound
}
