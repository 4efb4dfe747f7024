package inkpress

import (
	"testing"
	"time"
)

func seedCacheStore(t *testing.T) *Store {
	t.Helper()
	s := setupTestStore(t)
	seed := []ContentEntry{
		{Slug: "p1", Title: "P1", Summary: "s", Content: "c", Tags: []string{"go"}, PublishedAt: day("2025-01-01")},
		{Slug: "p2", Title: "P2", Summary: "s", Content: "c", PublishedAt: day("2025-02-01")},
		{Slug: "proj", Kind: KindProject, Title: "Proj", Summary: "s", Content: "c", PublishedAt: day("2025-01-15")},
	}
	for _, e := range seed {
		if err := s.SaveEntry(e); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}
	return s
}

func TestEntryCacheServesPostsAndProjects(t *testing.T) {
	c := NewEntryCache(seedCacheStore(t), time.Minute)

	posts, err := c.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "p2" {
		t.Errorf("Posts = %v", slugs(posts))
	}

	projects, err := c.Projects()
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Slug != "proj" {
		t.Errorf("Projects = %v", slugs(projects))
	}

	got, err := c.GetPost("p1")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "P1" {
		t.Errorf("GetPost = %+v", got)
	}
	if _, err := c.GetPost("missing"); err != ErrNotFound {
		t.Errorf("GetPost(missing) err = %v, want ErrNotFound", err)
	}
}

func TestEntryCacheInvalidate(t *testing.T) {
	s := seedCacheStore(t)
	c := NewEntryCache(s, time.Hour)

	if _, err := c.Posts(); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveEntry(ContentEntry{
		Slug: "p3", Title: "P3", Summary: "s", Content: "c", PublishedAt: day("2025-03-01"),
	}); err != nil {
		t.Fatal(err)
	}

	// Still within TTL, so the new entry is invisible until invalidation.
	posts, err := c.Posts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Errorf("cache reloaded early: %v", slugs(posts))
	}

	c.Invalidate()
	posts, err = c.Posts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 3 || posts[0].Slug != "p3" {
		t.Errorf("after invalidate Posts = %v", slugs(posts))
	}
}
