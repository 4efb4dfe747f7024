package inkpress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// dateFormat is the canonical on-disk form of entry publication dates.
const dateFormat = "2006-01-02"

// Store wraps a SQLite database and provides CRUD operations for content
// entries and uploaded-image metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of failing with SQLITE_BUSY. synchronous=NORMAL is safe with
	// WAL; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
    slug TEXT PRIMARY KEY,
    kind TEXT NOT NULL DEFAULT 'post',
    title TEXT NOT NULL,
    published_at TEXT NOT NULL,
    series TEXT NOT NULL DEFAULT ',,',
    tags TEXT NOT NULL DEFAULT ',,',
    summary TEXT NOT NULL,
    content TEXT NOT NULL,
    link TEXT NOT NULL DEFAULT '',
    draft INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`ALTER TABLE entries ADD COLUMN link TEXT NOT NULL DEFAULT '';`); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
			return nil
		}
		return err
	}
	return nil
}

const entryColumns = `slug, kind, title, published_at, series, tags, summary, content, link, draft`

func scanEntry(scan func(dest ...any) error) (ContentEntry, error) {
	var slug, kind, title, published, series, tags, summary, content, link string
	var draft int
	if err := scan(&slug, &kind, &title, &published, &series, &tags, &summary, &content, &link, &draft); err != nil {
		return ContentEntry{}, err
	}
	publishedAt, err := time.Parse(dateFormat, published)
	if err != nil {
		return ContentEntry{}, fmt.Errorf("entry %s: bad published_at %q: %w", slug, published, err)
	}
	// Posts always have an on-site URL. Projects link out (repo, demo) via
	// their stored link, or nowhere if none was given.
	if link == "" && kind != KindProject {
		link = "/blog/" + slug
	}
	return ContentEntry{
		Slug:        slug,
		Kind:        kind,
		Title:       title,
		Series:      ParseList(series),
		Tags:        ParseList(tags),
		Summary:     summary,
		Content:     content,
		Link:        link,
		PublishedAt: publishedAt,
		Draft:       draft == 1,
	}, nil
}

func (s *Store) queryEntries(query string, args ...any) ([]ContentEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ContentEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListEntries returns all published entries of the given kind, newest first.
// Entries sharing a date are ordered by slug so the result is deterministic.
func (s *Store) ListEntries(kind string) ([]ContentEntry, error) {
	return s.queryEntries(`SELECT `+entryColumns+` FROM entries
		WHERE draft = 0 AND kind = ? ORDER BY published_at DESC, slug ASC`, kind)
}

// ListAllEntries returns every entry, drafts included, newest first (for admin).
func (s *Store) ListAllEntries() ([]ContentEntry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM entries
		ORDER BY published_at DESC, slug ASC`)
}

// GetEntry returns a single published entry by slug.
func (s *Store) GetEntry(slug string) (ContentEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE slug = ? AND draft = 0`, slug)
	return scanEntry(row.Scan)
}

// GetEntryAny returns an entry by slug regardless of draft status (for admin).
func (s *Store) GetEntryAny(slug string) (ContentEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE slug = ?`, slug)
	return scanEntry(row.Scan)
}

// SaveEntry upserts a content entry. Series and tag names are normalized to
// lowercase so group identifiers are canonical before they reach handlers.
func (s *Store) SaveEntry(e ContentEntry) error {
	kind := e.Kind
	if kind == "" {
		kind = KindPost
	}
	draft := 0
	if e.Draft {
		draft = 1
	}
	link := e.Link
	if link == "/blog/"+e.Slug {
		link = "" // derived, not user-supplied; recomputed on scan
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO entries
		(slug, kind, title, published_at, series, tags, summary, content, link, draft)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Slug, kind, e.Title, e.PublishedAt.Format(dateFormat),
		JoinList(normalizeNames(e.Series)), JoinList(normalizeNames(e.Tags)),
		e.Summary, e.Content, link, draft)
	return err
}

// DeleteEntry removes an entry by slug.
func (s *Store) DeleteEntry(slug string) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE slug = ?`, slug)
	return err
}

// normalizeNames trims, lowercases, and drops empty group names.
func normalizeNames(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// SaveImage records metadata for an uploaded image.
func (s *Store) SaveImage(img Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images
		(filename, original_name, width, height, size, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns all uploaded images, most recent upload first.
func (s *Store) ListImages() ([]Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at
		FROM images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes image metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}
