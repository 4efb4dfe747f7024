package inkpress

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inkpress/inkpress/frontmatter"
)

// ImportDir walks dir for markdown files and upserts each one into the store.
// The slug is derived from the filename (posts/hello-world.md -> hello-world);
// everything else comes from the front matter. Returns the number of entries
// imported. A file with bad front matter or a bad date aborts the import.
func (s *Store) ImportDir(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		entry, err := readEntryFile(path)
		if err != nil {
			return err
		}
		if err := s.SaveEntry(entry); err != nil {
			return fmt.Errorf("save %s: %w", entry.Slug, err)
		}
		count++
		return nil
	})
	return count, err
}

func readEntryFile(path string) (ContentEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ContentEntry{}, err
	}
	meta, body, err := frontmatter.Split(raw)
	if err != nil {
		return ContentEntry{}, fmt.Errorf("%s: %w", path, err)
	}
	publishedAt, err := time.Parse(dateFormat, meta.Date)
	if err != nil {
		return ContentEntry{}, fmt.Errorf("%s: bad date %q: %w", path, meta.Date, err)
	}
	slug := Slugify(strings.TrimSuffix(filepath.Base(path), ".md"))
	if slug == "" {
		return ContentEntry{}, fmt.Errorf("%s: filename yields empty slug", path)
	}
	kind := meta.Kind
	if kind == "" {
		kind = KindPost
	}
	return ContentEntry{
		Slug:        slug,
		Kind:        kind,
		Title:       meta.Title,
		Series:      meta.Series,
		Tags:        meta.Tags,
		Summary:     meta.Summary,
		Link:        strings.TrimSpace(meta.Link),
		Content:     strings.TrimSpace(body),
		PublishedAt: publishedAt,
		Draft:       meta.Draft,
	}, nil
}
