package inkpress

import (
	"strings"
	"time"
)

// Entry kinds stored in the content table.
const (
	KindPost    = "post"
	KindProject = "project"
)

// ContentEntry is the core content type stored in SQLite and rendered by
// templates. Posts and projects share the same shape; Kind tells them apart.
type ContentEntry struct {
	Slug        string
	Title       string
	Kind        string
	Series      []string
	Tags        []string
	Summary     string
	Link        string // on-site URL for posts; external URL (repo, demo) for projects, may be empty
	Content     string
	PublishedAt time.Time
	Draft       bool
}

// Image is metadata for an uploaded image file.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// ParseList splits a comma-delimited list string (e.g. ",go,web,") into a slice.
func ParseList(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// JoinList serializes values for storage, delimiting with commas on both ends
// so membership can be tested with a substring match in SQL.
func JoinList(vals []string) string {
	return "," + strings.Join(vals, ",") + ","
}
