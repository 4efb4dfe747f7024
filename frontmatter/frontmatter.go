// Package frontmatter splits markdown documents into a YAML metadata block
// and a body. It is the parsing half of the content import path; schema
// decisions (which fields exist) live in Meta.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Meta is the front-matter schema for a content file.
type Meta struct {
	Title   string     `yaml:"title"`
	Date    string     `yaml:"date"` // YYYY-MM-DD
	Kind    string     `yaml:"kind"` // "post" (default) or "project"
	Series  StringList `yaml:"series"`
	Tags    StringList `yaml:"tags"`
	Summary string     `yaml:"summary"`
	Link    string     `yaml:"link"` // external URL, mainly for projects
	Draft   bool       `yaml:"draft"`
}

// StringList decodes from either a YAML scalar or a sequence, so authors can
// write `series: go-editor` as well as `series: [go-editor, misc]`.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*l = StringList{s}
		} else {
			*l = nil
		}
		return nil
	case yaml.SequenceNode:
		var vals []string
		if err := value.Decode(&vals); err != nil {
			return err
		}
		*l = StringList(vals)
		return nil
	default:
		return fmt.Errorf("front matter: expected string or list, got yaml kind %d", value.Kind)
	}
}

// Split parses src into its front-matter metadata and markdown body.
// The document must open with a `---` line followed by YAML and a closing
// `---` line; everything after the closing line is the body.
func Split(src []byte) (Meta, string, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	if !strings.HasPrefix(text, delimiter+"\n") {
		return Meta{}, "", fmt.Errorf("front matter: document does not start with %q", delimiter)
	}
	rest := text[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return Meta{}, "", fmt.Errorf("front matter: missing closing %q", delimiter)
	}
	block := rest[:end+1]
	body := rest[end+1+len(delimiter):]
	body = strings.TrimPrefix(body, "\n")

	var meta Meta
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Meta{}, "", fmt.Errorf("front matter: %w", err)
	}
	return meta, body, nil
}
