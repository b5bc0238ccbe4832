// Package content loads the editorial storefront content: collection
// pages authored as YAML-fronted markdown files. Rendered HTML is
// sanitized before it reaches a template.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Collection is one curated product collection shown on /collections.
type Collection struct {
	Slug    string
	Title   string
	Summary string
	Image   string
	Order   int
	Body    template.HTML
}

type collectionFrontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Image   string `yaml:"image"`
	Order   int    `yaml:"order"`
}

var sanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// LoadCollections reads every .md file under dir. Files that fail to
// parse are skipped; a missing directory yields an empty slice so pages
// degrade to their empty state instead of erroring.
func LoadCollections(dir string) ([]Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var out []Collection
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		c, err := parseCollection(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func parseCollection(path string) (Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, err
	}
	fm, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Collection{}, err
	}
	var meta collectionFrontMatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return Collection{}, fmt.Errorf("front matter: %w", err)
	}
	html, err := RenderMarkdown(body)
	if err != nil {
		return Collection{}, err
	}
	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	title := meta.Title
	if title == "" {
		title = slug
	}
	return Collection{
		Slug:    slug,
		Title:   title,
		Summary: meta.Summary,
		Image:   meta.Image,
		Order:   meta.Order,
		Body:    html,
	}, nil
}

// splitFrontMatter separates a leading "---" YAML block from the
// markdown body. A file without front matter is all body.
func splitFrontMatter(src string) (fm, body string, err error) {
	if !strings.HasPrefix(src, "---\n") {
		return "", src, nil
	}
	rest := src[len("---\n"):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", "", fmt.Errorf("unterminated front matter")
	}
	fm = rest[:idx]
	body = rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return fm, body, nil
}
