package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadCollectionsOrdersAndRenders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "retro-court.md", `---
title: Retro Court
summary: Heritage silhouettes, reissued.
image: /assets/img/retro.webp
order: 2
---
Low-profile **court classics** from the archive.
`)
	writeFile(t, dir, "trail-pack.md", `---
title: Trail Pack
summary: Grip for wet stone and mud.
image: /assets/img/trail.webp
order: 1
---
Built for the ridge line.
`)

	cols, err := LoadCollections(dir)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "trail-pack", cols[0].Slug)
	require.Equal(t, "Retro Court", cols[1].Title)
	require.Contains(t, string(cols[1].Body), "<strong>court classics</strong>")
}

func TestLoadCollectionsMissingDir(t *testing.T) {
	cols, err := LoadCollections(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Empty(t, cols)
}

func TestLoadCollectionsSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.md", "---\ntitle: OK\n---\nbody\n")
	writeFile(t, dir, "broken.md", "---\ntitle: [unterminated\n")
	cols, err := LoadCollections(dir)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	require.Equal(t, "OK", cols[0].Title)
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script> *world*")
	require.NoError(t, err)
	s := string(html)
	require.NotContains(t, s, "<script>")
	require.Contains(t, s, "<em>world</em>")
	require.True(t, strings.Contains(s, "hello"))
}

func TestSplitFrontMatterWithoutBlock(t *testing.T) {
	fm, body, err := splitFrontMatter("just markdown")
	require.NoError(t, err)
	require.Empty(t, fm)
	require.Equal(t, "just markdown", body)
}
