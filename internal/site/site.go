// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package site generates a static site from Markdown content.

# Directory Structure

A site is built from the following files, relative to [Config.Src]:

	content        Markdown sources. Every content/a/b.md becomes a/b.html
	               in the generated site, preserving the directory tree.
	               Non-Markdown files in this directory are ignored.
	static         Files in this directory are copied verbatim into the
	               generated site. CSS, JavaScript and JSON are minified
	               on the way.
	template.html  The template that wraps every page. It is a Go HTML
	               template with .Title and .Content available.

The generated site is written to the public directory by default, or to
docs when building for deployment.

# Pages

Each page must contain an H1 heading; the text of the first one becomes the
page title. A page without an H1 is a build error.

When a site is hosted under a subdirectory (for example, GitHub Pages
project sites live under /<repo>/), a base path can be set and every
root-relative link and asset reference in the generated pages is rewritten
to include it. See [NormalizeBasePath].
*/
package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	mjson "github.com/tdewolff/minify/v2/json"
	"rsc.io/markdown"
)

// Possible errors, used in tests.
var (
	errTitleMissing    = errors.New("no H1 heading found")
	errBasePathInvalid = errors.New("invalid base path")
)

// Config represents a build configuration.
type Config struct {
	// Title is the title of the site, used in the feed.
	Title string
	// Author is the name of the author of the site, used in the feed.
	Author string
	// BaseURL is the absolute URL of the deployed site, used to derive feed
	// links.
	BaseURL *url.URL
	// BasePath is the URL prefix under which the site is hosted, for example
	// /staticsite/. Root-relative links and asset references in generated
	// pages are rewritten with it. If empty, / is used and pages are left
	// as is.
	BasePath string
	// Src is the directory where to read files from. If empty, uses the
	// current directory.
	Src string
	// Dst is the directory where to write files. If empty, uses the public
	// directory.
	Dst string
	// SkipFeed determines if the feed for site shouldn't be built.
	SkipFeed bool

	feedCreated time.Time // used in tests
}

func (c *Config) setDefaults() {
	if c == nil {
		c = &Config{}
	}

	if c.Title == "" {
		c.Title = "Tolkien Fan Club"
	}

	if c.Author == "" {
		c.Author = "Scott R. Butler"
	}

	if c.BaseURL == nil {
		c.BaseURL = &url.URL{
			Scheme: "https",
			Host:   "scottrbutler.github.io",
			Path:   "/staticsite",
		}
	}

	if c.BasePath == "" {
		c.BasePath = "/"
	}

	if c.Src == "" {
		c.Src = filepath.Join(".")
	}

	if c.Dst == "" {
		c.Dst = filepath.Join(".", "public")
	}
}

// Build builds a site based on the provided [Config].
func Build(c *Config) error {
	c.setDefaults()
	b := newBuildContext(c)

	// Parse the template and pages.
	tpl, err := template.ParseFiles(filepath.Join(c.Src, "template.html"))
	if err != nil {
		return err
	}
	b.tpl = tpl
	if err := filepath.WalkDir(filepath.Join(c.Src, "content"), b.parsePages); err != nil {
		return err
	}

	// Sort pages by modification time, newest first. The feed relies on this
	// order.
	sort.SliceStable(b.pages, func(i, j int) bool {
		return b.pages[i].modTime.After(b.pages[j].modTime)
	})

	// Clean up after previous build.
	if _, err := os.Stat(c.Dst); err == nil {
		if err := os.RemoveAll(c.Dst); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(c.Dst, 0o755); err != nil {
		return err
	}

	// Build pages.
	for _, p := range b.pages {
		dst := filepath.Join(c.Dst, filepath.FromSlash(strings.TrimPrefix(p.Route, "/")))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		f, err := os.Create(dst)
		if err != nil {
			return err
		}
		if err := p.build(b, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if !c.SkipFeed {
		if err := b.buildFeed(); err != nil {
			return err
		}
	}

	// Write robots.txt.
	if err := os.WriteFile(filepath.Join(c.Dst, "robots.txt"), []byte(robotsTxt), 0o644); err != nil {
		return err
	}

	// Copy static files. A site without them is fine.
	staticDir := filepath.Join(c.Src, "static")
	if _, err := os.Stat(staticDir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(staticDir, b.copyStatic)
}

const robotsTxt = `User-agent: *
`

type min struct {
	m *minify.M
}

func newMin() *min {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags:    true,
		KeepDefaultAttrVals: true,
		KeepEndTags:         true,
	})
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", mjson.Minify)

	return &min{m: m}
}

func (m *min) Bytes(mediaType string, b []byte) ([]byte, error) {
	return m.m.Bytes(mediaType, b)
}

type buildContext struct {
	c     *Config
	md    *markdown.Parser
	tpl   *template.Template
	pages []*Page
	min   *min
}

func newBuildContext(c *Config) *buildContext {
	return &buildContext{
		c: c,
		md: &markdown.Parser{
			HeadingID:          true,
			Strikethrough:      true,
			TaskList:           true,
			AutoLinkText:       true,
			AutoLinkAssumeHTTP: true,
			Table:              true,
			Emoji:              true,
			SmartDot:           true,
			SmartDash:          true,
			SmartQuote:         true,
			Footnote:           true,
		},
		min: newMin(),
	}
}

func (b *buildContext) parsePages(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if d.IsDir() || isIgnorable(path) {
		return nil
	}
	if filepath.Ext(path) != ".md" {
		return nil
	}

	fi, err := d.Info()
	if err != nil {
		return err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	p := &Page{path: path, source: buf, modTime: fi.ModTime()}

	p.Title, err = extractTitle(string(buf))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rel, err := filepath.Rel(filepath.Join(b.c.Src, "content"), path)
	if err != nil {
		return err
	}
	p.Route = "/" + filepath.ToSlash(strings.TrimSuffix(rel, ".md")+".html")

	b.pages = append(b.pages, p)

	return nil
}

func (b *buildContext) copyStatic(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}

	if d.IsDir() || isIgnorable(path) {
		return nil
	}

	rel, err := filepath.Rel(filepath.Join(b.c.Src, "static"), path)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var mediaType string
	switch filepath.Ext(path) {
	case ".css":
		mediaType = "text/css"
	case ".js":
		mediaType = "application/javascript"
	case ".json":
		mediaType = "application/json"
	}
	if mediaType != "" {
		minified, err := b.min.Bytes(mediaType, buf)
		if err != nil {
			return err
		}
		buf = minified
	}

	dst := filepath.Join(b.c.Dst, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, buf, 0o644)
}

func isIgnorable(path string) bool {
	// Ignore files that look like Vim backups.
	if strings.HasSuffix(path, "~") {
		return true
	}

	// Ignore .gitignore files.
	if strings.Contains(path, ".gitignore") {
		return true
	}

	return false
}

// Page represents a single generated page.
type Page struct {
	Title string // text of the first H1 heading
	Route string // slash-separated output path, e.g. /blog/glorfindel.html

	path    string // path to the page source
	source  []byte // Markdown source
	modTime time.Time
}

// extractTitle returns the text of the first H1 heading in the Markdown
// source. Leading whitespace before the heading marker is allowed.
func extractTitle(md string) (string, error) {
	for line := range strings.Lines(md) {
		line = strings.TrimLeft(line, " \t")
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after), nil
		}
	}
	return "", errTitleMissing
}

func (p *Page) build(b *buildContext, w io.Writer) error {
	doc := b.md.Parse(string(p.source))

	data := struct {
		Title   string
		Content template.HTML
	}{
		Title: p.Title,
		// The Markdown renderer already produced HTML, don't escape it again.
		Content: template.HTML(markdown.ToHTML(doc)),
	}

	var buf bytes.Buffer
	if err := b.tpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%s: failed to execute template: %w", p.path, err)
	}

	page, err := rewriteBasePath(buf.Bytes(), b.c.BasePath)
	if err != nil {
		return fmt.Errorf("%s: %w", p.path, err)
	}

	minified, err := b.min.Bytes("text/html", page)
	if err != nil {
		return err
	}

	_, err = w.Write(minified)
	return err
}

func (b *buildContext) buildFeed() error {
	feed := &feeds.Feed{
		Title:   b.c.Title,
		Link:    &feeds.Link{Href: b.c.BaseURL.String() + "/"},
		Author:  &feeds.Author{Name: b.c.Author},
		Created: time.Now(),
	}

	if !b.c.feedCreated.IsZero() {
		feed.Created = b.c.feedCreated
	}

	for _, p := range b.pages {
		pu := *b.c.BaseURL
		pu.Path = path.Join(pu.Path, p.Route)

		feed.Items = append(feed.Items, &feeds.Item{
			Title:   p.Title,
			Link:    &feeds.Link{Href: pu.String()},
			Author:  feed.Author,
			Created: p.modTime,
		})
	}

	bf, err := feed.ToAtom()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.c.Dst, "feed.xml"), []byte(bf), 0o644)
}
