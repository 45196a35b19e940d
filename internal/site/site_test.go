// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeSite writes a minimal site source tree into dir.
func writeSite(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"template.html": `<!DOCTYPE html>
<html>
  <head>
    <title>{{ .Title }}</title>
    <link href="/index.css" rel="stylesheet"/>
  </head>
  <body>
    <article>{{ .Content }}</article>
  </body>
</html>
`,
		"content/index.md": `# Hello, world!

Welcome. Read the [first post](/blog/first.html).

![logo](/images/logo.png)
`,
		"content/contact.md": `# Contact

Write me a letter.
`,
		"content/blog/first.md": `# The First Post

Nothing to see here _yet_.
`,
		"static/index.css": `body {
	margin: 0 auto;
}
`,
	}

	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestBuild(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSite(t, srcDir)

	if err := Build(&Config{
		Src:         srcDir,
		Dst:         dstDir,
		feedCreated: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}

	// Every content/a/b.md must become a/b.html, preserving the tree.
	for _, name := range []string{
		"index.html",
		"contact.html",
		"blog/first.html",
		"index.css",
		"feed.xml",
		"robots.txt",
	} {
		if _, err := os.Stat(filepath.Join(dstDir, filepath.FromSlash(name))); err != nil {
			t.Errorf("%s is missing from the built site: %v", name, err)
		}
	}

	index := readOutput(t, dstDir, "index.html")
	if !strings.Contains(index, "<title>Hello, world!</title>") {
		t.Errorf("index.html: title not rendered from the first H1:\n%s", index)
	}
	if !strings.Contains(index, "Welcome.") {
		t.Errorf("index.html: page content is missing:\n%s", index)
	}
	// Without a base path links must be left as is.
	if strings.Contains(index, "/staticsite/") {
		t.Errorf("index.html: links rewritten without a base path:\n%s", index)
	}
}

func TestBuildWithBasePath(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSite(t, srcDir)

	if err := Build(&Config{
		Src:      srcDir,
		Dst:      dstDir,
		BasePath: "/staticsite/",
	}); err != nil {
		t.Fatal(err)
	}

	index := readOutput(t, dstDir, "index.html")
	for _, want := range []string{
		"/staticsite/index.css",
		"/staticsite/blog/first.html",
		"/staticsite/images/logo.png",
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html: %s not rewritten with the base path:\n%s", want, index)
		}
	}
}

func TestBuildCleansPreviousOutput(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSite(t, srcDir)

	stale := filepath.Join(dstDir, "stale.html")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Build(&Config{Src: srcDir, Dst: dstDir}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(stale); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("stale.html survived a rebuild: %v", err)
	}
}

func TestBuildMissingTitle(t *testing.T) {
	srcDir := t.TempDir()
	writeSite(t, srcDir)
	if err := os.WriteFile(filepath.Join(srcDir, "content", "bad.md"), []byte("No heading here.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Build(&Config{Src: srcDir, Dst: t.TempDir()})
	if !errors.Is(err, errTitleMissing) {
		t.Fatalf("want %v, got %v", errTitleMissing, err)
	}
}

func TestBuildSkipFeed(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSite(t, srcDir)

	if err := Build(&Config{Src: srcDir, Dst: dstDir, SkipFeed: true}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "feed.xml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("feed.xml built despite SkipFeed: %v", err)
	}
}

func TestBuildFeed(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSite(t, srcDir)

	if err := Build(&Config{
		Src:         srcDir,
		Dst:         dstDir,
		feedCreated: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}

	feed := readOutput(t, dstDir, "feed.xml")
	for _, want := range []string{
		"<title>Tolkien Fan Club</title>",
		"The First Post",
		"scottrbutler.github.io/staticsite",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed.xml: %s is missing:\n%s", want, feed)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	cases := map[string]struct {
		md      string
		want    string
		wantErr error
	}{
		"simple":             {md: "# Hello\n\nWorld.\n", want: "Hello"},
		"leading whitespace": {md: "  # Hello\n", want: "Hello"},
		"trailing spaces":    {md: "# Hello   \n", want: "Hello"},
		"first of many":      {md: "# One\n\n# Two\n", want: "One"},
		"after paragraph":    {md: "Intro.\n\n# Title\n", want: "Title"},
		"h2 only":            {md: "## Not a title\n", wantErr: errTitleMissing},
		"empty":              {md: "", wantErr: errTitleMissing},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := extractTitle(tc.md)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("extractTitle(%q): want error %v, got %v", tc.md, tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("extractTitle(%q): want %q, got %q", tc.md, tc.want, got)
			}
		})
	}
}
