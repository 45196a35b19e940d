// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    string
		wantErr error
	}{
		"empty":           {in: "", want: "/"},
		"root":            {in: "/", want: "/"},
		"bare repo name":  {in: "staticsite", want: "/staticsite/"},
		"leading slash":   {in: "/staticsite", want: "/staticsite/"},
		"already slashed": {in: "/staticsite/", want: "/staticsite/"},
		"nested":          {in: "a/b", want: "/a/b/"},
		"only slashes":    {in: "//", wantErr: errBasePathInvalid},
		"with space":      {in: "static site", wantErr: errBasePathInvalid},
		"full URL":        {in: "https://example.com/x", wantErr: errBasePathInvalid},
		"with query":      {in: "staticsite?x=1", wantErr: errBasePathInvalid},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeBasePath(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NormalizeBasePath(%q): want error %v, got %v", tc.in, tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeBasePath(%q): want %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestRewriteBasePath(t *testing.T) {
	const page = `<!DOCTYPE html>
<html>
<head>
<link href="/index.css" rel="stylesheet"/>
</head>
<body>
<a href="/blog/first.html">first</a>
<a href="https://example.com/about">external</a>
<a href="//cdn.example.com/lib.js">protocol-relative</a>
<a href="#footnotes">anchor</a>
<img src="/images/logo.png"/>
</body>
</html>
`

	got, err := rewriteBasePath([]byte(page), "/staticsite/")
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)

	for _, want := range []string{
		`href="/staticsite/index.css"`,
		`href="/staticsite/blog/first.html"`,
		`src="/staticsite/images/logo.png"`,
		`href="https://example.com/about"`,
		`href="//cdn.example.com/lib.js"`,
		`href="#footnotes"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("rewritten page: %s is missing:\n%s", want, s)
		}
	}
	if strings.Contains(s, `href="/index.css"`) {
		t.Errorf("rewritten page still has a root-relative link:\n%s", s)
	}
}

func TestRewriteBasePathRoot(t *testing.T) {
	page := []byte(`<a href="/x">x</a>`)
	got, err := rewriteBasePath(page, "/")
	if err != nil {
		t.Fatal(err)
	}
	// With the root base path the page must pass through untouched.
	testutil.AssertEqual(t, got, page)
}
