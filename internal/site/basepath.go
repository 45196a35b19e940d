// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeBasePath returns the URL prefix for a site hosted under a
// subdirectory. A bare repository name becomes /<name>/, an already slashed
// prefix keeps its form:
//
//	NormalizeBasePath("staticsite")  // "/staticsite/"
//	NormalizeBasePath("/staticsite") // "/staticsite/"
//	NormalizeBasePath("/")           // "/"
func NormalizeBasePath(s string) (string, error) {
	if s == "" || s == "/" {
		return "/", nil
	}
	if strings.Contains(s, "://") || strings.ContainsAny(s, " ?#") {
		return "", fmt.Errorf("%w: %q", errBasePathInvalid, s)
	}
	trimmed := strings.Trim(s, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: %q", errBasePathInvalid, s)
	}
	return "/" + trimmed + "/", nil
}

// rewriteBasePath prefixes every root-relative href and src attribute in the
// page with the base path, so that links keep working when the site is hosted
// under a subdirectory. Protocol-relative URLs (//host/...) are left alone.
func rewriteBasePath(page []byte, basePath string) ([]byte, error) {
	if basePath == "/" {
		return page, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			v, ok := s.Attr(attr)
			if !ok {
				return
			}
			if !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
				return
			}
			s.SetAttr(attr, basePath+strings.TrimPrefix(v, "/"))
		})
	}

	out, err := doc.Html()
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
