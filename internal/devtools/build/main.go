// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/ScottRButler/staticsite/internal/devtools"
	"github.com/ScottRButler/staticsite/internal/site"

	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	basePath string
	skipFeed bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.basePath, "base-path", "staticsite", "Host the site under `prefix` (a bare repository name becomes /name/).")
	fs.BoolVar(&a.skipFeed, "skip-feed", false, "Don't generate the Atom feed.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	dir := filepath.Join(".", "docs")
	if len(flag.Args()) > 0 {
		dir = flag.Args()[0]
	}

	basePath, err := site.NormalizeBasePath(a.basePath)
	if err != nil {
		return err
	}

	cfg := &site.Config{
		Src:      ".",
		Dst:      dir,
		BasePath: basePath,
		SkipFeed: a.skipFeed,
	}
	return site.Build(cfg)
}
