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
	listen string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.listen, "listen", "localhost:8888", "Listen on `host:port`.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	dir := filepath.Join(".", "public")
	if len(flag.Args()) > 0 {
		dir = flag.Args()[0]
	}

	cfg := &site.Config{
		Src: ".",
		Dst: dir,
	}
	return site.Serve(ctx, cfg, a.listen)
}
