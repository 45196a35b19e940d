//usr/bin/env go run $0 $@; exit $?

// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build ignore

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ScottRButler/staticsite/internal/site"
)

func main() {
	log.SetFlags(0)

	var (
		basePathFlag = flag.String("base-path", "staticsite", "Host the site under `prefix` (a bare repository name becomes /name/).")
		skipFeedFlag = flag.Bool("skip-feed", false, "Don't generate the Atom feed.")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ./build.go [flags] [dir]\n")
		fmt.Fprintf(os.Stderr, "Available flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Check if we are executed from the repo root.
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(wd, "go.mod")); os.IsNotExist(err) {
		log.Fatal("Are you at repo root?")
	} else if err != nil {
		log.Fatal(err)
	}

	dir := filepath.Join(".", "docs")
	if len(flag.Args()) > 0 {
		dir = flag.Args()[0]
	}

	basePath, err := site.NormalizeBasePath(*basePathFlag)
	if err != nil {
		log.Fatal(err)
	}

	c := &site.Config{
		Src:      ".",
		Dst:      dir,
		BasePath: basePath,
		SkipFeed: *skipFeedFlag,
	}

	if err := site.Build(c); err != nil {
		log.Fatal(err)
	}
}
