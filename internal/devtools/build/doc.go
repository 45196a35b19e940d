// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Build builds the site for deployment.

# Usage

	$ go tool build [flags] [dir]

Builds the site into the specified directory dir. If dir is not provided,
it defaults to docs in the current working directory, which is what GitHub
Pages serves project sites from.

The -base-path flag sets the URL prefix under which the site is hosted.
A bare repository name is turned into /name/, so

	$ go tool build -base-path staticsite

rewrites every root-relative link to start with /staticsite/.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
