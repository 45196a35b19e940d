// © 2025 Scott R. Butler. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package staticsite is the root of a Markdown static site.

The site is generated by the internal/site package from the content,
static and template.html sources in this directory. Two commands drive it:

	$ go tool serve

performs a build into the public directory and serves it on
localhost:8888, rebuilding on changes, and

	$ go tool build -base-path staticsite

builds the deployable site into the docs directory with every
root-relative link prefixed by /staticsite/, ready for GitHub Pages.

The ./serve.go and ./build.go scripts at the repo root do the same and
exist so that the site can be worked on with nothing but a Go toolchain:

	$ ./serve.go
	$ ./build.go
*/
package staticsite
