// Package views embeds the HTML templates rendered by the server.
package views

import "embed"

// FS holds every template, keyed by its path relative to this directory.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
