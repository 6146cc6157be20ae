// Package views embeds the server-rendered HTML templates.
package views

import "embed"

//go:embed *.html layouts/*.html users/*.html campgrounds/*.html
var FS embed.FS
