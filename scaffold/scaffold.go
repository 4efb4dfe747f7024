// Package scaffold provides embedded template files for the inkpress CLI.
// The project/ subtree scaffolds a whole site; post.md.tmpl scaffolds a
// single front-mattered content file.
package scaffold

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
