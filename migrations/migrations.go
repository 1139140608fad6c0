// Package migrations embeds the goose SQL migrations so the server can apply
// them at startup without shipping files next to the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
