// Package migrations embeds the SQL schema migrations so both the server
// startup path and integration tests apply the exact same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
