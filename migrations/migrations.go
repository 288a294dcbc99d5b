// Package migrations embeds the schema files applied by db.Migrate.
// Each dialect keeps its own directory; files run in lexical order.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
