// Package migrations embeds the Spanner DDL files so the migrate command and
// the integration tests apply the same schema.
package migrations

import "embed"

// FS holds every *.sql file of this directory.
//
//go:embed *.sql
var FS embed.FS
