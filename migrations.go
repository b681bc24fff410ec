// Package settleup holds assets shared by the binaries of the service.
package settleup

import "embed"

// Migrations contains the goose SQL migrations of the service.
//
//go:embed migrations/*.sql
var Migrations embed.FS
