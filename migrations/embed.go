// Package migrations holds the goose SQL migrations for the travel agency
// schema. cmd/migrate applies them in deployments; repository tests apply
// them from TestMain.
package migrations

import "embed"

// FS is handed to goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
