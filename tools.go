//go:build tools
// +build tools

package tools

// Pins the goose CLI used to author new migrations under
// internal/database/migrations.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
