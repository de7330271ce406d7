//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod; not imported by the service itself.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
)
