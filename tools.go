//go:build tools
// +build tools

package tools

// Development tools pinned in go.mod:
//   goose      migrations outside the app (cmd/setup runs them embedded)
//   sqlc       regenerates internal/database/generated from internal/database/queries
//   swag       regenerates the OpenAPI docs from handler annotations
//   mockery    regenerates mocks/ from .mockery.yaml
//   benchstat  compares runs of benchmarks/inventory

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
