// cmd/api/main_test.go
package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
	"github.com/pagesmith/graphql-bookshelf/internal/graph"
)

// newTestApplication builds an applicationDependencies value backed by the
// default seed dataset with logging discarded and rate limiting switched
// off, so tests can fire as many requests as they like.
func newTestApplication(t *testing.T) *applicationDependencies {
	t.Helper()

	var settings serverConfig
	settings.environment = "testing"
	settings.limiter.enabled = false

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := data.NewStore(data.DefaultSeed())

	return &applicationDependencies{
		config: settings,
		logger: logger,
		store:  store,
		schema: graph.NewSchema(store, logger),
	}
}
