// Package graph binds the embedded GraphQL schema to resolvers backed by
// the in-memory store. The heavy lifting (parsing, validation, execution,
// response serialization) belongs to the graphql-go engine; this package
// supplies the schema text and one resolver method per schema field.
package graph

import (
	"context"
	_ "embed"
	"log/slog"

	graphql "github.com/graph-gophers/graphql-go"
	gqllog "github.com/graph-gophers/graphql-go/log"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the embedded schema against a resolver bound to store.
// Parsing panics on a schema/resolver mismatch, which is the behavior we
// want: a field without a resolver method is a programming error that
// should never reach a running server.
func NewSchema(store *data.Store, logger *slog.Logger) *graphql.Schema {
	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.MaxParallelism(20),
		graphql.Logger(&panicLogger{logger: logger}),
	}
	return graphql.MustParseSchema(schemaSDL, NewResolver(store), opts...)
}

// panicLogger routes resolver panics into the application logger instead
// of the engine's default stderr printer.
type panicLogger struct {
	logger *slog.Logger
}

var _ gqllog.Logger = (*panicLogger)(nil)

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", slog.Any("panic", value))
}
