// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/graph-gophers/graphql-go/relay"
	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware stack.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → traceRequests → rateLimit → router
//
// Current endpoints:
//
//	GET  /v1/healthcheck – liveness plus environment and version info
//	POST /graphql        – the GraphQL endpoint (queries and mutations)
//	GET  /graphql        – GraphiQL, a browser IDE for exploring the schema
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	// relay.Handler decodes the {query, operationName, variables} POST
	// body, executes it against the schema, and writes the response
	// envelope. All GraphQL traffic flows through this one route.
	router.Handler(http.MethodPost, "/graphql", &relay.Handler{Schema: app.schema})
	router.HandlerFunc(http.MethodGet, "/graphql", app.graphiqlHandler)

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from the other middleware and the router alike.
	return app.recoverPanic(app.traceRequests(app.rateLimit(router)))
}
