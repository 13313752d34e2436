// cmd/api/handlers.go
// This file contains the HTTP handlers that sit beside the GraphQL
// endpoint: the healthcheck and the GraphiQL browser page. The GraphQL
// operations themselves are handled by the relay handler wired up in
// routes.go.
package main

import (
	_ "embed"
	"net/http"
)

//go:embed graphiql.html
var graphiqlPage []byte

// healthcheckHandler handles GET /v1/healthcheck.
// It reports that the server is up along with the configured environment
// and the application version, which is handy for smoke tests and
// container orchestration probes.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status": "available",
		"system_info": envelope{
			"environment": app.config.environment,
			"version":     appVersion,
		},
	}

	err := app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// graphiqlHandler handles GET /graphql.
// It serves the embedded GraphiQL page, which loads its assets from a CDN
// and sends every operation to POST /graphql on this server.
func (app *applicationDependencies) graphiqlHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(graphiqlPage)
}
