// Package main is the entry point for the bookshelf GraphQL server.
// It wires together configuration, the seed dataset, the parsed schema,
// and the HTTP router.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
	"github.com/pagesmith/graphql-bookshelf/internal/graph"
	"github.com/pagesmith/graphql-bookshelf/internal/otel"
)

// appVersion is the current version of the API, shown in logs and in the
// healthcheck response.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via command-line flags.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	seedFile    string // Optional YAML file replacing the built-in seed dataset
	limiter     struct {
		enabled bool    // Per-IP rate limiting on or off
		rps     float64 // Sustained requests per second allowed per IP
		burst   int     // Burst capacity per IP
	}
	otel struct {
		endpoint string // OTLP gRPC collector endpoint; empty keeps tracing off
		service  string // Service name reported on spans
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig    // Server configuration loaded from flags
	logger *slog.Logger    // Structured logger that writes to stdout
	store  *data.Store     // In-memory dataset behind every resolver
	schema *graphql.Schema // Parsed GraphQL schema bound to the store
}

// main is the application entry point.
// It parses flags, loads the seed dataset, parses the schema, and starts
// the HTTP server.
func main() {
	var settings serverConfig

	// Register command-line flags so operators can override defaults at runtime.
	flag.IntVar(&settings.port, "port", 4000, "Server port")
	flag.StringVar(&settings.environment, "env", "development", "Environment(development|staging|production)")
	flag.StringVar(&settings.seedFile, "seed-file", "", "YAML seed dataset (empty uses the built-in seed)")
	flag.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable per-IP rate limiting")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter sustained requests per second")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter burst size")
	flag.StringVar(&settings.otel.endpoint, "otel-endpoint", "", "OTLP trace collector endpoint (empty disables tracing)")
	flag.StringVar(&settings.otel.service, "otel-service", "bookshelf", "Service name reported on trace spans")

	flag.Parse()

	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Pick the seed dataset: the built-in one, or a YAML file when the
	// operator supplies one. resetData restores whichever was loaded here.
	seed := data.DefaultSeed()
	if settings.seedFile != "" {
		var err error
		seed, err = data.LoadSeedFile(settings.seedFile)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Info("seed dataset loaded",
			"path", settings.seedFile,
			"authors", len(seed.Authors),
			"books", len(seed.Books))
	}

	store := data.NewStore(seed)

	// Parsing the schema panics on a schema/resolver mismatch, so a broken
	// build dies here at startup instead of on the first request.
	schema := graph.NewSchema(store, logger)

	// Wire up tracing. With no endpoint configured this is a no-op and the
	// shutdown function does nothing.
	shutdownTracing, err := otel.Setup(context.Background(), settings.otel.endpoint, settings.otel.service)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error(err.Error())
		}
	}()
	if settings.otel.endpoint != "" {
		logger.Info("trace exporter configured",
			"endpoint", settings.otel.endpoint,
			"service", settings.otel.service)
	}

	// Bundle all shared dependencies into a single struct.
	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		store:  store,
		schema: schema,
	}

	// serve blocks until the server stops; any error it returns is fatal.
	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
