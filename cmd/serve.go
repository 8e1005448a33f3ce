package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graphql-go/handler"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corpdir/corpdir/internal/graph"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphQL Playground at /graphql (GET) for interactive queries
  - Health check at /healthz

Examples:
  # Start server on the configured port
  corpdir serve

  # Start server on a custom port
  corpdir serve --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	schema, err := graph.NewSchema(&graph.Resolver{Store: store})
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}

	gqlHandler := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: true,
	})

	// Set up routes
	mux := http.NewServeMux()
	mux.Handle("/graphql", gqlHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"ok"}`)
	})

	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":   server.Addr,
			"driver": cfg.Database.Driver,
		}).Info("starting server")
		logrus.Infof("GraphQL Playground: http://localhost:%d/graphql", port)
		serverErr <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logrus.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logrus.Info("server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
