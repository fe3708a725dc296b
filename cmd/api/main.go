package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hoshloop/hoshloop-services/api/internal/config"
	"github.com/hoshloop/hoshloop-services/api/internal/server"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	root := &cobra.Command{
		Use:   "hoshloop-api",
		Short: "Restaurant feedback and menu API server",
	}
	root.AddCommand(serveCommand())

	// Running without a subcommand serves, matching the container entrypoint.
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return serve()
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("mongodb connection failed: %w", err)
	}

	app := server.New(cfg, client)
	return app.Run()
}
