package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docexport/internal/server"
	"github.com/jonathan/docexport/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP export server",
	Long:  `Start an HTTP server that accepts wizard payloads and returns exported files.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := servePort
	if port == 0 {
		port = appConfig.Server.Port
	}

	srv, err := server.New(server.Options{
		Port:           port,
		Service:        newService(nil), // responses carry the file
		AllowedOrigins: appConfig.Server.AllowedOrigins,
		MaxBodyBytes:   appConfig.Server.MaxBodyBytes,
		RateLimit:      ratelimit.LoadConfig(os.Getenv),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
