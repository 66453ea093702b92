package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kevinaaaquil/bookshelf/config"
	"github.com/kevinaaaquil/bookshelf/handlers"
	"github.com/kevinaaaquil/bookshelf/service"
	"github.com/kevinaaaquil/bookshelf/store"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		port    int
	)
	cmd := &cobra.Command{
		Use:          "bookshelf",
		Short:        "In-memory bookshelf HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvFile(envFile)
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a .env file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")
	return cmd
}

func serve(cfg *config.Config) error {
	db := store.NewMemory()
	books := service.NewBookService(db, service.UUIDGenerator{}, service.SystemClock{})
	router := handlers.NewRouter(&handlers.BooksHandler{Books: books}, handlers.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Println("server listening on " + cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
		return err
	}
	log.Printf("server stopped with %d books in memory", db.Count())
	return nil
}
