package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/providers"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/internal/server"
	"github.com/shashiranjanraj/storefront/pkg/app"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/router"
	"github.com/shashiranjanraj/storefront/pkg/ws"
)

// storefront serve: ensure schema, seed an empty catalog, then serve HTTP
// (and gRPC health when GRPC_PORT is set) until SIGINT/SIGTERM.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	db, err := bootDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	if err := seeders.RunAll(ctx, db); err != nil {
		return err
	}

	store := connectCache(ctx)

	feed := ws.NewHub(nil)
	go feed.Run(ctx)

	c := providers.New(db, providers.Options{
		Cache:    store,
		CacheTTL: config.CacheTTL(),
		Feed:     feed,
	})
	defer c.Close()

	handler, err := app.New().
		Routes(func(r *router.Router) error { return routes.RegisterAPI(r, c) }).
		Handler()
	if err != nil {
		return err
	}

	return server.Run(ctx, handler, server.Options{
		Addr:     net.JoinHostPort("", config.AppPort()),
		GRPCPort: config.GRPCPort(),
		Health:   pinger(db),
	})
}

// connectCache returns a Redis store, or nil when REDIS_ADDR is unset or
// unreachable. The catalog works without it.
func connectCache(ctx context.Context) cache.Store {
	addr := config.RedisAddr()
	if addr == "" {
		return nil
	}
	rc, err := cache.Connect(ctx, addr, config.RedisPassword())
	if err != nil {
		logger.Warn("cache disabled", "addr", addr, "error", err)
		return nil
	}
	logger.Info("cache enabled", "addr", addr)
	return rc
}

func pinger(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// storefront route:list prints all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Routes only need the container's shape, not a live database.
		c := providers.New(&gorm.DB{}, providers.Options{Feed: ws.NewHub(nil)})
		defer c.Close()

		r, err := app.New().
			Routes(func(r *router.Router) error { return routes.RegisterAPI(r, c) }).
			Router()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
