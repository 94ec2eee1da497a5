package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/panelverse-api/config"
	"github.com/andrewpaige1/panelverse-api/handlers"
	"github.com/andrewpaige1/panelverse-api/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, _, svc, err := setup(ctx, true)
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return errors.New("serve: JWT_SECRET_KEY not set")
		}

		// Images orphaned by a crash during an earlier publish.
		report, err := svc.SweepPendingPublishes(ctx, config.Duration(cfg.PendingPublishTTL))
		if err != nil {
			log.Printf("serve: startup sweep failed: %v", err)
		} else if report.Abandoned > 0 {
			log.Printf("serve: startup sweep removed %d abandoned publishes", report.Abandoned)
		}

		secret := []byte(cfg.JWTSecret)
		h := handlers.NewHandler(svc, secret, config.Duration(cfg.SessionTTL), cfg.Environment())
		mux := http.NewServeMux()
		h.RegisterRoutes(mux, middleware.RequireSession(svc, secret))

		// Configure CORS with specific options
		corsHandler := cors.New(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
			AllowCredentials: true,
			MaxAge:           86400,
		}).Handler(mux)

		server := &http.Server{
			Addr:              "0.0.0.0:" + cfg.Port,
			Handler:           corsHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("serve: shutdown error: %v", err)
			}
		}()

		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Printf("Server shutting down...")
		return nil
	},
}
