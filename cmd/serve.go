package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/api"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the chat and dashboard front-ends",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides BANDWISE_ADDR)")
}

// runServer opens the store, builds the service and serves HTTP until
// SIGINT or SIGTERM.
func runServer(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := stderrLogger()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := buildService(ctx, st, logger)
	if err != nil {
		return err
	}
	go svc.Store().RunJanitor(ctx, cfg.JanitorInterval())

	addr := cfg.Addr
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Value.String() != "" {
		addr = f.Value.String()
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr: addr,
		Handler: api.NewRouter(svc, api.Options{
			CORSOrigins: cfg.CORSOrigins,
			Logger:      logger,
		}),
		ReadTimeout: 15 * time.Second,
		// Generation and translation may take up to ExternalTimeout each.
		WriteTimeout: 2*cfg.ExternalTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
