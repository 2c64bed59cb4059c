package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dhootha/api"
	"dhootha/config"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = cfg.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := buildComponents(ctx, *cfg)
			defer c.Close()

			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           api.NewRouter(c.routerDeps(*cfg)),
				ReadHeaderTimeout: 10 * time.Second,
			}

			log.Printf("Starting API server on %s", srv.Addr)
			log.Println("API endpoints available:")
			log.Println("  GET  /api/health")
			log.Println("  GET  /api/options")
			log.Println("  POST /api/news/fetch")
			log.Println("  GET  /api/usage")
			log.Println("  GET  /api/archive/:date/:id")
			log.Println("  GET  /metrics")

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Println("Shutting down API server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	return cmd
}
