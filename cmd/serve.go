package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abstractlab/yayi/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and scoring over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		origins, _ := cmd.Flags().GetStringSlice("cors-origin")
		timeout, _ := cmd.Flags().GetDuration("request-timeout")

		d, err := buildDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close()

		srv := &http.Server{
			Addr: addr,
			Handler: api.NewRouter(api.Options{
				Catalog:        d.catalog,
				Evaluator:      d.evaluator,
				AllowedOrigins: origins,
				RequestTimeout: timeout,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("yayi listening on %s (%s)", addr, d.catalogLabel)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-quit:
		}

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable); empty disables CORS")
	serveCmd.Flags().Duration("request-timeout", 90*time.Second, "Upper bound for one request, commentary included")
}
