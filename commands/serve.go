package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ai-diagnostics/internal/api/web"
	"ai-diagnostics/internal/infrastructure/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}

		// Веб-интерфейс хранит выбор в форме, сессии ему не нужны
		c := newContainer(cfg, storage.NewMemorySessionRepository())
		srv := web.New(c, log, cfg.MaxUploadBytes)

		server := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      srv.Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, server, log)
	},
}

// runServer обслуживает запросы до отмены ctx, затем плавно останавливает сервер
func runServer(ctx context.Context, server *http.Server, log *pterm.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info("web UI listening", log.Args("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
