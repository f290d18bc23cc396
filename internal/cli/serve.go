package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pgfplots/pkg/server"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   compileFlags
		addr    string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render and compile HTTP API",
		Long: `Serve figure rendering and compilation over HTTP.

Routes: GET /healthz, POST /v1/render, POST /v1/compile. Scratch directories
are always unique per request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.effective(cmd.Flags().Changed, flags)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, dataDir, cfg)
		},
	}

	addCompileFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	registerEngineCompletion(cmd)
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory figures may read data files from (disabled when empty)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, dataDir string, cfg Config) error {
	logger := loggerFromContext(ctx)

	store, err := newCache(!cfg.Cache)
	if err != nil {
		return err
	}
	srv := server.New(server.Config{
		Strategy:    cfg.strategy(),
		TempRoot:    cfg.TempRoot,
		Timeout:     time.Duration(cfg.Timeout),
		ValidatePDF: cfg.ValidatePDF,
		Cache:       store,
		Logger:      logger,
		DataDir:     dataDir,
	})
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- httpServer.ListenAndServe() }()
	printSuccess("Listening on %s", styleLink.Render("http://"+addr))
	logger.Debug("server config", "engine", cfg.Engine, "data_dir", dataDir)

	select {
	case err := <-errc:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	printInfo("Server stopped")
	return ctx.Err()
}
