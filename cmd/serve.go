package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/orgsite/internal/logging"
	"github.com/ziadkadry99/orgsite/internal/progress"
	"github.com/ziadkadry99/orgsite/internal/server"
	"github.com/ziadkadry99/orgsite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it locally and rebuild on change",
	Long: `Performs an initial build, then serves the output directory with a
development server. Changes to the data, static and layout paths trigger a
rebuild and open pages reload themselves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port for the dev server (default from config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-watch", false, "do not rebuild on change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	ctx, stop := signal.NotifyContext(withLogger(cmd.Context(), cfg), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	gen := site.NewGenerator(cfg, progress.NewReporter(os.Stderr))
	gen.LiveReload = cfg.Server.LiveReload && !noWatch
	if _, err := gen.Generate(ctx); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}
	gen.Reporter = progress.Discard{}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		Dir:      cfg.OutputDir,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, log)

	var wg sync.WaitGroup
	if !noWatch {
		paths := []string{cfg.DataDir, cfg.StaticDir, cfg.About}
		if cfg.Layout != "" {
			paths = append(paths, cfg.Layout)
		}
		if cfg.RosterDB != "" {
			paths = append(paths, cfg.RosterDB)
		}
		watcher := &server.Watcher{
			Paths: paths,
			Rebuild: func(ctx context.Context) error {
				_, err := gen.Generate(ctx)
				return err
			},
			Rebuilt: srv.Hub().Reload,
			Logger:  log,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watcher.Run(ctx); err != nil {
				log.Error("watcher stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		go server.OpenBrowser(srv.URL())
	}
	fmt.Printf("Serving %s at %s\n", cfg.OutputDir, srv.URL())
	fmt.Println("Press Ctrl+C to stop.")

	err = srv.Start()
	stop()
	wg.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
