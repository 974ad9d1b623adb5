package main

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/site"
)

// rebuildDebounce coalesces bursts of filesystem events into one rebuild.
const rebuildDebounce = 500 * time.Millisecond

// watchAndRebuild runs an initial build, then rebuilds whenever the doclet
// export, configuration file, or tutorial directory changes.
func watchAndRebuild(ctx context.Context, cfg *config.Config) error {
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusRecorder()
		recorder = prom
		go serveMetrics(ctx, cfg.Metrics.Listen, prom)
	}

	if _, err := site.Run(ctx, cfg, recorder); err != nil {
		// Keep watching; the next change may fix the input.
		slog.Error("Initial build failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch parent directories: editors replace files, which drops watches on
	// the files themselves.
	watched := map[string]bool{}
	for _, p := range []string{CLI.Config, cfg.Input.Doclets, cfg.Input.Tutorials} {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if !watched[dir] {
			watched[dir] = true
			if err := watcher.Add(dir); err != nil {
				slog.Warn("Cannot watch directory", "path", dir, "error", err)
			}
		}
	}

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-rebuild:
			// Reload config so edits to the file itself take effect.
			fresh, err := config.Load(CLI.Config)
			if err != nil {
				slog.Error("Configuration reload failed", "error", err)
				continue
			}
			if cfg.Output.Directory != "" {
				fresh.Output.Directory = cfg.Output.Directory
			}
			if _, err := site.Run(ctx, fresh, recorder); err != nil {
				slog.Error("Rebuild failed", "error", err)
				continue
			}
			slog.Info("Rebuild completed")
		}
	}
}

func serveMetrics(ctx context.Context, listen string, prom *metrics.PrometheusRecorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", prom.Handler())
	srv := &http.Server{Addr: listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	slog.Info("Serving metrics", "listen", listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Metrics server failed", "error", err)
	}
}
