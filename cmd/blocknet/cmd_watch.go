package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/metrics"
)

const debounceDuration = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "watch <layout.yaml>",
		Short: "Keep a layout loaded and apply every saved change incrementally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("metrics-addr") {
				if v := os.Getenv("BLOCKNET_METRICS_ADDR"); v != "" {
					addr = v
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, args[0], addr, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&addr, "metrics-addr", defaultMetricsAddr, "Serve /metrics and /networks on this address (env: BLOCKNET_METRICS_ADDR)")
	return cmd
}

// newWorld loads path into a Topology wired to a fresh metrics registry.
func newWorld(path string) (*world, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	col := metrics.NewCollector("")
	if err := col.Register(reg); err != nil {
		return nil, nil, err
	}
	topo, nodes, err := loadTopology(path, blocknet.WithListeners(col, logListener{log: logger}))
	if err != nil {
		return nil, nil, err
	}
	return &world{topo: topo, nodes: nodes}, reg, nil
}

func runWatch(ctx context.Context, path, addr string, out io.Writer) error {
	w, reg, err := newWorld(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "loaded %s: %d nodes, %d networks\n", path, w.topo.Size(), len(w.topo.Networks()))

	if addr != "" {
		srv := &http.Server{Addr: addr, Handler: newRouter(w, reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("serving", zap.String("addr", addr))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()
	// the directory catches editors that save by rename
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debounce = time.After(debounceDuration)
			}

		case <-debounce:
			debounce = nil
			removed, added, err := w.reload(path)
			if errors.Is(err, fs.ErrNotExist) {
				// rename-on-save has recreated the file by now, so it was deleted
				n, err := w.clear()
				if err != nil {
					logger.Error("clearing topology", zap.Error(err))
				}
				fmt.Fprintf(out, "removed %s: -%d, 0 networks\n", path, n)
				continue
			}
			if err != nil {
				logger.Error("reload failed, keeping current layout", zap.String("path", path), zap.Error(err))
				continue
			}
			fmt.Fprintf(out, "reloaded %s: -%d +%d, %d networks\n", path, removed, added, len(w.view().Networks))

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Error("file watcher error", zap.Error(err))
		}
	}
}
