package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fractalzoom/app"
	"fractalzoom/hal"
	"fractalzoom/internal/buildinfo"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		cfg      = app.DefaultConfig()
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.StringVar(&headless.Keys, "keys", "", "Keys to type in headless mode, one per frame (e.g. \"[[[[p q\").")
	flag.Uint64Var(&cfg.MaxTicks, "ticks", 0, "Stop after N ticks (0 = run until quit).")
	flag.IntVar(&cfg.Workers, "workers", 0, "Render goroutines (0 = GOMAXPROCS).")
	flag.IntVar(&cfg.MaxIter, "iter", cfg.MaxIter, "Iteration cap per pixel.")
	flag.IntVar(&window.Size, "size", 768, "Window edge in pixels.")
	flag.BoolVar(&window.HUD, "hud", false, "Draw the status overlay.")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error.")
	version := flag.Bool("version", false, "Print the build identity and exit.")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting", buildinfo.Fields()...)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := app.NewMetrics(reg)
	if *metricsAddr != "" {
		srv := app.NewMetricsServer(*metricsAddr, reg)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
		log.Info("serving metrics", zap.String("addr", *metricsAddr))
	}

	session := func(ctx context.Context, h hal.HAL) error {
		return app.New(h, cfg, m).Run(ctx)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = hal.RunHeadless(ctx, headless, log, session)
	} else {
		err = hal.RunWindow(window, log, session)
	}
	if err != nil {
		log.Error("session failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	return zc.Build()
}
