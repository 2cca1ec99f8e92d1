// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrd serves QR symbols over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/unixdj/qrsym/internal/api"
	"github.com/unixdj/qrsym/internal/config"
	"github.com/unixdj/qrsym/internal/store"
)

func main() {
	var (
		configFile = pflag.StringP("config", "c", "", "YAML configuration file")
		listen     = pflag.StringP("listen", "l", "", "listen address [localhost:8080]")
		storeFile  = pflag.StringP("store", "s", "", "symbol store file; none keeps symbols in memory")
		logLevel   = pflag.String("log-level", "", "log level: debug, info, warn or error [info]")
		help       = pflag.BoolP("help", "h", false, "Display help text.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "QR symbol server\nUsage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "qrd",
		ReportTimestamp: true,
	})

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *storeFile != "" {
		cfg.Store = *storeFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	lvl, err := cfg.LoggerLevel()
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}
	logger.SetLevel(lvl)
	level, err := cfg.QRLevel()
	if err != nil {
		logger.Fatal("bad level", "err", err)
	}

	s, err := store.New(cfg.Store)
	if err != nil {
		logger.Fatal("opening store", "err", err)
	}
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewRouter(api.New(s, logger, level, cfg.Mode)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.Listen, "store", cfg.Store)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serving", "err", err)
	}
	logger.Info("stopped")
}
