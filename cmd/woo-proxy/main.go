// woo-proxy is the CORS proxy for the open data frontend: it forwards
// browser requests to the Utrecht Open Data API and the data.overheid.nl
// CKAN API with CORS headers, exposes a Woo analysis endpoint and serves
// the static files.
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

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/clients/utrecht"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/woo"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	port := flag.Int("port", 0, "listen port (overrides config)")
	flag.Parse()

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		config.Server.Port = *port
	}

	logger := common.NewLogger(config.Logging.Level)

	utrechtClient := utrecht.NewClient(
		utrecht.WithBaseURL(config.Clients.Utrecht.BaseURL),
		utrecht.WithRateLimit(config.Clients.Utrecht.RateLimit),
		utrecht.WithTimeout(config.Clients.Utrecht.GetTimeout()),
		utrecht.WithUserAgent(config.Clients.Utrecht.UserAgent),
		utrecht.WithLogger(logger),
	)

	proxy := NewProxyServer(config, utrechtClient, woo.NewConnector(nil), logger)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           proxy.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", addr).
			Str("version", common.GetVersion()).
			Msg("CORS proxy server gestart")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server failed")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Shutdown failed")
	}
}
