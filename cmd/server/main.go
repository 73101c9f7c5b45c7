package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"coordbench/pkg/api"
	"coordbench/pkg/bench"
	"coordbench/pkg/config"
	"coordbench/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envFile := flag.String("env", ".env", "Path to .env file (ignored if missing)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "cors-origin":
			cfg.Server.CORSOrigin = *corsOrigin
		}
	})

	logger.Initialize(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srvCfg := api.DefaultConfig(addr)
	srvCfg.CORSOrigin = cfg.Server.CORSOrigin
	if cfg.Server.MaxConcurrent > 0 {
		srvCfg.MaxConcurrent = cfg.Server.MaxConcurrent
	}
	if cfg.Server.ReadTimeout > 0 {
		srvCfg.ReadTimeout = cfg.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout > 0 {
		srvCfg.WriteTimeout = cfg.Server.WriteTimeout
	}

	log.Info().
		Str("systems", strings.Join(bench.Names(), ",")).
		Int("max_concurrent", srvCfg.MaxConcurrent).
		Msg("Starting distance API")

	srv := api.NewServer(srvCfg, api.NewHandlers())
	if err := api.ListenAndServe(srv); err != nil {
		log.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}
