package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/alejandrodnm/hashprofit/config"
	"github.com/alejandrodnm/hashprofit/internal/adapters/nicehash"
	"github.com/alejandrodnm/hashprofit/internal/adapters/report"
	"github.com/alejandrodnm/hashprofit/internal/adapters/revcache"
	"github.com/alejandrodnm/hashprofit/internal/adapters/whattomine"
	"github.com/alejandrodnm/hashprofit/internal/calc"
	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/alejandrodnm/hashprofit/internal/ports"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	coins := flag.String("coins", "", "comma-separated enable/disable terms (overrides config)")
	minPrices := flag.Bool("min-prices", false, "use live minimum-order prices instead of the global table (slow)")
	noCache := flag.Bool("no-cache", false, "disable the revenue cache")
	jsonOut := flag.Bool("json", false, "structured JSON lines output")
	delay := flag.Float64("delay", 0, "seconds between coins (overrides config)")
	continueOnErr := flag.Bool("continue", false, "skip failing coins instead of aborting")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *coins != "" {
		cfg.Calculator.Coins = splitTerms(*coins)
	}
	if *minPrices {
		cfg.Calculator.Prices = "minimum"
	}
	if *noCache {
		cfg.Cache.Enabled = false
	}
	if *jsonOut {
		cfg.Calculator.Output = "json"
	}
	if *delay > 0 {
		cfg.Calculator.DelaySeconds = *delay
	}
	if *continueOnErr {
		cfg.Calculator.ContinueOnError = true
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	runID := uuid.NewString()
	slog.Info("hashprofit starting",
		"run_id", runID,
		"terms", cfg.Calculator.Coins,
		"prices", cfg.Calculator.Prices,
		"cache", cfg.Cache.Enabled,
		"delay", cfg.Delay(),
		"output", cfg.Calculator.Output,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, runID); err != nil {
		slog.Error("run failed", "err", err, "run_id", runID)
		os.Exit(1)
	}

	slog.Info("hashprofit finished", "run_id", runID)
}

// run cablea adapters, resuelve la selección y ejecuta el loop de cálculo.
func run(ctx context.Context, cfg *config.Config, runID string) error {
	nh := nicehash.NewClient(cfg.API.NiceHashBase)
	wtm := whattomine.NewClient(cfg.API.WhatToMineBase)

	catalog, err := wtm.FetchCoins(ctx)
	if err != nil {
		return err
	}

	warnUnknownTerms(catalog, cfg.Calculator.Coins)
	selected := calc.Filter(catalog, cfg.Calculator.Coins)
	slog.Info("coins selected", "selected", len(selected), "catalog", len(catalog))

	var resolver calc.PriceResolver
	if cfg.Calculator.Prices == "minimum" {
		resolver = calc.NewMinimumOrderResolver(nh)
	} else {
		resolver, err = calc.NewGlobalResolver(ctx, nh)
		if err != nil {
			return err
		}
	}

	cache, err := openCache(cfg)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}
	source := whattomine.NewSource(wtm, cache)

	var sink ports.Sink
	if cfg.Calculator.Output == "json" {
		sink = report.NewJSON(runID)
	} else {
		sink = report.NewText()
	}

	calculator := calc.New(calc.Config{
		Delay:           cfg.Delay(),
		UseCache:        cfg.Cache.Enabled,
		ContinueOnError: cfg.Calculator.ContinueOnError,
	}, resolver, source, sink)

	return calculator.Run(ctx, selected)
}

// loadConfig carga el YAML; si el archivo por defecto no existe corremos
// con la configuración por defecto — un path explícito ausente sí es error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return cfg, err
}

// openCache abre el backend de caché configurado, o nil si está deshabilitada.
func openCache(cfg *config.Config) (revcache.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case "redis":
		return revcache.NewRedis(cfg.Cache.DSN, cfg.CacheTTL())
	default:
		return revcache.NewSQLite(cfg.Cache.DSN, cfg.CacheTTL())
	}
}

// warnUnknownTerms avisa de términos que no coinciden con ninguna moneda ni
// algoritmo del catálogo. No es fatal — el filtro simplemente los ignora.
func warnUnknownTerms(catalog []domain.Coin, terms []string) {
	for _, term := range terms {
		name := strings.TrimPrefix(term, "-")
		known := false
		for _, coin := range catalog {
			if coin.Matches(name) {
				known = true
				break
			}
		}
		if !known {
			slog.Warn("unrecognized term, it will have no effect", "term", term)
		}
	}
}

// splitTerms parte el valor del flag -coins en términos individuales.
func splitTerms(s string) []string {
	parts := strings.Split(s, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
