package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del calculador.
type Config struct {
	Calculator CalculatorConfig `yaml:"calculator"`
	Cache      CacheConfig      `yaml:"cache"`
	API        APIConfig        `yaml:"api"`
	Log        LogConfig        `yaml:"log"`
}

// CalculatorConfig controla la selección de monedas y el loop de cálculo.
type CalculatorConfig struct {
	// Coins son los términos enable/disable ("btc", "-litecoin", "ethash").
	Coins []string `yaml:"coins"`
	// Prices es la estrategia de precio: "global" (default) o "minimum".
	Prices string `yaml:"prices"`
	// DelaySeconds es la pausa fija entre monedas.
	DelaySeconds float64 `yaml:"delay_seconds"`
	// Output es el formato del reporte: "text" o "json".
	Output string `yaml:"output"`
	// ContinueOnError salta monedas que fallan en vez de abortar el run.
	// Desviación del fail-loud por defecto — úsalo con cuidado.
	ContinueOnError bool `yaml:"continue_on_error"`
}

// CacheConfig controla la caché del revenue source.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Backend    string `yaml:"backend"` // sqlite | redis
	DSN        string `yaml:"dsn"`     // ruta del archivo SQLite o URL redis://
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// APIConfig contiene los base URLs de las APIs externas.
type APIConfig struct {
	NiceHashBase   string `yaml:"nicehash_base"`
	WhatToMineBase string `yaml:"whattomine_base"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Los valores del .env sobreescriben los del YAML para las keys que
// correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve la configuración por defecto, para correr sin archivo.
func Default() *Config {
	_ = godotenv.Load()
	var cfg Config
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg
}

// Delay devuelve la pausa entre monedas como time.Duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Calculator.DelaySeconds * float64(time.Second))
}

// CacheTTL devuelve el TTL de la caché como time.Duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Backend = "redis"
		cfg.Cache.DSN = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Calculator.Prices == "" {
		cfg.Calculator.Prices = "global"
	}
	if cfg.Calculator.DelaySeconds <= 0 {
		cfg.Calculator.DelaySeconds = 1
	}
	if cfg.Calculator.Output == "" {
		cfg.Calculator.Output = "text"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "sqlite"
	}
	if cfg.Cache.DSN == "" && cfg.Cache.Backend == "sqlite" {
		cfg.Cache.DSN = "hashprofit-cache.db"
	}
	if cfg.Cache.TTLMinutes <= 0 {
		cfg.Cache.TTLMinutes = 15
	}
	if cfg.API.NiceHashBase == "" {
		cfg.API.NiceHashBase = "https://api.nicehash.com/api"
	}
	if cfg.API.WhatToMineBase == "" {
		cfg.API.WhatToMineBase = "https://whattomine.com"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
