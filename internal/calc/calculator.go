package calc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/alejandrodnm/hashprofit/internal/ports"
)

const defaultDelay = time.Second

// Config contiene la configuración del loop de cálculo.
type Config struct {
	// Delay es la pausa fija entre monedas — cortesía con las APIs remotas.
	// Nunca se aplica después de la última moneda.
	Delay time.Duration
	// UseCache precarga la caché de revenue antes del loop.
	UseCache bool
	// ContinueOnError salta monedas que fallan en vez de abortar.
	// Desviación documentada del comportamiento fail-loud por defecto.
	ContinueOnError bool
}

// DefaultConfig devuelve una configuración sensata.
func DefaultConfig() Config {
	return Config{Delay: defaultDelay}
}

// Calculator es el loop secuencial que convierte monedas seleccionadas en
// records de rentabilidad. Una moneda completa su ciclo fetch→compute→emit
// (incluida la pausa) antes de que empiece la siguiente: sin fan-out, orden
// de salida determinista igual al orden del catálogo filtrado.
type Calculator struct {
	cfg      Config
	resolver PriceResolver
	revenue  ports.RevenueProvider
	sink     ports.Sink

	// sleep se puede sustituir en tests para contar pausas sin esperar.
	sleep func(ctx context.Context, d time.Duration) error
}

// New crea un Calculator con todas las dependencias inyectadas.
func New(cfg Config, resolver PriceResolver, revenue ports.RevenueProvider, sink ports.Sink) *Calculator {
	if cfg.Delay <= 0 {
		cfg.Delay = defaultDelay
	}
	return &Calculator{
		cfg:      cfg,
		resolver: resolver,
		revenue:  revenue,
		sink:     sink,
		sleep:    sleepCtx,
	}
}

// Run procesa las monedas en orden. Cualquier fallo de revenue o precio
// propaga inmediatamente y aborta el resto del loop — sin retries, sin
// skip parcial (salvo ContinueOnError). Finished se invoca exactamente una
// vez, solo si se llegó al final.
func (c *Calculator) Run(ctx context.Context, coins []domain.Coin) error {
	if c.cfg.UseCache {
		if err := c.revenue.PopulateCache(ctx); err != nil {
			return fmt.Errorf("calc.Run: populate revenue cache: %w", err)
		}
	}

	for i, coin := range coins {
		if err := c.process(ctx, coin); err != nil {
			if !c.cfg.ContinueOnError {
				return err
			}
			slog.Warn("coin skipped", "coin", coin.Name, "err", err)
		}

		if i < len(coins)-1 {
			if err := c.sleep(ctx, c.cfg.Delay); err != nil {
				return fmt.Errorf("calc.Run: interrupted: %w", err)
			}
		}
	}

	if err := c.sink.Finished(ctx); err != nil {
		return fmt.Errorf("calc.Run: sink finished: %w", err)
	}
	return nil
}

// process hace el ciclo completo de una moneda: revenue → precio → métricas → sink.
func (c *Calculator) process(ctx context.Context, coin domain.Coin) error {
	est, err := c.revenue.GetRevenue(ctx, coin)
	if err != nil {
		return fmt.Errorf("calc.Run: revenue for %s: %w", coin.Name, err)
	}

	price, err := c.resolver.PriceFor(ctx, coin.Algorithm)
	if err != nil {
		return fmt.Errorf("calc.Run: price for %s: %w", coin.Name, err)
	}

	rec := domain.NewRecord(coin, est, price)
	slog.Debug("coin computed",
		"coin", coin.Name,
		"revenue", rec.Estimate.Revenue,
		"price", rec.Price,
		"profit", rec.Profit,
		"cached", rec.Estimate.Cached,
	)

	if err := c.sink.Handle(ctx, rec); err != nil {
		return fmt.Errorf("calc.Run: sink handle %s: %w", coin.Name, err)
	}
	return nil
}

// sleepCtx espera la duración dada respetando la cancelación del contexto.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
