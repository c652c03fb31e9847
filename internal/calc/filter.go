package calc

import (
	"log/slog"
	"strings"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// Filter reduce el catálogo a la selección del usuario usando el lenguaje de
// términos enable/disable. Un término habilita ("btc") o deshabilita ("-btc")
// las monedas cuyo alias — o alias de algoritmo — coincide con él.
//
// Sin términos enable, el resultado es el catálogo completo menos lo
// deshabilitado (deny-list). En cuanto un término enable hace match por primera
// vez, el acumulador se vacía y pasamos a modo allow-list: solo entran las
// monedas habilitadas explícitamente, en orden de catálogo y sin duplicados.
//
// Asimetría heredada de la semántica original y preservada a propósito: por
// moneda solo el PRIMER término enable que coincide la añade, pero TODOS los
// términos disable se evalúan — incluso después de un enable en el mismo
// escaneo. Así "ethash -etc" selecciona todas las monedas ethash menos ETC.
//
// Itera sobre el catálogo inmutable y muta solo el acumulador, nunca la
// secuencia que se está recorriendo.
func Filter(catalog []domain.Coin, terms []string) []domain.Coin {
	result := make([]domain.Coin, len(catalog))
	copy(result, catalog)
	enabledByUser := false

	for _, coin := range catalog {
		coinEnabled := false
		for _, term := range terms {
			disabling := strings.HasPrefix(term, "-")
			name := strings.TrimPrefix(term, "-")
			if !coin.Matches(name) {
				continue
			}

			if disabling {
				if idx := indexOfCoin(result, coin); idx >= 0 {
					result = append(result[:idx], result[idx+1:]...)
					slog.Debug("coin disabled", "coin", coin.Name, "term", term)
				} else {
					slog.Warn("disable term matched a coin that is not selected",
						"coin", coin.Name, "term", term)
				}
				continue
			}

			// Primer enable gana por moneda — los siguientes no duplican.
			if coinEnabled {
				continue
			}
			if !enabledByUser {
				// Primer enable de toda la ejecución: de deny-list sobre el
				// catálogo completo a allow-list vacía.
				result = result[:0]
				enabledByUser = true
			}
			result = append(result, coin)
			coinEnabled = true
			slog.Debug("coin enabled", "coin", coin.Name, "term", term)
		}
	}

	return result
}

// indexOfCoin busca una moneda en el acumulador por nombre.
// Los nombres son únicos dentro de un catálogo.
func indexOfCoin(coins []domain.Coin, coin domain.Coin) int {
	for i, c := range coins {
		if c.Name == coin.Name {
			return i
		}
	}
	return -1
}
