package nicehash

import (
	"log/slog"
	"strconv"
)

const orderTypeStandard = 0

// mapGlobalPrices convierte los stats raw a la tabla índice→precio.
// Entradas con precio no parseable se omiten con un debug.
func mapGlobalPrices(stats []globalStat) map[int]float64 {
	prices := make(map[int]float64, len(stats))
	for _, s := range stats {
		price, err := strconv.ParseFloat(s.Price, 64)
		if err != nil {
			slog.Debug("skipping unparseable global price", "algo", s.Algo, "price", s.Price)
			continue
		}
		prices[s.Algo] = price
	}
	return prices
}

// lowestOrderPrice devuelve el precio de la orden standard viva más barata
// con al menos un worker. ok=false si ninguna califica.
func lowestOrderPrice(orders []order) (float64, bool) {
	lowest := 0.0
	found := false
	for _, o := range orders {
		if !o.Alive || o.Workers < 1 || o.Type != orderTypeStandard {
			continue
		}
		price, err := strconv.ParseFloat(o.Price, 64)
		if err != nil {
			continue
		}
		if !found || price < lowest {
			lowest = price
			found = true
		}
	}
	return lowest, found
}
