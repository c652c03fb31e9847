package domain

import "time"

// RevenueEstimate es el estimado de revenue de minado para una moneda,
// producido por WhatToMine una vez por ejecución.
type RevenueEstimate struct {
	CoinID int
	// Revenue es el ingreso estimado en BTC/día para una unidad de
	// hashrate de NiceHash del algoritmo de la moneda.
	Revenue float64
	// FetchedAt es cuándo se obtuvo el dato (relevante si vino de caché).
	FetchedAt time.Time
	// Cached indica que el estimado se sirvió desde la caché local.
	// Solo observabilidad — no afecta al cálculo.
	Cached bool
}

// Record es el resultado calculado para una moneda. Efímero: se crea en el
// loop, se entrega al sink y se descarta — nunca se persiste.
type Record struct {
	Coin     Coin
	Estimate RevenueEstimate
	// Price es el coste de alquiler en BTC/unidad/día, resuelto por
	// exactamente una de las dos estrategias de precio.
	Price float64
	// Profit = revenue - price.
	Profit float64
	// ROI = revenue / price.
	ROI float64
	// PercentChange = ROI - 1.
	PercentChange float64
}

// NewRecord construye un Record con las métricas derivadas.
// Sin redondeos — el formato de presentación es cosa del sink.
func NewRecord(coin Coin, est RevenueEstimate, price float64) Record {
	roi := est.Revenue / price
	return Record{
		Coin:          coin,
		Estimate:      est,
		Price:         price,
		Profit:        est.Revenue - price,
		ROI:           roi,
		PercentChange: roi - 1,
	}
}
