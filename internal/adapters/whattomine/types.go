package whattomine

// DTOs raw de la API de WhatToMine. Solo se usan dentro de este paquete.
// La conversión a valores de dominio se hace en coins.go y revenue.go.

// calculatorsResponse es la respuesta de GET /calculators.json,
// keyed por nombre de moneda.
type calculatorsResponse struct {
	Coins map[string]calculatorEntry `json:"coins"`
}

// calculatorEntry es una moneda del listado de calculadoras.
type calculatorEntry struct {
	ID        int    `json:"id"`
	Tag       string `json:"tag"`
	Algorithm string `json:"algorithm"`
	Status    string `json:"status"` // "Active" | "No available stats" | ...
	Lagging   bool   `json:"lagging"`
}

// coinResponse es la respuesta de GET /coins/{id}.json.
// btc_revenue llega como string JSON.
type coinResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Tag        string `json:"tag"`
	BTCRevenue string `json:"btc_revenue"`
}

// bulkCoinsResponse es la respuesta de GET /coins.json — revenue de todas
// las monedas en un solo fetch. Se usa para poblar la caché.
type bulkCoinsResponse struct {
	Coins map[string]bulkCoinEntry `json:"coins"`
}

// bulkCoinEntry es una moneda del listado bulk.
type bulkCoinEntry struct {
	ID         int    `json:"id"`
	Tag        string `json:"tag"`
	BTCRevenue string `json:"btc_revenue"`
}
