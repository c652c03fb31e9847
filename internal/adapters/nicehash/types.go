package nicehash

// DTOs raw de la API legacy de NiceHash. Solo se usan dentro de este paquete.
// La conversión a valores de dominio se hace en mapping.go.
// Los números llegan como strings JSON — se parsean al mapear.

// globalStatsResult es el result de method=stats.global.current.
type globalStatsResult struct {
	Stats []globalStat `json:"stats"`
}

// globalStat es el precio global actual de un algoritmo.
type globalStat struct {
	Algo  int    `json:"algo"`
	Price string `json:"price"` // BTC/unidad/día
}

// ordersResult es el result de method=orders.get.
type ordersResult struct {
	Orders []order `json:"orders"`
}

// order es una orden de alquiler activa en el marketplace.
type order struct {
	Type       int    `json:"type"` // 0 = standard, 1 = fixed
	Price      string `json:"price"`
	Workers    int    `json:"workers"`
	Alive      bool   `json:"alive"`
	LimitSpeed string `json:"limit_speed"`
}
