package domain

import "strings"

// Algorithm es un algoritmo de hashing comprado/vendido como unidad en NiceHash.
// El Index es la posición estable que usa la API para la tabla de precios globales
// y no se renumera nunca durante una ejecución.
type Algorithm struct {
	Index int
	// Names son los alias reconocidos al filtrar (minúsculas).
	Names []string
	// Unit es la unidad de precio de NiceHash para este algoritmo (BTC/unidad/día).
	Unit string
	// WTMSpeed es el hashrate (en la unidad nativa de WhatToMine) equivalente
	// a una unidad de precio de NiceHash. Se usa al pedir el estimado de revenue.
	WTMSpeed float64
}

// Matches devuelve true si name coincide con algún alias del algoritmo.
// La comparación es case-insensitive — el usuario escribe "ethash" o "Ethash".
func (a Algorithm) Matches(name string) bool {
	for _, n := range a.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// DisplayName devuelve el nombre canónico del algoritmo.
func (a Algorithm) DisplayName() string {
	if len(a.Names) == 0 {
		return ""
	}
	return a.Names[0]
}

// Algorithms es el catálogo estático de algoritmos que cotiza NiceHash,
// indexado por el número de algoritmo de la API legacy.
var Algorithms = []Algorithm{
	{Index: 0, Names: []string{"scrypt"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 1, Names: []string{"sha256", "sha-256"}, Unit: "PH", WTMSpeed: 1_000_000},
	{Index: 3, Names: []string{"x11"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 5, Names: []string{"keccak"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 7, Names: []string{"nist5"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 8, Names: []string{"neoscrypt"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 14, Names: []string{"lyra2rev2", "lyra2v2"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 20, Names: []string{"daggerhashimoto", "ethash", "dagger"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 21, Names: []string{"decred"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 23, Names: []string{"lbry"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 24, Names: []string{"equihash"}, Unit: "MSol", WTMSpeed: 1_000_000},
	{Index: 25, Names: []string{"pascal"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 26, Names: []string{"x11gost", "sibcoin"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 27, Names: []string{"sia"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 28, Names: []string{"blake2s"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 29, Names: []string{"skunk"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 32, Names: []string{"lyra2z"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 33, Names: []string{"x16r"}, Unit: "GH", WTMSpeed: 1_000},
	{Index: 34, Names: []string{"cryptonightv8", "cnv8", "cryptonight"}, Unit: "MH", WTMSpeed: 1_000_000},
	{Index: 36, Names: []string{"zhash", "equihash144"}, Unit: "kSol", WTMSpeed: 1_000},
	{Index: 40, Names: []string{"lyra2rev3", "lyra2v3"}, Unit: "TH", WTMSpeed: 1_000_000},
	{Index: 41, Names: []string{"mtp"}, Unit: "GH", WTMSpeed: 1_000},
}

// FindAlgorithm busca un algoritmo por cualquiera de sus alias.
// WhatToMine usa nombres como "SHA-256" o "Ethash" — la comparación
// normaliza mayúsculas y guiones.
func FindAlgorithm(name string) (Algorithm, bool) {
	normalized := strings.ReplaceAll(name, "-", "")
	for _, a := range Algorithms {
		for _, alias := range a.Names {
			if strings.EqualFold(alias, name) || strings.EqualFold(strings.ReplaceAll(alias, "-", ""), normalized) {
				return a, true
			}
		}
	}
	return Algorithm{}, false
}
