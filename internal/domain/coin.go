package domain

import "strings"

// Coin es una entrada inmutable del catálogo de monedas mineables.
// No tiene identidad persistente — vive lo que dura una ejecución.
type Coin struct {
	// Name es el nombre para mostrar ("Bitcoin").
	Name string
	// Names son los alias reconocidos al filtrar: ticker y nombre completo,
	// en minúsculas ("btc", "bitcoin").
	Names []string
	// Algorithm es el algoritmo con el que se mina esta moneda.
	// Varias monedas pueden compartir el mismo.
	Algorithm Algorithm
	// ID es el identificador de la moneda en WhatToMine.
	ID int
}

// Matches devuelve true si term coincide con algún alias de la moneda
// O con algún alias de su algoritmo — escribir un nombre de algoritmo
// selecciona todas las monedas que lo usan.
func (c Coin) Matches(term string) bool {
	for _, n := range c.Names {
		if strings.EqualFold(n, term) {
			return true
		}
	}
	return c.Algorithm.Matches(term)
}

// Ticker devuelve el alias corto de la moneda, o el nombre si no hay alias.
func (c Coin) Ticker() string {
	if len(c.Names) > 0 {
		return strings.ToUpper(c.Names[0])
	}
	return c.Name
}
