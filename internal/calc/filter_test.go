package calc_test

import (
	"testing"

	"github.com/alejandrodnm/hashprofit/internal/calc"
	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	algoA = domain.Algorithm{Index: 0, Names: []string{"a"}}
	algoB = domain.Algorithm{Index: 1, Names: []string{"b"}}
)

// makeCatalog devuelve un catálogo de prueba: BTC y BCH comparten algoritmo.
func makeCatalog() []domain.Coin {
	return []domain.Coin{
		{Name: "Bitcoin", Names: []string{"btc", "bitcoin"}, Algorithm: algoA, ID: 1},
		{Name: "Litecoin", Names: []string{"ltc", "litecoin"}, Algorithm: algoB, ID: 4},
		{Name: "Bitcoin Cash", Names: []string{"bch", "bitcoin cash"}, Algorithm: algoA, ID: 193},
	}
}

func names(coins []domain.Coin) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.Name
	}
	return out
}

func TestFilter_NoTerms_ReturnsFullCatalog(t *testing.T) {
	catalog := makeCatalog()
	result := calc.Filter(catalog, nil)

	assert.Equal(t, names(catalog), names(result), "sin términos el catálogo pasa intacto, en orden")
}

func TestFilter_EnableByAlias_YieldsExactlyThatCoin(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"btc"})

	require.Len(t, result, 1)
	assert.Equal(t, "Bitcoin", result[0].Name)
}

func TestFilter_EnableByFullName(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"litecoin"})

	require.Len(t, result, 1)
	assert.Equal(t, "Litecoin", result[0].Name)
}

func TestFilter_EnableByAlgorithmAlias_SelectsAllCoinsOfAlgorithm(t *testing.T) {
	// "a" es alias de algoritmo → todas las monedas que lo usan, en orden de catálogo.
	result := calc.Filter(makeCatalog(), []string{"a"})

	assert.Equal(t, []string{"Bitcoin", "Bitcoin Cash"}, names(result))
}

func TestFilter_DisableTerm_RemovesFromFullCatalog(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"-btc"})

	assert.Equal(t, []string{"Litecoin", "Bitcoin Cash"}, names(result))
}

func TestFilter_DisableByAlgorithm_RemovesAllCoinsOfAlgorithm(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"-a"})

	assert.Equal(t, []string{"Litecoin"}, names(result))
}

func TestFilter_DisableWithEnable_OnlyEnabledSurvives(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"ltc", "-btc"})

	assert.Equal(t, []string{"Litecoin"}, names(result))
}

func TestFilter_DisableAbsentCoin_LeavesResultUnchanged(t *testing.T) {
	// BCH ya quedó fuera de la allow-list cuando su disable se evalúa:
	// el aviso no falla ni altera el resultado.
	result := calc.Filter(makeCatalog(), []string{"btc", "-bch"})

	assert.Equal(t, []string{"Bitcoin"}, names(result))
}

func TestFilter_MixedTerms_AlgorithmEnableMinusCoin(t *testing.T) {
	// Habilitar por algoritmo y deshabilitar una moneda concreta del mismo:
	// el disable actúa sobre la allow-list resultante.
	result := calc.Filter(makeCatalog(), []string{"a", "-bch"})

	assert.Equal(t, []string{"Bitcoin"}, names(result))
}

func TestFilter_FirstEnableWinsPerCoin_NoDuplicates(t *testing.T) {
	// "btc" y "a" coinciden ambos con Bitcoin — solo el primero la añade.
	result := calc.Filter(makeCatalog(), []string{"btc", "a"})

	assert.Equal(t, []string{"Bitcoin", "Bitcoin Cash"}, names(result))
}

func TestFilter_EnableSwitchesToAllowList(t *testing.T) {
	// En cuanto un enable hace match, el deny-list previo deja de aplicar al
	// resto del catálogo: solo sobreviven las habilitadas.
	result := calc.Filter(makeCatalog(), []string{"ltc"})

	require.Len(t, result, 1)
	assert.Equal(t, "Litecoin", result[0].Name)
}

func TestFilter_CaseInsensitiveMatching(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"BTC"})

	require.Len(t, result, 1)
	assert.Equal(t, "Bitcoin", result[0].Name)
}

func TestFilter_UnknownTerm_Ignored(t *testing.T) {
	result := calc.Filter(makeCatalog(), []string{"doge"})

	// Sin ningún match enable, seguimos en modo deny-list sobre el catálogo.
	assert.Len(t, result, 3)
}

func TestFilter_EmptyCatalog(t *testing.T) {
	result := calc.Filter(nil, []string{"btc", "-ltc"})
	assert.Empty(t, result)
}
