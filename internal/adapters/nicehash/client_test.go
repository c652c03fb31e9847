package nicehash_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alejandrodnm/hashprofit/internal/adapters/nicehash"
	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *nicehash.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return nicehash.NewClient(srv.URL)
}

func TestFetchGlobalPrices_Success(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stats.global.current", r.URL.Query().Get("method"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"result": {"stats": [
				{"algo": 0, "price": "0.00101"},
				{"algo": 20, "price": "0.31070"},
				{"algo": 24, "price": "not-a-number"}
			]},
			"method": "stats.global.current"
		}`)
	})

	prices, err := client.FetchGlobalPrices(context.Background())
	require.NoError(t, err)

	assert.Len(t, prices, 2, "los precios no parseables se omiten")
	assert.InDelta(t, 0.00101, prices[0], 1e-9)
	assert.InDelta(t, 0.31070, prices[20], 1e-9)
}

func TestFetchGlobalPrices_APIError(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result": {"error": "Something went wrong"}, "method": "stats.global.current"}`)
	})

	_, err := client.FetchGlobalPrices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Something went wrong")
}

func TestFetchMinimumPrice_PicksLowestQualifyingOrder(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "orders.get", r.URL.Query().Get("method"))
		assert.Equal(t, "20", r.URL.Query().Get("algo"))
		fmt.Fprint(w, `{
			"result": {"orders": [
				{"type": 0, "price": "0.3100", "workers": 12, "alive": true},
				{"type": 0, "price": "0.2950", "workers": 3, "alive": true},
				{"type": 0, "price": "0.1000", "workers": 0, "alive": true},
				{"type": 0, "price": "0.0900", "workers": 5, "alive": false},
				{"type": 1, "price": "0.0800", "workers": 5, "alive": true}
			]},
			"method": "orders.get"
		}`)
	})

	algo := domain.Algorithm{Index: 20, Names: []string{"daggerhashimoto"}}
	price, err := client.FetchMinimumPrice(context.Background(), algo)
	require.NoError(t, err)

	// Las órdenes sin workers, muertas o de precio fijo no cuentan.
	assert.InDelta(t, 0.2950, price, 1e-9)
}

func TestFetchMinimumPrice_NoQualifyingOrders(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result": {"orders": [{"type": 0, "price": "0.1", "workers": 0, "alive": true}]}, "method": "orders.get"}`)
	})

	algo := domain.Algorithm{Index: 0, Names: []string{"scrypt"}}
	_, err := client.FetchMinimumPrice(context.Background(), algo)
	assert.Error(t, err)
}

func TestClient_RetriesOnServerError(t *testing.T) {
	attempts := 0
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"result": {"stats": [{"algo": 0, "price": "0.5"}]}, "method": "stats.global.current"}`)
	})

	prices, err := client.FetchGlobalPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.InDelta(t, 0.5, prices[0], 1e-9)
}
