package whattomine_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alejandrodnm/hashprofit/internal/adapters/whattomine"
	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache es una caché en memoria para los tests del Source.
type memCache struct {
	mu      sync.Mutex
	entries map[int]domain.RevenueEstimate
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[int]domain.RevenueEstimate)}
}

func (m *memCache) Get(_ context.Context, coinID int) (domain.RevenueEstimate, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	est, ok := m.entries[coinID]
	return est, ok, nil
}

func (m *memCache) Put(_ context.Context, est domain.RevenueEstimate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[est.CoinID] = est
	return nil
}

func (m *memCache) Close() error { return nil }

func serve(t *testing.T, handler http.HandlerFunc) *whattomine.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return whattomine.NewClient(srv.URL)
}

func TestFetchCoins_MapsAndFiltersCatalog(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calculators.json", r.URL.Path)
		fmt.Fprint(w, `{"coins": {
			"Bitcoin":  {"id": 1,   "tag": "BTC",  "algorithm": "SHA-256",   "status": "Active"},
			"Litecoin": {"id": 4,   "tag": "LTC",  "algorithm": "Scrypt",    "status": "Active"},
			"DeadCoin": {"id": 50,  "tag": "DEAD", "algorithm": "Scrypt",    "status": "No available stats"},
			"Oddball":  {"id": 60,  "tag": "ODD",  "algorithm": "UnknownPoW", "status": "Active"}
		}}`)
	})

	coins, err := client.FetchCoins(context.Background())
	require.NoError(t, err)

	// DeadCoin (inactiva) y Oddball (algoritmo sin mercado NiceHash) se descartan.
	require.Len(t, coins, 2)

	// Orden determinista por ID de WhatToMine.
	assert.Equal(t, "Bitcoin", coins[0].Name)
	assert.Equal(t, []string{"btc", "bitcoin"}, coins[0].Names)
	assert.Equal(t, 1, coins[0].Algorithm.Index)

	assert.Equal(t, "Litecoin", coins[1].Name)
	assert.Equal(t, 0, coins[1].Algorithm.Index)
}

func TestFetchRevenue_ParsesStringRevenue(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/1.json", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("hr"))
		fmt.Fprint(w, `{"id": 1, "name": "Bitcoin", "tag": "BTC", "btc_revenue": "0.00123456"}`)
	})

	coin := domain.Coin{Name: "Bitcoin", ID: 1, Algorithm: domain.Algorithm{Index: 1, Names: []string{"sha256"}, WTMSpeed: 1000}}
	est, err := client.FetchRevenue(context.Background(), coin)
	require.NoError(t, err)

	assert.Equal(t, 1, est.CoinID)
	assert.InDelta(t, 0.00123456, est.Revenue, 1e-12)
	assert.False(t, est.Cached)
}

func TestFetchRevenue_UnparseableRevenue(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id": 1, "name": "Bitcoin", "tag": "BTC", "btc_revenue": "n/a"}`)
	})

	coin := domain.Coin{Name: "Bitcoin", ID: 1}
	_, err := client.FetchRevenue(context.Background(), coin)
	assert.Error(t, err)
}

func TestSource_GetRevenue_ServedFromCacheWithoutNetwork(t *testing.T) {
	hits := 0
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		hits++
		fmt.Fprint(w, `{"id": 1, "btc_revenue": "0.9"}`)
	})

	cache := newMemCache()
	require.NoError(t, cache.Put(context.Background(), domain.RevenueEstimate{
		CoinID: 1, Revenue: 0.5, FetchedAt: time.Now().UTC(),
	}))

	source := whattomine.NewSource(client, cache)
	coin := domain.Coin{Name: "Bitcoin", ID: 1}

	est, err := source.GetRevenue(context.Background(), coin)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, est.Revenue, 1e-12)
	assert.True(t, est.Cached)
	assert.Equal(t, 0, hits, "una moneda en caché no toca la red")
}

func TestSource_GetRevenue_CacheMissFetchesAndStores(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id": 4, "btc_revenue": "0.7"}`)
	})

	cache := newMemCache()
	source := whattomine.NewSource(client, cache)
	coin := domain.Coin{Name: "Litecoin", ID: 4}

	est, err := source.GetRevenue(context.Background(), coin)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, est.Revenue, 1e-12)
	assert.False(t, est.Cached)

	// La segunda llamada sale de la caché.
	est2, err := source.GetRevenue(context.Background(), coin)
	require.NoError(t, err)
	assert.True(t, est2.Cached)
}

func TestSource_PopulateCache_BulkFetch(t *testing.T) {
	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins.json", r.URL.Path)
		fmt.Fprint(w, `{"coins": {
			"Bitcoin":  {"id": 1, "tag": "BTC", "btc_revenue": "0.0012"},
			"Litecoin": {"id": 4, "tag": "LTC", "btc_revenue": "0.0034"},
			"Broken":   {"id": 9, "tag": "BRK", "btc_revenue": ""}
		}}`)
	})

	cache := newMemCache()
	source := whattomine.NewSource(client, cache)

	require.NoError(t, source.PopulateCache(context.Background()))

	_, ok, _ := cache.Get(context.Background(), 1)
	assert.True(t, ok)
	_, ok, _ = cache.Get(context.Background(), 4)
	assert.True(t, ok)
	_, ok, _ = cache.Get(context.Background(), 9)
	assert.False(t, ok, "revenue no parseable no entra en la caché")
}

func TestSource_PopulateCache_NilCacheIsNoop(t *testing.T) {
	client := whattomine.NewClient("http://127.0.0.1:1") // nunca se contacta
	source := whattomine.NewSource(client, nil)

	assert.NoError(t, source.PopulateCache(context.Background()))
}
