package nicehash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBase = "https://api.nicehash.com/api"

	// La API legacy tolera poco tráfico — nos quedamos muy por debajo.
	requestsPerSec = 2

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client es el HTTP client de la API legacy de NiceHash con rate limiting
// y retries. Los retries viven aquí, en el adapter: el core nunca reintenta.
type Client struct {
	http    *http.Client
	base    string
	limiter *rate.Limiter
}

// NewClient crea un Client con el base URL dado.
// Si base está vacío usa el endpoint de producción.
func NewClient(base string) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		base:    base,
		limiter: rate.NewLimiter(requestsPerSec, 2),
	}
}

// call hace un GET api?method=<method>&<params> y decodifica el sobre de la
// respuesta. La API legacy devuelve siempre 200 con el error embebido en
// result.error, así que lo comprobamos aparte.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	q := url.Values{}
	q.Set("method", method)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Method string          `json:"method"`
	}
	if err := c.get(ctx, c.base+"?"+q.Encode(), &envelope); err != nil {
		return fmt.Errorf("nicehash.call %s: %w", method, err)
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(envelope.Result, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("nicehash.call %s: API error: %s", method, apiErr.Error)
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("nicehash.call %s: decode result: %w", method, err)
	}
	return nil
}

// get hace un GET con rate limiting y retries con backoff exponencial.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			sleepBackoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("server error %d after %d retries", resp.StatusCode, maxRetries)
			}
			slog.Warn("nicehash API unavailable, retrying", "status", resp.StatusCode, "attempt", attempt+1)
			sleepBackoff(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("exhausted %d retries", maxRetries)
}

// sleepBackoff espera con backoff exponencial, respetando el contexto.
func sleepBackoff(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * baseRetryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
