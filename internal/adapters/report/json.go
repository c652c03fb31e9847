package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// JSON implementa ports.Sink con salida estructurada: un objeto JSON por
// línea, apto para pipes a jq o ingestión posterior.
type JSON struct {
	enc   *json.Encoder
	runID string
	count int
}

// jsonRecord es la forma serializada de un record.
type jsonRecord struct {
	Type          string  `json:"type"`
	RunID         string  `json:"run_id"`
	Coin          string  `json:"coin"`
	Ticker        string  `json:"ticker"`
	Algorithm     string  `json:"algorithm"`
	Revenue       float64 `json:"revenue"`
	Price         float64 `json:"price"`
	Profit        float64 `json:"profit"`
	ROI           float64 `json:"roi"`
	PercentChange float64 `json:"percent_change"`
	Cached        bool    `json:"cached"`
}

// jsonSummary es el objeto terminal del run.
type jsonSummary struct {
	Type       string    `json:"type"`
	RunID      string    `json:"run_id"`
	Records    int       `json:"records"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewJSON crea un sink JSON que escribe a stdout, etiquetando cada línea
// con el run ID.
func NewJSON(runID string) *JSON {
	return NewJSONWriter(os.Stdout, runID)
}

// NewJSONWriter crea un sink JSON sobre el writer dado (tests).
func NewJSONWriter(w io.Writer, runID string) *JSON {
	return &JSON{enc: json.NewEncoder(w), runID: runID}
}

// Handle emite una línea JSON por record.
func (j *JSON) Handle(_ context.Context, rec domain.Record) error {
	j.count++
	err := j.enc.Encode(jsonRecord{
		Type:          "record",
		RunID:         j.runID,
		Coin:          rec.Coin.Name,
		Ticker:        rec.Coin.Ticker(),
		Algorithm:     rec.Coin.Algorithm.DisplayName(),
		Revenue:       rec.Estimate.Revenue,
		Price:         rec.Price,
		Profit:        rec.Profit,
		ROI:           rec.ROI,
		PercentChange: rec.PercentChange,
		Cached:        rec.Estimate.Cached,
	})
	if err != nil {
		return fmt.Errorf("report.JSON: encode %s: %w", rec.Coin.Name, err)
	}
	return nil
}

// Finished emite el objeto terminal, exactamente una vez.
func (j *JSON) Finished(_ context.Context) error {
	err := j.enc.Encode(jsonSummary{
		Type:       "finished",
		RunID:      j.runID,
		Records:    j.count,
		FinishedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("report.JSON: encode summary: %w", err)
	}
	return nil
}
