package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Text implementa ports.Sink con salida legible para humanos: un bloque por
// moneda según llega, y una tabla resumen al terminar.
type Text struct {
	out     io.Writer
	records []domain.Record
}

// NewText crea un sink de texto que escribe a stdout.
func NewText() *Text {
	return &Text{out: os.Stdout}
}

// NewTextWriter crea un sink de texto sobre el writer dado (tests).
func NewTextWriter(w io.Writer) *Text {
	return &Text{out: w}
}

// Handle imprime el bloque de una moneda.
func (t *Text) Handle(_ context.Context, rec domain.Record) error {
	t.records = append(t.records, rec)

	cached := ""
	if rec.Estimate.Cached {
		cached = " (cached)"
	}

	fmt.Fprintf(t.out, "\n%s (%s) — %s\n", rec.Coin.Name, rec.Coin.Ticker(), rec.Coin.Algorithm.DisplayName())
	fmt.Fprintf(t.out, "  Revenue: %.8f BTC/%s/day%s\n", rec.Estimate.Revenue, rec.Coin.Algorithm.Unit, cached)
	fmt.Fprintf(t.out, "  Price:   %.8f BTC/%s/day\n", rec.Price, rec.Coin.Algorithm.Unit)
	fmt.Fprintf(t.out, "  Profit:  %.8f BTC/%s/day\n", rec.Profit, rec.Coin.Algorithm.Unit)
	fmt.Fprintf(t.out, "  ROI:     %.2f%%  (%+.2f%%)\n", rec.ROI*100, rec.PercentChange*100)
	return nil
}

// Finished imprime la tabla resumen con todas las monedas del run.
func (t *Text) Finished(_ context.Context) error {
	if len(t.records) == 0 {
		fmt.Fprintln(t.out, "No coins selected — nothing to report.")
		return nil
	}

	fmt.Fprintf(t.out, "\n=== SUMMARY — %d coins ===\n", len(t.records))

	table := tablewriter.NewWriter(t.out)
	table.Header("Coin", "Algo", "Revenue", "Price", "Profit", "ROI%")

	for _, rec := range t.records {
		table.Append(
			rec.Coin.Ticker(),
			rec.Coin.Algorithm.DisplayName(),
			fmt.Sprintf("%.8f", rec.Estimate.Revenue),
			fmt.Sprintf("%.8f", rec.Price),
			fmt.Sprintf("%.8f", rec.Profit),
			fmt.Sprintf("%+.2f", rec.PercentChange*100),
		)
	}

	table.Render()
	return nil
}
