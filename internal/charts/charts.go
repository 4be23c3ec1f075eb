// Package charts renders the store's derived series to PNG images.
package charts

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"budgetzen/internal/core"
)

// Renderer turns derived aggregates into chart images, colored by the
// active settings palette.
type Renderer struct {
	settings core.Settings
}

func NewRenderer(settings core.Settings) *Renderer {
	return &Renderer{settings: settings}
}

// BalanceOverTime renders the running-balance series as a line chart.
// Returns nil bytes when there is nothing to plot.
func (r *Renderer) BalanceOverTime(points []core.BalancePoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, nil
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date.Time
		yValues[i] = p.Balance.Float()
	}

	palette := r.settings.Palette()
	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(core.ISODate),
			Style:          chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return r.settings.FormatAmount(core.CentsOf(int64(v.(float64) * 100)))
			},
			Style: chart.Style{FontSize: 12, FontColor: chart.ColorBlack},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: hexColor(palette.Primary),
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render balance chart: %w", err)
	}
	return buf.Bytes(), nil
}

// ExpenseBreakdown renders the per-category expense totals as a pie
// chart. Returns nil bytes when there are no expenses.
func (r *Renderer) ExpenseBreakdown(byCategory []core.CategoryAmount) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(byCategory))
	for _, ca := range byCategory {
		if ca.Amount.Cents <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", ca.Name, r.settings.FormatAmount(ca.Amount)),
			Value: ca.Amount.Float(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render expense chart: %w", err)
	}
	return buf.Bytes(), nil
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
