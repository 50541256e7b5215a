// Package charts renders the dashboard charts as PNG images on the
// server, so the web UI only ever embeds static <img> tags.
package charts

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

const (
	chartWidth  = 900
	chartHeight = 420
)

// BalancePNG renders the running net balance line chart. It returns
// (nil, nil) when the snapshot holds no datable balance points, letting
// the caller show a placeholder instead.
func BalancePNG(txs []core.Transaction) ([]byte, error) {
	xs, ys := seriesPoints(report.RunningBalanceSeries(txs))
	if len(xs) == 0 {
		return nil, nil
	}
	return renderTimeSeries("Net Balance Over Time", xs, ys)
}

// SavingsPNG renders the cumulative savings line chart.
func SavingsPNG(txs []core.Transaction) ([]byte, error) {
	xs, ys := seriesPoints(report.SavingsSeries(txs))
	if len(xs) == 0 {
		return nil, nil
	}
	return renderTimeSeries("Savings Over Time", xs, ys)
}

// CategoriesPNG renders total spending per category as a bar chart,
// largest first.
func CategoriesPNG(txs []core.Transaction) ([]byte, error) {
	breakdown := report.CategoryBreakdown(txs)
	if len(breakdown) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := breakdown[names[i]], breakdown[names[j]]
		if a.Equal(b) {
			return names[i] < names[j]
		}
		return a.GreaterThan(b)
	})

	bars := make([]chart.Value, 0, len(names))
	for _, name := range names {
		amount, _ := breakdown[name].Float64()
		label := name
		if label == "" {
			label = "(none)"
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s: $%s", label, breakdown[name].StringFixed(2)),
			Value: amount,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
			},
		})
	}

	graph := chart.BarChart{
		Title:    "Spending by Category",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: dollarFormatter,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func seriesPoints(seq func(func(core.Date, decimal.Decimal) bool)) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for d, v := range seq {
		f, _ := v.Float64()
		xs = append(xs, d.Time)
		ys = append(ys, f)
	}
	// go-chart refuses a continuous series with a single point; pad a
	// flat day so one lone transaction still renders.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}
	return xs, ys
}

func renderTimeSeries(title string, xs []time.Time, ys []float64) ([]byte, error) {
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: dollarFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render %s: %w", title, err)
	}
	return buffer.Bytes(), nil
}

func dollarFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.0f", f)
	}
	return ""
}
