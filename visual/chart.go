package visual

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 512
	chartHeight = 512
)

var (
	portionColor   = drawing.ColorFromHex("6366f1")
	remainingColor = drawing.ColorFromHex("e2e8f0")
)

// RenderDonutPNG writes p as a two-slice donut chart in PNG format.
func RenderDonutPNG(p Proportion, w io.Writer) error {
	var values []chart.Value
	// go-chart draws a zero slice as a hairline, so empty segments are left out.
	if p.Portion > 0 {
		values = append(values, chart.Value{
			Label: "Portion " + p.Label(),
			Value: p.Portion,
			Style: chart.Style{FillColor: portionColor, StrokeColor: drawing.ColorWhite, StrokeWidth: 2},
		})
	}
	if p.Remaining > 0 {
		values = append(values, chart.Value{
			Label: "Remaining",
			Value: p.Remaining,
			Style: chart.Style{FillColor: remainingColor, StrokeColor: drawing.ColorWhite, StrokeWidth: 2, FontColor: drawing.ColorBlack},
		})
	}

	donut := chart.DonutChart{
		Title:  p.Label(),
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	if err := donut.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// ExportPNG renders p into a timestamped file under dir and returns its path.
func ExportPNG(p Proportion, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	name := fmt.Sprintf("proportion-%s.png", time.Now().Format("20060102-150405.000"))
	path := filepath.Join(dir, name)

	if err := writeFile(path, func(w io.Writer) error { return RenderDonutPNG(p, w) }); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile creates path and fills it with render. A failed render or close
// leaves no file behind.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write chart file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return render(f)
}
