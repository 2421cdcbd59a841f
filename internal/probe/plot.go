package probe

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders energy and variance, each relative to its starting
// value, against simulated time. The format follows the file extension.
func WritePlot(path string, samples []Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("probe: no samples to plot")
	}
	p := plot.New()
	p.Title.Text = "Heightfield energy and variance"
	p.X.Label.Text = "Simulated time (ms)"
	p.Y.Label.Text = "Relative to start"
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		color color.RGBA
		value func(Sample) float64
	}{
		{"energy", color.RGBA{R: 196, G: 40, B: 40, A: 255}, func(s Sample) float64 { return s.Energy }},
		{"variance", color.RGBA{R: 16, G: 64, B: 160, A: 255}, func(s Sample) float64 { return s.Variance }},
	}
	for _, ser := range series {
		pts := relative(samples, ser.value)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("probe: %s line: %w", ser.name, err)
		}
		line.Color = ser.color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(ser.name, line)
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("probe: save plot: %w", err)
	}
	return nil
}

func relative(samples []Sample, value func(Sample) float64) plotter.XYs {
	base := value(samples[0])
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.Time
		pts[i].Y = value(s)
		if base != 0 {
			pts[i].Y /= base
		}
	}
	return pts
}
