package main

import (
	"os"

	"github.com/avandermeer/planar"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writePlot renders the input segments and the found intersection points as
// an HTML scatter chart.
func writePlot(path string, segments []planar.Segment, points []planar.Point) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1020px",
			Height: "580px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Segment intersections",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
		}),
	)

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Intersections", data).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "red",
			}),
		)

	for _, s := range segments {
		line := charts.NewLine()
		line.AddSeries("Segments", []opts.LineData{
			{Value: []float64{s.P1.X, s.P1.Y}},
			{Value: []float64{s.P2.X, s.P2.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
			}),
		)
		scatter.Overlap(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := scatter.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
