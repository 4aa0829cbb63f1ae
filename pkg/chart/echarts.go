package chart

import (
	"fmt"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, s *Scene) {
	subtitle := fmt.Sprintf("n = %d, по каждую сторону не меньше %d", len(s.Points), s.Threshold)
	if s.Query != nil {
		if s.IsCenter {
			subtitle += fmt.Sprintf(" | %v - центральная точка", *s.Query)
		} else {
			subtitle += fmt.Sprintf(" | %v: %d / %d", *s.Query, s.Clockwise, s.Rest)
		}
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Центральные точки",
			Subtitle:             subtitle,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			Min:  s.Rect.MinX,
			Max:  s.Rect.MaxX,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			Min:  s.Rect.MinY,
			Max:  s.Rect.MaxY,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// polyline - линия через точки; closed замыкает ее на первую точку
func polyline(name string, points []centerpoint.Point, closed bool, style opts.LineStyle) *charts.Line {
	data := make([]opts.LineData, 0, len(points)+1)
	for _, p := range points {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	if closed && len(points) > 0 {
		data = append(data, opts.LineData{Value: []float64{points[0].X, points[0].Y}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, data).SetSeriesOptions(charts.WithLineStyleOpts(style))
	return line
}

// Page строит echarts график сцены: точки, проверяемая точка, контрпример
// с отсекаемой полуплоскостью, прямые границы и область центральных точек.
func Page(s *Scene) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, s)

	points := make([]opts.ScatterData, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, opts.ScatterData{Value: []float64{p.X, p.Y}})
	}
	scatter.AddSeries("Точки", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if s.Query != nil {
		color := "red"
		if s.IsCenter {
			color = "lime"
		}
		scatter.AddSeries("Запрос", []opts.ScatterData{{Value: []float64{s.Query.X, s.Query.Y}}}).
			SetSeriesOptions(
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: color,
				}),
			)
	}

	for _, l := range s.Constraints {
		a, b, ok := l.EndPoints(s.Rect)
		if !ok {
			continue
		}
		scatter.Overlap(polyline("Границы", []centerpoint.Point{a, b}, false, opts.LineStyle{
			Width: 1,
			Color: "gray",
		}))
	}

	if len(s.Region) > 0 {
		scatter.Overlap(polyline("Область", s.Region, true, opts.LineStyle{
			Width: 3,
			Color: "lime",
		}))
	}

	if s.CounterExample != nil {
		if a, b, ok := s.CounterExample.EndPoints(s.Rect); ok {
			scatter.Overlap(polyline("Контрпример", []centerpoint.Point{a, b}, false, opts.LineStyle{
				Width: 2,
				Color: "red",
			}))
		}
		if shaded := centerpoint.ClipHalfplane(*s.CounterExample, s.Rect); len(shaded) > 0 {
			scatter.Overlap(polyline("Полуплоскость", shaded, true, opts.LineStyle{
				Width: 1,
				Color: "salmon",
				Type:  "dashed",
			}))
		}
	}

	return scatter
}
