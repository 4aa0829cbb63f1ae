package chart

import (
	"image/png"
	"io"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const pointRadius = 4

// RenderPNG рисует сцену в PNG. Ось y направлена вниз, как на холсте страницы.
// Полуплоскости, в которых меньше порога точек, закрашиваются розовым.
func RenderPNG(s *Scene, w io.Writer) error {
	width := int(s.Rect.MaxX - s.Rect.MinX)
	height := int(s.Rect.MaxY - s.Rect.MinY)
	if width <= 0 || height <= 0 {
		return errors.Errorf("пустой холст %vx%v", width, height)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.Translate(-s.Rect.MinX, -s.Rect.MinY)

	c.SetRGBA(1, 0.4, 0.6, 0.25)
	for _, l := range s.Constraints {
		if tracePolygon(c, centerpoint.ClipHalfplane(l, s.Rect)) {
			c.Fill()
		}
	}

	if tracePolygon(c, s.Region) {
		c.SetRGBA(0, 0.7, 0, 0.3)
		c.FillPreserve()
		c.SetRGB(0, 0.5, 0)
		c.SetLineWidth(2)
		c.Stroke()
	}

	if s.CounterExample != nil {
		if a, b, ok := s.CounterExample.EndPoints(s.Rect); ok {
			c.SetRGB(1, 0, 0)
			c.SetLineWidth(2)
			c.DrawLine(a.X, a.Y, b.X, b.Y)
			c.Stroke()
		}
	}

	c.SetRGB(0, 0, 0)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, pointRadius)
		c.Fill()
	}

	if s.Query != nil {
		if s.IsCenter {
			c.SetRGB(0, 0.8, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(s.Query.X, s.Query.Y, pointRadius+2)
		c.Fill()
	}

	return errors.Wrap(png.Encode(w, c.Image()), "png")
}

// tracePolygon кладет замкнутый путь; false если рисовать нечего
func tracePolygon(c *gg.Context, polygon []centerpoint.Point) bool {
	if len(polygon) < 3 {
		return false
	}
	c.MoveTo(polygon[0].X, polygon[0].Y)
	for _, p := range polygon[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	return true
}
