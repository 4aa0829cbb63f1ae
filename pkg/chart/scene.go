package chart

import (
	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"go.uber.org/zap"
)

// Scene - все, что рисуется на холсте: точки, проверяемая точка с контрпримером,
// прямые границы и сама область центральных точек.
type Scene struct {
	Rect      centerpoint.Rect
	Points    []centerpoint.Point
	Threshold int

	Query          *centerpoint.Point
	IsCenter       bool
	CounterExample *centerpoint.Line
	// точек по часовой стрелке от контрпримера и остальных
	Clockwise int
	Rest      int

	Boundaries  []centerpoint.Line
	Constraints []centerpoint.Line
	Region      []centerpoint.Point
	// ошибка построения границы; точки и контрпример при этом остаются
	BoundaryErr error
}

// NewScene считает контрпример для query (если задана) и границу области.
func NewScene(ps *centerpoint.PointSet, query *centerpoint.Point, r centerpoint.Rect) *Scene {
	s := &Scene{
		Rect:      r,
		Points:    ps.Points(),
		Threshold: ps.Threshold(),
	}

	if query != nil {
		q := *query
		s.Query = &q
		if line, found := centerpoint.FindCounterExample(ps, q); found {
			s.CounterExample = &line
			s.Clockwise, s.Rest = centerpoint.CounterExampleCounts(ps, line)
		} else {
			s.IsCenter = true
		}
	}

	lines, err := centerpoint.Boundaries(ps)
	if err != nil {
		ps.Logger.Warn("[scene] Граница не построена", zap.Error(err))
		s.BoundaryErr = err
		return s
	}

	s.Boundaries = lines
	s.Constraints = centerpoint.Constraints(ps, lines)
	s.Region = centerpoint.RegionPolygon(ps, lines, r)

	ps.Logger.Info("[scene] Сцена готова",
		zap.Int("points", len(s.Points)),
		zap.Int("boundaries", len(s.Boundaries)),
		zap.Int("region", len(s.Region)),
	)
	return s
}
