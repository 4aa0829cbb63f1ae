package centerpoint

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Окно, в котором сравниваются прямые в Line.Equals
var equalityBounds = Rect{MinX: -1000, MaxX: 1000, MinY: -1000, MaxY: 1000}

// Line - бесконечная прямая через P1 и P2 с направлением P1 -> P2.
// По часовой стрелке от направления лежит закрашиваемая полуплоскость.
// Точки должны различаться, поэтому строим через NewLine.
type Line struct {
	P1 Point
	P2 Point
}

func NewLine(p1, p2 Point) (Line, error) {
	if p1.Equals(p2) {
		return Line{}, errors.Wrapf(ErrDegenerateLine, "line %v -> %v", p1, p2)
	}
	return Line{P1: p1, P2: p2}, nil
}

func (l Line) String() string {
	return fmt.Sprintf("%v -> %v", l.P1, l.P2)
}

// Flip - та же прямая в обратном направлении
func (l Line) Flip() Line {
	return Line{P1: l.P2, P2: l.P1}
}

func (l Line) SegmentLength() float64 {
	return Distance(l.P1, l.P2)
}

func (l Line) direction() Vector {
	return l.P2.Sub(l.P1)
}

func (l Line) UnitVector() Vector {
	return l.direction().Scale(1 / l.SegmentLength())
}

// NormalVector - единичный вектор, повернутый на 90 градусов против часовой стрелки
func (l Line) NormalVector() Vector {
	length := l.SegmentLength()
	return Vector{(l.P1.Y - l.P2.Y) / length, (l.P2.X - l.P1.X) / length}
}

// Intersection решает систему 2x2 через определители.
// Знаменатель сравнивается с нулем точно: параллельные и совпадающие прямые дают false.
func (l Line) Intersection(o Line) (Point, bool) {
	x1, y1 := l.P1.X, l.P1.Y
	x2, y2 := l.P2.X, l.P2.Y
	x3, y3 := o.P1.X, o.P1.Y
	x4, y4 := o.P2.X, o.P2.Y

	denominator := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denominator == 0 {
		return Point{}, false
	}

	det12 := x1*y2 - y1*x2
	det34 := x3*y4 - y3*x4
	x := (det12*(x3-x4) - det34*(x1-x2)) / denominator
	y := (det12*(y3-y4) - det34*(y1-y2)) / denominator

	return Point{x, y}, true
}

// EndPoints находит точки, где прямая пересекает границу прямоугольника.
// Порядок точек совпадает с направлением прямой. Если прямая не задевает
// прямоугольник (или касается его только в углу), возвращается false.
func (l Line) EndPoints(r Rect) (Point, Point, bool) {
	var a, b Point

	switch {
	// вертикальная прямая
	case l.P1.X == l.P2.X:
		if l.P1.X < r.MinX || l.P1.X > r.MaxX {
			return Point{}, Point{}, false
		}
		a, b = Point{l.P1.X, r.MinY}, Point{l.P1.X, r.MaxY}
	// горизонтальная прямая
	case l.P1.Y == l.P2.Y:
		if l.P1.Y < r.MinY || l.P1.Y > r.MaxY {
			return Point{}, Point{}, false
		}
		a, b = Point{r.MinX, l.P1.Y}, Point{r.MaxX, l.P1.Y}
	default:
		slope := (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
		yIntercept := l.P1.Y - slope*l.P1.X

		// кандидаты на каждой стороне, прохождение через угол дает дубликат
		candidates := make([]Point, 0, 4)
		push := func(p Point) {
			for _, c := range candidates {
				if c.Equals(p) {
					return
				}
			}
			candidates = append(candidates, p)
		}

		if left := slope*r.MinX + yIntercept; left >= r.MinY && left <= r.MaxY {
			push(Point{r.MinX, left})
		}
		if top := (r.MaxY - yIntercept) / slope; top >= r.MinX && top <= r.MaxX {
			push(Point{top, r.MaxY})
		}
		if right := slope*r.MaxX + yIntercept; right >= r.MinY && right <= r.MaxY {
			push(Point{r.MaxX, right})
		}
		if bottom := (r.MinY - yIntercept) / slope; bottom >= r.MinX && bottom <= r.MaxX {
			push(Point{bottom, r.MinY})
		}

		if len(candidates) < 2 {
			return Point{}, Point{}, false
		}
		a, b = candidates[0], candidates[1]
	}

	// отрезок a -> b должен смотреть туда же, куда и прямая
	d := l.direction()
	s := b.Sub(a)
	if s.X*d.X+s.Y*d.Y < 0 {
		a, b = b, a
	}
	return a, b, true
}

// Equals сравнивает концы обеих прямых, обрезанных окном [-1000, 1000]^2, с допуском Epsilon.
// Прямые, не задевающие окно, сравниваются по направлению и смещению.
func (l Line) Equals(o Line) bool {
	a1, b1, ok1 := l.EndPoints(equalityBounds)
	a2, b2, ok2 := o.EndPoints(equalityBounds)
	if ok1 != ok2 {
		return false
	}
	if ok1 {
		return a1.Sub(a2).Equals(Vector{}) && b1.Sub(b2).Equals(Vector{})
	}

	offset := o.P1.Sub(l.P1)
	n := l.NormalVector()
	return l.UnitVector().Equals(o.UnitVector()) && math.Abs(offset.X*n.X+offset.Y*n.Y) < Epsilon
}
