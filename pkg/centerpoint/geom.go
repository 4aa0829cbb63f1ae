package centerpoint

import (
	"fmt"
	"math"
)

// Допуск для сравнения векторов и прямых. Точки сравниваются точно.
const Epsilon = 1e-5

type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(c float64) Vector {
	return Vector{c * v.X, c * v.Y}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Equals сравнивает покомпонентно с допуском Epsilon
func (v Vector) Equals(o Vector) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}

type Point struct {
	X float64
	Y float64
}

// Equals - точное совпадение координат, на нем держится дедупликация в PointSet
func (p Point) Equals(o Point) bool {
	return p == o
}

// Move сдвигает точку на вектор
func (p Point) Move(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub возвращает вектор из o в p
func (p Point) Sub(o Point) Vector {
	return Vector{p.X - o.X, p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Orientation - знак поворота тройки точек
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	if o < Clockwise || o > CounterClockwise {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// Orient - знак векторного произведения для a -> b -> c.
// Считаем знак вычисленного значения как есть, без округления:
// иначе угловые сортировки перестают быть согласованными.
func Orient(a, b, c Point) Orientation {
	d := a.X*(b.Y-c.Y) - b.X*(a.Y-c.Y) + c.X*(a.Y-b.Y)
	switch {
	case d > 0:
		return CounterClockwise
	case d < 0:
		return Clockwise
	}
	return Collinear
}

func Colinear(a, b, c Point) bool {
	return Orient(a, b, c) == Collinear
}

func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Cocyclic проверяет, лежат ли четыре точки на одной окружности (теорема Птолемея)
func Cocyclic(a, b, c, d Point) bool {
	// если какие-то три точки на одной прямой - окружности нет
	if Colinear(a, b, c) || Colinear(a, b, d) || Colinear(a, c, d) || Colinear(b, c, d) {
		return false
	}

	// упорядочиваем против часовой стрелки
	p1, p2, p3, p4 := a, b, c, d
	if Orient(p1, p2, p3) == Clockwise {
		p2, p3 = p3, p2
	}
	if Orient(p1, p3, p4) == Clockwise {
		p3, p4 = p4, p3
		if Orient(p1, p2, p3) == Clockwise {
			p2, p3 = p3, p2
		}
	}

	diagonals := Distance(p1, p3) * Distance(p2, p4)
	sides := Distance(p1, p2)*Distance(p3, p4) + Distance(p2, p3)*Distance(p1, p4)
	return math.Abs(diagonals-sides) < Epsilon
}

// Rect - прямоугольник [MinX, MaxX] x [MinY, MaxY]
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewRect - холст [0, w] x [0, h]
func NewRect(w, h float64) Rect {
	return Rect{MinX: 0, MaxX: w, MinY: 0, MaxY: h}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Corners в порядке (min,min), (min,max), (max,min), (max,max)
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.MinX, r.MinY},
		{r.MinX, r.MaxY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
	}
}
