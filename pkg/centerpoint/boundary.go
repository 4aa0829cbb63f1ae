package centerpoint

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FirstLine - прямая через две точки множества, от которой все точки лежат
// по одну сторону (против часовой стрелки) или на ней самой.
func FirstLine(ps *PointSet) (Line, error) {
	if ps.Size() < 2 {
		return Line{}, errors.Wrapf(ErrDegenerateInput, "first line needs 2 points, have %d", ps.Size())
	}

	// сортируем по Y, затем по X
	sorted := ps.Points()
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y == sorted[j].Y {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	p1, p2 := sorted[0], sorted[1]

	// если Y разные, ищем ближайшую по углу точку от горизонтали через p1
	if p1.Y != p2.Y {
		probe := Line{P1: p1, P2: p1.Move(Vector{10, 0})}
		next, err := ps.nextPoint(probe, true)
		if err != nil {
			return Line{}, err
		}
		p2 = next
	}

	ps.Logger.Debug("[bd] Первая прямая", zap.Any("p1", p1), zap.Any("p2", p2))
	return NewLine(p1, p2)
}

// nextPoint - следующая точка при вращении прямой l против часовой стрелки вокруг l.P1.
// Бакет L - точки против часовой стрелки от l, R - по часовой.
// Точки на самой прямой попадают в L, если add и они дальше l.P2,
// или если !add и они строго между l.P1 и l.P2.
func (ps *PointSet) nextPoint(l Line, add bool) (Point, error) {
	var left, right []Point
	for _, p := range ps.points {
		switch Orient(l.P1, l.P2, p) {
		case CounterClockwise:
			left = append(left, p)
		case Collinear:
			t := param(l.P1, l.P2, p)
			if (add && t > 1) || (!add && t > 0 && t < 1) {
				left = append(left, p)
			}
		default:
			right = append(right, p)
		}
	}

	if len(left) == 0 && len(right) == 0 {
		return Point{}, errors.Wrapf(ErrDegenerateInput, "no point to rotate to from %v", l)
	}

	pcL, okL := closestByAngle(l.P1, left)
	pcR, okR := closestByAngle(l.P1, right)

	// вращается вся прямая: точка из R задевается ее обратным лучом
	if !okL || (okR && Orient(l.P1, pcL, pcR) == CounterClockwise) {
		return pcR, nil
	}
	return pcL, nil
}

// closestByAngle - кандидат с наименьшим углом против часовой стрелки вокруг pivot.
// На одном направлении выигрывает ближайшая к pivot точка.
// Все кандидаты должны лежать в одной открытой полуплоскости относительно pivot.
func closestByAngle(pivot Point, candidates []Point) (Point, bool) {
	if len(candidates) == 0 {
		return Point{}, false
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		switch Orient(pivot, best, p) {
		case Clockwise:
			best = p
		case Collinear:
			if param(pivot, best, p) < 1 {
				best = p
			}
		}
	}
	return best, true
}

// param - положение p на прямой from -> to: 0 в from, 1 в to
func param(from, to, p Point) float64 {
	d := to.Sub(from)
	v := p.Sub(from)
	return (v.X*d.X + v.Y*d.Y) / (d.X*d.X + d.Y*d.Y)
}

// Boundaries вращает опорную прямую вокруг множества и возвращает все прямые
// по порядку. Последняя прямая совпадает со стартовой, которая стоит на позиции
// ceil(n/3)-1. При ошибке частичный результат не возвращается.
func Boundaries(ps *PointSet) ([]Line, error) {
	log := ps.Logger
	n := ps.Size()

	next := func(l Line, add bool) (Line, error) {
		p, err := ps.nextPoint(l, add)
		if err != nil {
			return Line{}, err
		}
		return NewLine(l.P1, p)
	}

	first, err := FirstLine(ps)
	if err != nil {
		return nil, err
	}
	lines := []Line{first}
	last := func() Line { return lines[len(lines)-1] }

	// минимальная полуплоскость, в которой хотя бы треть точек
	k := ps.Threshold()
	for i := 0; i < k-1; i++ {
		l, err := next(last(), true)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	start := last()
	log.Info("[bd] Стартовая прямая", zap.Stringer("line", start), zap.Int("k", k))

	l, err := next(start.Flip(), true)
	if err != nil {
		return nil, err
	}
	lines = append(lines, l)

	limit := 4 * n * n
	count := 1
	for !start.Equals(last()) {
		count++
		l, err := next(last().Flip(), false)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
		log.Debug("[bd] Поворот", zap.Int("step", count), zap.Stringer("line", l))

		if count > limit {
			log.Error("[bd] Вращение не вернулось к стартовой прямой", zap.Int("limit", limit))
			return nil, errors.Wrapf(ErrBoundaryNonTerminating, "%d points, %d steps", n, count)
		}
	}

	log.Info("[bd] Граница построена", zap.Int("lines", len(lines)))
	return lines, nil
}

// SolutionSequence - то, что проигрывает аниматор: горизонталь через нижнюю точку,
// затем все прямые Boundaries.
func SolutionSequence(ps *PointSet) ([]Line, error) {
	minY, err := ps.MinYPoint()
	if err != nil {
		return nil, err
	}
	lines, err := Boundaries(ps)
	if err != nil {
		return nil, err
	}
	horizontal := Line{P1: minY, P2: minY.Move(Vector{1, 0})}
	return append([]Line{horizontal}, lines...), nil
}
