package centerpoint

import (
	"go.uber.org/zap"
)

// FindCounterExample ищет прямую через query, по одну сторону от которой
// строго больше floor(2n/3) точек. Если такой нет - query центральная точка.
func FindCounterExample(ps *PointSet, query Point) (Line, bool) {
	log := ps.Logger
	n := ps.Size()

	// точки ниже query отражаем относительно нее:
	// полный оборот вокруг query сводится к половине
	shifted := make([]Point, 0, n)
	for _, p := range ps.points {
		if p.Y < query.Y {
			shifted = append(shifted, Point{query.X + (query.X - p.X), query.Y + (query.Y - p.Y)})
		} else {
			shifted = append(shifted, p)
		}
	}

	sorted := angularSort(query, shifted)
	log.Debug("[cp] Точки отсортированы по углу", zap.Any("query", query), zap.Int("directions", len(sorted)-2))

	// кандидаты: прямые через query и середину соседних по углу точек, в обе стороны
	candidates := make([]Line, 0, 2*(len(sorted)-1))
	for i := 0; i < len(sorted)-1; i++ {
		mid := Point{(sorted[i].X + sorted[i+1].X) / 2, (sorted[i].Y + sorted[i+1].Y) / 2}
		// совпадает с query только у двух ограничителей, когда больше ничего нет
		if mid.Equals(query) {
			continue
		}
		candidates = append(candidates, Line{P1: query, P2: mid}, Line{P1: mid, P2: query})
	}

	var largestLine Line
	var largest int
	for _, line := range candidates {
		if count := ps.HalfSpacePointCount(line); count > largest {
			largestLine = line
			largest = count
		}
	}

	limit := 2 * n / 3
	log.Debug("[cp] Лучшая разделяющая прямая", zap.Stringer("line", largestLine), zap.Int("count", largest), zap.Int("limit", limit))

	if largest > limit {
		log.Info("[cp] Найден контрпример", zap.Any("query", query), zap.Stringer("line", largestLine), zap.Int("count", largest))
		return largestLine, true
	}

	log.Info("[cp] Точка является центральной", zap.Any("query", query))
	return Line{}, false
}

// IsCenterPoint - контрпримера нет
func IsCenterPoint(ps *PointSet, query Point) bool {
	_, found := FindCounterExample(ps, query)
	return !found
}

// angularSort вставками упорядочивает точки против часовой стрелки вокруг center.
// Все точки должны лежать не ниже center. Список начинается с ограничителей
// center+(1,0) и заканчивается center-(1,0). Точка на одном направлении
// с уже вставленной отбрасывается.
func angularSort(center Point, points []Point) []Point {
	sorted := make([]Point, 2, len(points)+2)
	sorted[0] = center.Move(Vector{1, 0})
	sorted[1] = center.Move(Vector{-1, 0})

	for _, p := range points {
		i := 0
		ccw := Orient(center, sorted[i], p)
		// последний ограничитель всегда дает Clockwise, выход за границу невозможен
		for ccw == CounterClockwise {
			i++
			ccw = Orient(center, sorted[i], p)
		}
		if ccw == Clockwise {
			sorted = append(sorted, Point{})
			copy(sorted[i+1:], sorted[i:])
			sorted[i] = p
		}
	}
	return sorted
}

// CounterExampleCounts - число точек по обе стороны от прямой:
// строго по часовой стрелке и все остальные
func CounterExampleCounts(ps *PointSet, line Line) (clockwise, rest int) {
	clockwise = ps.HalfSpacePointCount(line)
	return clockwise, ps.Size() - clockwise
}
