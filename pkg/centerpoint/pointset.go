package centerpoint

import (
	"math"
	"math/bits"
	"math/rand"

	"github.com/0x0FACED/go-centerpoint/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PointSet - множество точек без повторов (совпадение координат точное).
// Порядок вставки сохраняется, индекс по координатам нужен только для дедупликации.
type PointSet struct {
	points []Point
	index  map[Point]int

	// кэш центроида, сбрасывается при любом изменении
	centroid *Point

	Logger *logger.ZapLogger
}

// NewPointSet создает пустое множество. nil логгер заменяется на Nop.
func NewPointSet(log *logger.ZapLogger) *PointSet {
	if log == nil {
		log = logger.Nop()
	}
	return &PointSet{
		index:  make(map[Point]int),
		Logger: log,
	}
}

// NewPointSetFrom - множество из готового списка, повторы отбрасываются
func NewPointSetFrom(log *logger.ZapLogger, points ...Point) *PointSet {
	ps := NewPointSet(log)
	for _, p := range points {
		ps.AddPoint(p)
	}
	return ps
}

func (ps *PointSet) Size() int {
	return len(ps.points)
}

// Points возвращает копию точек в порядке вставки
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.points))
	copy(out, ps.points)
	return out
}

func (ps *PointSet) Contains(p Point) bool {
	_, ok := ps.index[p]
	return ok
}

// AddPoint добавляет точку. Повтор ничего не меняет.
// Возвращает размер множества после операции.
func (ps *PointSet) AddPoint(p Point) int {
	if ps.Contains(p) {
		return len(ps.points)
	}
	ps.index[p] = len(ps.points)
	ps.points = append(ps.points, p)
	ps.centroid = nil
	return len(ps.points)
}

// RemovePoint удаляет точку с точно такими же координатами
func (ps *PointSet) RemovePoint(p Point) int {
	i, ok := ps.index[p]
	if !ok {
		return len(ps.points)
	}

	ps.points = append(ps.points[:i], ps.points[i+1:]...)
	delete(ps.index, p)
	// индексы после удаленной точки сдвинулись
	for j := i; j < len(ps.points); j++ {
		ps.index[ps.points[j]] = j
	}
	ps.centroid = nil
	return len(ps.points)
}

// GenerateRandomPoints добавляет ровно n новых точек с целыми координатами
// из [minX, maxX] x [minY, maxY]. Совпадения просто перегенерируются.
func (ps *PointSet) GenerateRandomPoints(rng *rand.Rand, n, minX, maxX, minY, maxY int) (int, error) {
	if n <= 0 {
		return len(ps.points), nil
	}

	// без этой проверки цикл не закончится, если свободных точек меньше n
	free := gridSize(minX, maxX, minY, maxY)
	for _, p := range ps.points {
		if p.X >= float64(minX) && p.X <= float64(maxX) && p.Y >= float64(minY) && p.Y <= float64(maxY) &&
			p.X == math.Trunc(p.X) && p.Y == math.Trunc(p.Y) {
			free--
		}
	}
	if uint64(n) > free {
		return len(ps.points), errors.Wrapf(ErrInsufficientRange, "want %d points, %d free", n, free)
	}

	start := len(ps.points)
	var attempts int
	for len(ps.points)-start < n {
		attempts++
		x := randIn(rng, minX, maxX)
		y := randIn(rng, minY, maxY)
		ps.AddPoint(Point{float64(x), float64(y)})
	}

	ps.Logger.Debug("[ps] Сгенерированы случайные точки", zap.Int("n", n), zap.Int("attempts", attempts))
	return len(ps.points), nil
}

// gridSize - число целых точек в прямоугольнике; при переполнении uint64 насыщается
func gridSize(minX, maxX, minY, maxY int) uint64 {
	if maxX < minX || maxY < minY {
		return 0
	}
	w := uint64(maxX) - uint64(minX) + 1
	h := uint64(maxY) - uint64(minY) + 1
	if w == 0 || h == 0 {
		// весь диапазон int
		return math.MaxUint64
	}
	hi, lo := bits.Mul64(w, h)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// randIn - равномерно из [lo, hi], в том числе когда hi-lo+1 не помещается в int
func randIn(rng *rand.Rand, lo, hi int) int {
	w := uint64(hi) - uint64(lo) + 1
	switch {
	case w == 0:
		return int(rng.Uint64())
	case w > math.MaxInt:
		return int(uint64(lo) + rng.Uint64()%w)
	}
	return lo + rng.Intn(int(w))
}

// Centroid - среднее арифметическое координат, кэшируется до изменения множества
func (ps *PointSet) Centroid() (Point, error) {
	if len(ps.points) == 0 {
		return Point{}, errors.Wrap(ErrEmptySet, "centroid")
	}
	if ps.centroid != nil {
		return *ps.centroid, nil
	}

	var totalX, totalY float64
	for _, p := range ps.points {
		totalX += p.X
		totalY += p.Y
	}
	n := float64(len(ps.points))
	c := Point{totalX / n, totalY / n}
	ps.centroid = &c
	return c, nil
}

// MinYPoint - точка с наименьшим Y, при равенстве побеждает первая
func (ps *PointSet) MinYPoint() (Point, error) {
	if len(ps.points) == 0 {
		return Point{}, errors.Wrap(ErrEmptySet, "min y point")
	}

	minY := ps.points[0]
	for _, p := range ps.points[1:] {
		if p.Y < minY.Y {
			minY = p
		}
	}
	return minY, nil
}

// HalfSpacePointCount - сколько точек лежит строго по часовой стрелке от прямой
func (ps *PointSet) HalfSpacePointCount(line Line) int {
	var count int
	for _, p := range ps.points {
		if Orient(line.P1, line.P2, p) == Clockwise {
			count++
		}
	}
	return count
}

// Threshold - сколько точек должно быть по каждую сторону от любой прямой
// через центральную точку: ceil(n/3)
func (ps *PointSet) Threshold() int {
	return (len(ps.points) + 2) / 3
}
