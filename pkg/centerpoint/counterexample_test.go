package centerpoint

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *PointSet {
	return NewPointSetFrom(nil, Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10})
}

func TestAngularSort(t *testing.T) {
	sorted := angularSort(Point{0, 0}, []Point{{1, 1}, {-1, 1}, {0, 1}, {2, 2}, {3, 0}})

	// (2, 2) на одном направлении с (1, 1), (3, 0) - с ограничителем
	assert.Equal(t, []Point{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}, sorted)
}

func TestTriangleCenterPoint(t *testing.T) {
	ps := NewPointSetFrom(nil, Point{10, 10}, Point{490, 10}, Point{250, 490})

	assert.True(t, IsCenterPoint(ps, Point{250, 170}))

	line, found := FindCounterExample(ps, Point{250, 600})
	require.True(t, found)
	assert.Equal(t, 3, ps.HalfSpacePointCount(line))
}

func TestSquareCenterPoint(t *testing.T) {
	ps := square()

	assert.True(t, IsCenterPoint(ps, Point{5, 5}))

	t.Run("near the bottom edge", func(t *testing.T) {
		q := Point{5, 1}
		line, found := FindCounterExample(ps, q)
		require.True(t, found)
		assert.True(t, line.P1.Equals(q) || line.P2.Equals(q))
		assert.Equal(t, 3, ps.HalfSpacePointCount(line))

		cw, rest := CounterExampleCounts(ps, line)
		assert.Equal(t, 3, cw)
		assert.Equal(t, 1, rest)
	})

	t.Run("outside", func(t *testing.T) {
		line, found := FindCounterExample(ps, Point{20, 5})
		require.True(t, found)
		assert.Equal(t, 4, ps.HalfSpacePointCount(line))
	})

	t.Run("query is a point of the set", func(t *testing.T) {
		_, found := FindCounterExample(ps, Point{0, 0})
		assert.True(t, found)
	})
}

func TestEmptyAndTinySets(t *testing.T) {
	assert.True(t, IsCenterPoint(NewPointSet(nil), Point{1, 1}))

	single := NewPointSetFrom(nil, Point{3, 3})
	assert.False(t, IsCenterPoint(single, Point{0, 0}))
	assert.True(t, IsCenterPoint(single, Point{3, 3}))
}

func TestColinearSet(t *testing.T) {
	ps := NewPointSetFrom(nil, Point{10, 10}, Point{20, 10}, Point{30, 10})

	// точки на горизонтали через query отбрасываются, прямых нет
	assert.True(t, IsCenterPoint(ps, Point{20, 10}))
	_, found := FindCounterExample(ps, Point{20, 20})
	assert.True(t, found)
}

// Перебор всех направлений через q: середины между соседними углами точек
func bruteForceIsCenterPoint(points []Point, q Point) bool {
	var angles []float64
	for _, p := range points {
		if p.Equals(q) {
			continue
		}
		a := math.Mod(math.Atan2(p.Y-q.Y, p.X-q.X)+math.Pi, math.Pi)
		if a > math.Pi-1e-9 {
			a = 0
		}
		angles = append(angles, a)
	}
	sort.Float64s(angles)

	var unique []float64
	for _, a := range angles {
		if len(unique) == 0 || a-unique[len(unique)-1] > 1e-9 {
			unique = append(unique, a)
		}
	}

	var directions []float64
	switch len(unique) {
	case 0:
		directions = []float64{0}
	default:
		for i := range unique {
			var next float64
			if i+1 < len(unique) {
				next = unique[i+1]
			} else {
				next = unique[0] + math.Pi
			}
			directions = append(directions, (unique[i]+next)/2)
		}
	}

	limit := 2 * len(points) / 3
	for _, theta := range directions {
		for _, sign := range []float64{1, -1} {
			dx, dy := sign*math.Cos(theta), sign*math.Sin(theta)
			var count int
			for _, p := range points {
				if dx*(p.Y-q.Y)-dy*(p.X-q.X) < 0 {
					count++
				}
			}
			if count > limit {
				return false
			}
		}
	}
	return true
}

func TestCenterPointMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var centers, others int
	for trial := 0; trial < 400; trial++ {
		n := 1 + rng.Intn(12)
		ps := NewPointSet(nil)
		_, err := ps.GenerateRandomPoints(rng, n, 0, 20, 0, 20)
		require.NoError(t, err)

		q := Point{float64(rng.Intn(21)), float64(rng.Intn(21))}
		if trial%3 == 0 {
			// центроид чаще оказывается центральной точкой
			c, err := ps.Centroid()
			require.NoError(t, err)
			q = Point{math.Round(c.X), math.Round(c.Y)}
		}

		want := bruteForceIsCenterPoint(ps.Points(), q)
		line, found := FindCounterExample(ps, q)
		require.Equal(t, want, !found, "points=%v q=%v", ps.Points(), q)

		if found {
			others++
			// контрпример проходит через q и отсекает больше 2n/3 точек
			assert.True(t, line.P1.Equals(q) || line.P2.Equals(q))
			assert.Greater(t, ps.HalfSpacePointCount(line), 2*ps.Size()/3)
		} else {
			centers++
		}
	}

	assert.NotZero(t, centers)
	assert.NotZero(t, others)
}
