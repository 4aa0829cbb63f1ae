package centerpoint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	assert.Equal(t, CounterClockwise, Orient(a, b, Point{5, 5}))
	assert.Equal(t, Clockwise, Orient(a, b, Point{5, -5}))
	assert.Equal(t, Collinear, Orient(a, b, Point{20, 0}))
	assert.True(t, Colinear(a, b, Point{-3, 0}))
	assert.False(t, Colinear(a, b, Point{-3, 1}))
}

func TestOrientAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() Point {
		return Point{float64(rng.Intn(100)), float64(rng.Intn(100))}
	}

	for i := 0; i < 500; i++ {
		a, b, c := random(), random(), random()
		if Colinear(a, b, c) {
			continue
		}
		assert.Equal(t, Orient(a, b, c), -Orient(b, a, c), "a=%v b=%v c=%v", a, b, c)
		// циклический сдвиг знак не меняет
		assert.Equal(t, Orient(a, b, c), Orient(b, c, a))
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
	assert.Equal(t, "Orientation(5)", Orientation(5).String())
}

func TestCocyclic(t *testing.T) {
	t.Run("square in order", func(t *testing.T) {
		assert.True(t, Cocyclic(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1}))
	})
	t.Run("square shuffled", func(t *testing.T) {
		assert.True(t, Cocyclic(Point{0, 0}, Point{1, 1}, Point{1, 0}, Point{0, 1}))
		assert.True(t, Cocyclic(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0}))
	})
	t.Run("off the circle", func(t *testing.T) {
		assert.False(t, Cocyclic(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 2}))
	})
	t.Run("three colinear", func(t *testing.T) {
		assert.False(t, Cocyclic(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{0, 1}))
		assert.False(t, Cocyclic(Point{0, 0}, Point{1, 1}, Point{0, 1}, Point{2, 2}))
	})
}

func TestVector(t *testing.T) {
	v := Vector{1, 2}
	assert.Equal(t, Vector{4, 6}, v.Add(Vector{3, 4}))
	assert.Equal(t, Vector{-2, -2}, v.Sub(Vector{3, 4}))
	assert.Equal(t, Vector{2.5, 5}, v.Scale(2.5))
	assert.True(t, v.Equals(Vector{1 + 1e-6, 2 - 1e-6}))
	assert.False(t, v.Equals(Vector{1 + 1e-4, 2}))
	assert.InDelta(t, 5, Vector{3, 4}.Length(), 1e-12)
}

func TestPoint(t *testing.T) {
	p := Point{1, 2}
	assert.Equal(t, Point{4, 6}, p.Move(Vector{3, 4}))
	assert.Equal(t, Vector{-2, -2}, p.Sub(Point{3, 4}))
	assert.True(t, p.Equals(Point{1, 2}))
	// точки сравниваются без допуска
	assert.False(t, p.Equals(Point{1 + 1e-9, 2}))
	assert.InDelta(t, 5, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
}

func TestRect(t *testing.T) {
	r := NewRect(500, 300)
	assert.True(t, r.Contains(Point{0, 0}))
	assert.True(t, r.Contains(Point{500, 300}))
	assert.False(t, r.Contains(Point{501, 10}))
	assert.Equal(t, [4]Point{{0, 0}, {0, 300}, {500, 0}, {500, 300}}, r.Corners())
}
