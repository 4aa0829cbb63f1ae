package centerpoint

// ClipHalfplane строит выпуклый многоугольник: часть прямоугольника r,
// лежащую по часовой стрелке от прямой. Вершины идут так, что
// Orient(v[0], v[j], v[j+1]) не бывает CounterClockwise (на холсте с осью Y
// вниз это обход против часовой стрелки). Если прямая не пересекает r - nil.
func ClipHalfplane(line Line, r Rect) []Point {
	a, b, ok := line.EndPoints(r)
	if !ok {
		return nil
	}

	vertices := []Point{a, b}
	for _, corner := range r.Corners() {
		if Orient(line.P1, line.P2, corner) == Clockwise {
			vertices = append(vertices, corner)
		}
	}

	// пузырьком вокруг первой вершины: многоугольник выпуклый,
	// остальные вершины видны из нее в пределах 180 градусов
	for i := 1; i < len(vertices)-1; i++ {
		for j := 1; j < len(vertices)-i; j++ {
			if Orient(vertices[0], vertices[j], vertices[j+1]) == CounterClockwise {
				vertices[j], vertices[j+1] = vertices[j+1], vertices[j]
			}
		}
	}
	return vertices
}

// Constraints - прямые границы, ориентированные так, что по часовой стрелке
// от них меньше ceil(n/3) точек: эти открытые полуплоскости лежат вне области
// центральных точек. Подходят обе ориентации, если обе стороны бедные.
// Одна и та же ориентированная прямая попадает в список один раз.
func Constraints(ps *PointSet, lines []Line) []Line {
	k := ps.Threshold()

	var out []Line
	for _, l := range lines {
		for _, c := range [2]Line{l, l.Flip()} {
			if ps.HalfSpacePointCount(c) >= k || containsLine(out, c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func containsLine(lines []Line, l Line) bool {
	for _, o := range lines {
		if o.Equals(l) {
			return true
		}
	}
	return false
}

// RegionPolygon - область центральных точек внутри r: пересечение r с замкнутыми
// полуплоскостями против часовой стрелки от каждой прямой из Constraints.
func RegionPolygon(ps *PointSet, lines []Line, r Rect) []Point {
	c := r.Corners()
	polygon := []Point{c[0], c[2], c[3], c[1]}

	for _, constraint := range Constraints(ps, lines) {
		polygon = clipPolygon(polygon, constraint)
		if len(polygon) == 0 {
			return nil
		}
	}
	return polygon
}

// Sutherland-Hodgman для одной полуплоскости. Вершина ближе Epsilon к прямой
// считается лежащей на ней: после отсечения по прямой ее вершины лежат на ней
// только с точностью до округления. Ребро пересекается, только если его концы
// явно по разные стороны, точка пересечения интерполируется по расстояниям.
func clipPolygon(polygon []Point, l Line) []Point {
	n := l.NormalVector()
	dist := func(p Point) float64 {
		v := p.Sub(l.P1)
		return v.X*n.X + v.Y*n.Y
	}

	out := make([]Point, 0, len(polygon)+1)
	for i, cur := range polygon {
		prev := polygon[(i+len(polygon)-1)%len(polygon)]
		dPrev, dCur := dist(prev), dist(cur)

		if (dPrev > Epsilon && dCur < -Epsilon) || (dPrev < -Epsilon && dCur > Epsilon) {
			t := dPrev / (dPrev - dCur)
			out = append(out, prev.Move(cur.Sub(prev).Scale(t)))
		}
		if dCur >= -Epsilon {
			out = append(out, cur)
		}
	}
	return out
}
