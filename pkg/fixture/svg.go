// Package fixture читает наборы точек из SVG: каждый <circle> - точка (cx, cy).
package fixture

import (
	"io"
	"os"
	"strconv"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/0x0FACED/go-centerpoint/pkg/logger"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNoPoints = errors.New("в SVG нет ни одного circle")

// LoadSVG разбирает SVG и добавляет центры окружностей в новое множество.
// Повторные центры отбрасываются самим множеством.
func LoadSVG(r io.Reader, log *logger.ZapLogger) (*centerpoint.PointSet, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "разбор SVG")
	}

	circles := root.FindAll("circle")
	if len(circles) == 0 {
		return nil, ErrNoPoints
	}

	ps := centerpoint.NewPointSet(log)
	for _, el := range circles {
		x, err := attr(el, "cx")
		if err != nil {
			return nil, err
		}
		y, err := attr(el, "cy")
		if err != nil {
			return nil, err
		}
		ps.AddPoint(centerpoint.Point{X: x, Y: y})
	}

	ps.Logger.Info("[fx] Точки загружены из SVG",
		zap.Int("circles", len(circles)),
		zap.Int("points", ps.Size()),
	)
	return ps, nil
}

// LoadSVGFile - LoadSVG для файла на диске
func LoadSVGFile(path string, log *logger.ZapLogger) (*centerpoint.PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %q", path)
	}
	defer f.Close()

	ps, err := LoadSVG(f, log)
	return ps, errors.Wrapf(err, "fixture %q", path)
}

// отсутствующий атрибут считается нулем, как в SVG
func attr(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "атрибут %s=%q", name, s)
	}
	return v, nil
}
