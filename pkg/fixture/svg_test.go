package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="500">
  <g>
    <circle cx="10" cy="10" r="4"/>
    <circle cx="490" cy="10" r="4"/>
  </g>
  <circle cx="250" cy="490" r="4"/>
  <circle cx="10" cy="10" r="2"/>
  <rect x="0" y="0" width="5" height="5"/>
</svg>`

func TestLoadSVG(t *testing.T) {
	ps, err := LoadSVG(strings.NewReader(triangleSVG), nil)
	require.NoError(t, err)

	assert.Equal(t, []centerpoint.Point{{X: 10, Y: 10}, {X: 490, Y: 10}, {X: 250, Y: 490}}, ps.Points())
	assert.True(t, centerpoint.IsCenterPoint(ps, centerpoint.Point{X: 250, Y: 170}))
}

func TestLoadSVGErrors(t *testing.T) {
	t.Run("no circles", func(t *testing.T) {
		_, err := LoadSVG(strings.NewReader(`<svg><rect x="1" y="1" width="4" height="4"/></svg>`), nil)
		assert.True(t, errors.Is(err, ErrNoPoints))
	})

	t.Run("bad coordinate", func(t *testing.T) {
		_, err := LoadSVG(strings.NewReader(`<svg><circle cx="abc" cy="1" r="2"/></svg>`), nil)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSVGFile(filepath.Join(t.TempDir(), "nope.svg"), nil)
		assert.Error(t, err)
	})
}

func TestLoadSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.svg")
	require.NoError(t, os.WriteFile(path, []byte(triangleSVG), 0o644))

	ps, err := LoadSVGFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, ps.Size())
}
