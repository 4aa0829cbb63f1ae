package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/0x0FACED/go-centerpoint/pkg/fixture"
	"github.com/0x0FACED/go-centerpoint/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	width  int
	height int
	seed   int64
	points int

	addr string

	out    string
	query  string
	svg    string
	imgcat bool
}

// Генерируем случайные точки в пределах холста
func generatePoints(cfg config, log *logger.ZapLogger) (*centerpoint.PointSet, error) {
	ps := centerpoint.NewPointSet(log)
	rng := rand.New(rand.NewSource(cfg.seed))
	_, err := ps.GenerateRandomPoints(rng, cfg.points, 0, cfg.width, 0, cfg.height)
	return ps, err
}

// loadPoints берет точки из SVG, если он задан, иначе генерирует их
func loadPoints(cfg config, log *logger.ZapLogger) (*centerpoint.PointSet, error) {
	if cfg.svg != "" {
		return fixture.LoadSVGFile(cfg.svg, log)
	}
	return generatePoints(cfg, log)
}

// parsePoint разбирает "x,y"
func parsePoint(s string) (centerpoint.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return centerpoint.Point{}, errors.Errorf("точка %q: нужно x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return centerpoint.Point{}, errors.Wrapf(err, "точка %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return centerpoint.Point{}, errors.Wrapf(err, "точка %q", s)
	}
	return centerpoint.Point{X: x, Y: y}, nil
}

func main() {
	var cfg config

	app := kingpin.New("centerpoint", "Центральные точки конечного множества на плоскости.")
	app.Flag("width", "Ширина холста.").Default("500").IntVar(&cfg.width)
	app.Flag("height", "Высота холста.").Default("500").IntVar(&cfg.height)
	app.Flag("seed", "Зерно генератора точек (0 - текущее время).").Default("0").Int64Var(&cfg.seed)

	serve := app.Command("serve", "HTTP страница с формой и графиком.").Default()
	serve.Flag("addr", "Адрес сервера.").Default(":8080").StringVar(&cfg.addr)
	serve.Flag("points", "Количество точек по умолчанию.").Default("12").IntVar(&cfg.points)

	render := app.Command("render", "Рисует множество, область и проверку точки в PNG.")
	render.Flag("out", "Куда сохранить PNG.").Default("centerpoint.png").StringVar(&cfg.out)
	render.Flag("points", "Количество случайных точек.").Default("12").IntVar(&cfg.points)
	render.Flag("query", "Проверяемая точка x,y (по умолчанию центроид).").StringVar(&cfg.query)
	render.Flag("svg", "SVG с точками <circle cx cy> вместо случайных.").ExistingFileVar(&cfg.svg)
	render.Flag("imgcat", "Вывести картинку в терминал.").BoolVar(&cfg.imgcat)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	log := logger.New(zapcore.Lock(os.Stderr))
	defer log.Sync()

	var err error
	switch command {
	case serve.FullCommand():
		err = runServer(cfg, log)
	case render.FullCommand():
		err = runRender(cfg, log)
	}
	if err != nil {
		log.Fatal("[app] Ошибка", zap.String("command", command), zap.Error(err))
	}
}
