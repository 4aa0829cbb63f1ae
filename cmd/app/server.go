package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/0x0FACED/go-centerpoint/pkg/chart"
	"github.com/0x0FACED/go-centerpoint/pkg/logger"
	"github.com/0x0FACED/go-centerpoint/static"
	"go.uber.org/zap"
)

// formInt - значение поля формы или def, если поле пустое или не число
func formInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	return v
}

func formFloat(r *http.Request, name string, def float64) (float64, bool) {
	v, err := strconv.ParseFloat(r.FormValue(name), 64)
	if err != nil {
		return def, false
	}
	return v, true
}

// http обработчик страницы с графиком и формой для ввода данных
func pageHandler(defaults config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := defaults

		var query *centerpoint.Point
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			cfg.width = formInt(r, "width", cfg.width)
			cfg.height = formInt(r, "height", cfg.height)
			cfg.points = formInt(r, "points", cfg.points)
			cfg.seed = int64(formInt(r, "seed", int(cfg.seed)))

			x, okX := formFloat(r, "qx", 0)
			y, okY := formFloat(r, "qy", 0)
			if okX && okY {
				query = &centerpoint.Point{X: x, Y: y}
			}
		}

		log := logger.New()
		defer log.ClearLogs()

		ps, err := generatePoints(cfg, log)
		if err != nil {
			log.Error("[app] Не удалось сгенерировать точки", zap.Error(err))
		}

		if query == nil {
			if c, err := ps.Centroid(); err == nil {
				query = &c
			}
		}

		scene := chart.NewScene(ps, query, centerpoint.NewRect(float64(cfg.width), float64(cfg.height)))

		var qx, qy float64
		if query != nil {
			qx, qy = query.X, query.Y
		}

		fmt.Fprintln(w, static.Part1)
		fmt.Fprintf(w, static.Form, cfg.width, cfg.height, cfg.points, cfg.seed, qx, qy)

		err = chart.Page(scene).Render(w)
		if err != nil {
			log.Error("[app] Ошибка рендеринга графика", zap.Error(err))
		}

		fmt.Fprintln(w, static.Part2)

		// Вставляем логи в HTML
		fmt.Fprintln(w, log.HTML())

		fmt.Fprintln(w, static.Part3)
	}
}

func runServer(cfg config, log *logger.ZapLogger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", pageHandler(cfg))

	log.Info("[app] Сервер запущен", zap.String("addr", cfg.addr))
	return http.ListenAndServe(cfg.addr, mux)
}
