package main

import (
	"os"

	"github.com/0x0FACED/go-centerpoint/pkg/centerpoint"
	"github.com/0x0FACED/go-centerpoint/pkg/chart"
	"github.com/0x0FACED/go-centerpoint/pkg/logger"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// вывод картинки в терминал (iTerm)
var catImage = imgcat.CatFile

func runRender(cfg config, log *logger.ZapLogger) error {
	ps, err := loadPoints(cfg, log)
	if err != nil {
		return err
	}

	var query centerpoint.Point
	if cfg.query != "" {
		query, err = parsePoint(cfg.query)
	} else {
		query, err = ps.Centroid()
	}
	if err != nil {
		return err
	}

	scene := chart.NewScene(ps, &query, centerpoint.NewRect(float64(cfg.width), float64(cfg.height)))

	f, err := os.Create(cfg.out)
	if err != nil {
		return errors.Wrap(err, "png")
	}
	if err := chart.RenderPNG(scene, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "png")
	}

	log.Info("[app] Картинка сохранена",
		zap.String("out", cfg.out),
		zap.Int("points", ps.Size()),
		zap.Stringer("query", query),
		zap.Bool("center", scene.IsCenter),
	)

	if cfg.imgcat {
		if err := catImage(cfg.out, os.Stdout); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	return nil
}
