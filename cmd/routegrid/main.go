// Command routegrid searches a city map for a shortest route from the
// departure marker to the destination marker and writes one PNG frame per
// search snapshot, followed by a final annotated map.
//
// Usage:
//
//	routegrid [-map city.hcl] [-out dir] [-v]
//
// Without -map, the built-in demonstration layout is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/routegrid/citygrid"
	"github.com/katalvlaran/routegrid/mapfile"
	"github.com/katalvlaran/routegrid/render"
	"github.com/katalvlaran/routegrid/report"
	"github.com/katalvlaran/routegrid/route"
)

func main() {
	var (
		mapPath = flag.String("map", "", "HCL map file; empty for the built-in layout")
		outDir  = flag.String("out", "out", "directory for the rendered PNG frames")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, *mapPath, *outDir); err != nil {
		log.WithError(err).Error("routegrid failed")
		os.Exit(1)
	}
}

func run(log *logrus.Logger, mapPath, outDir string) error {
	grid, err := loadGrid(mapPath)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows": grid.Rows(),
		"cols": grid.Cols(),
	}).Debug("map loaded")

	res, err := route.FindBestRoute(grid)
	switch {
	case errors.Is(err, citygrid.ErrStartNotFound), errors.Is(err, citygrid.ErrGoalNotFound):
		// Not fatal: an empty result follows the same no-route path below.
		log.WithError(err).Warn("map is missing a marker")
	case err != nil:
		return err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i, snap := range res.Snapshots {
		frame := render.NewFrame(report.SnapshotMatrix(grid, snap.Visited), render.StyleSnapshot)
		img, derr := render.Decorate(frame)
		if derr != nil {
			return derr
		}
		path := filepath.Join(outDir, fmt.Sprintf("step_%03d.png", i+1))
		if err = render.SavePNG(path, img); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"frame":   i + 1,
			"step":    snap.Step,
			"visited": len(snap.Visited),
			"path":    path,
		}).Info("wrote snapshot frame")
	}

	if !res.Found() {
		log.Info("no route from departure to destination; skipping final map")
		return nil
	}

	frame := render.NewFrame(report.FinalMatrix(grid, res.Best, res.FinalVisited()), render.StyleFinal)
	img, err := render.Decorate(frame)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, "final.png")
	if err = render.SavePNG(path, img); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"hops":      len(res.Best) - 1,
		"discarded": len(res.Discarded),
		"path":      path,
	}).Info("wrote final map")

	return nil
}

func loadGrid(mapPath string) (*citygrid.Grid, error) {
	if mapPath == "" {
		return citygrid.DefaultMap(), nil
	}

	return mapfile.Load(mapPath)
}
