// Command inkpath compiles a raster image into ordered stroke paths
// and prints them as JSON for an external actuator to replay. Logging
// goes to stderr, the path list to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"

	"inkpath/internal/imaging"
	"inkpath/internal/logger"
	"inkpath/internal/models"
	"inkpath/internal/pipeline"
)

type output struct {
	Offset models.Point  `json:"offset"`
	Paths  []models.Path `json:"paths"`
}

func main() {
	var (
		imagePath   = flag.String("image", "", "input image file (required)")
		strategyArg = flag.String("strategy", "otsu", "threshold strategy: otsu, kapur, sauvola, wolf, bernsen")
		modeArg     = flag.String("mode", "fit", "scaling mode: stretch, fit, fill, center, tile")
		regionArg   = flag.String("region", "", "target region corners as x1,y1,x2,y2 (required)")
		accuracyArg = flag.String("accuracy", "balanced", "sampling accuracy: fast, balanced, accurate")
		maxDistance = flag.Int("max-distance", pipeline.DefaultMaxDistance, "max pixel distance between chained path points")
		shuffle     = flag.Bool("shuffle", false, "shuffle path order before emitting")
		seed        = flag.Int64("seed", 0, "seed for -shuffle")
		saveMask    = flag.String("save-mask", "", "optional file to save the scaled binary mask to")
		translate   = flag.Bool("translate", false, "emit paths in region coordinates instead of mask-local ones")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	if err := run(*imagePath, *strategyArg, *modeArg, *regionArg, *accuracyArg,
		*maxDistance, *shuffle, *seed, *saveMask, *translate, log); err != nil {
		log.Error("inkpath", err, nil)
		os.Exit(1)
	}
}

func run(imagePath, strategyArg, modeArg, regionArg, accuracyArg string,
	maxDistance int, shuffle bool, seed int64, saveMask string, translate bool,
	log logger.Logger) error {

	if imagePath == "" {
		return fmt.Errorf("-image is required")
	}

	strategy, err := models.ParseStrategy(strategyArg)
	if err != nil {
		return err
	}
	mode, err := models.ParseScaleMode(modeArg)
	if err != nil {
		return err
	}
	accuracy, err := models.ParseAccuracy(accuracyArg)
	if err != nil {
		return err
	}
	region, err := parseRegion(regionArg)
	if err != nil {
		return err
	}

	grid, err := imaging.Load(imagePath)
	if err != nil {
		return err
	}
	log.Info("inkpath", "image loaded", map[string]interface{}{
		"path": imagePath,
		"size": fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
	})

	compiler := pipeline.New(log)
	result, err := compiler.Compile(grid, pipeline.Options{
		Strategy:    strategy,
		Mode:        mode,
		Region:      region,
		Accuracy:    accuracy,
		MaxDistance: maxDistance,
	})
	if err != nil {
		return err
	}

	if saveMask != "" {
		if err := imaging.SaveMask(result.Mask, saveMask); err != nil {
			return err
		}
		log.Info("inkpath", "mask saved", map[string]interface{}{"path": saveMask})
	}

	if shuffle {
		result.Shuffle(rand.New(rand.NewSource(seed)))
	}

	out := output{Offset: result.Offset, Paths: result.Paths}
	if translate {
		for i, p := range out.Paths {
			out.Paths[i] = p.Translate(result.Offset)
		}
	}
	if out.Paths == nil {
		out.Paths = []models.Path{}
	}

	return json.NewEncoder(os.Stdout).Encode(out)
}

func parseRegion(arg string) (models.Region, error) {
	if arg == "" {
		return models.Region{}, fmt.Errorf("-region is required (x1,y1,x2,y2)")
	}
	var x1, y1, x2, y2 int
	if _, err := fmt.Sscanf(arg, "%d,%d,%d,%d", &x1, &y1, &x2, &y2); err != nil {
		return models.Region{}, fmt.Errorf("parse region %q: %w", arg, err)
	}
	return models.NewRegion(models.Point{X: x1, Y: y1}, models.Point{X: x2, Y: y2}), nil
}
