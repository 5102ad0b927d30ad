// Command isoscene composes an isometric scene from a tile face library
// and a YAML scene configuration, writing the result as an SVG document
// and optionally as a rasterized preview.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/okiso/isoscene/raster"
	"github.com/okiso/isoscene/scene"
	"github.com/okiso/isoscene/sceneconfig"
	"github.com/okiso/isoscene/tileset"
)

func main() {
	tilesPath := flag.String("tiles", "components.svg", "tile face library")
	configPath := flag.String("config", "config.yaml", "scene configuration")
	outPath := flag.String("o", "output.svg", "output SVG file")
	pngPath := flag.String("png", "", "optional raster preview file")
	progress := flag.Bool("progress", false, "report depth layer progress")
	flag.Parse()

	cfg, err := sceneconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *configPath, err)
	}
	library, err := tileset.ReadLibrary(*tilesPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *tilesPath, err)
	}

	compositor := &scene.Compositor{
		Library:    library,
		Groups:     cfg.Groups(),
		MergeFaces: cfg.MergeFaces,
	}
	if *progress {
		layers := cfg.GridSize[0] + cfg.GridSize[1] + cfg.GridSize[2] - 2
		bar := progressbar.Default(int64(layers))
		compositor.Progress = func(layer, total int) {
			bar.Add(1)
		}
	}

	composed, err := compositor.Compose(cfg.BuildGrid())
	if err != nil {
		log.Fatalf("composing scene: %v", err)
	}
	fmt.Println(len(composed.Shapes()))

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := composed.WriteSVG(out, cfg.LightVector(), cfg.SceneColour()); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	if *pngPath != "" {
		img := raster.Render(composed, cfg.LightVector(), cfg.SceneColour())
		preview, err := os.Create(*pngPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := png.Encode(preview, img); err != nil {
			log.Fatalf("writing %s: %v", *pngPath, err)
		}
		if err := preview.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
