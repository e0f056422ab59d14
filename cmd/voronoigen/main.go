package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	voronoi2d "github.com/fortunevoronoi/voronoi2d"
	"github.com/fortunevoronoi/voronoi2d/point"
	"github.com/fortunevoronoi/voronoi2d/rectangle"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoigen",
		Usage:     "Generates a random Voronoi diagram and outputs the resulting cells to stdout as JSON",
		UsageText: "voronoigen --number <value> --width <value> --height <value> --relax <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of sites to generate",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "width",
				Usage:    "The width of the bounding rectangle",
				OnlyOnce: true,
				Value:    800,
			},
			&cli.IntFlag{
				Name:     "height",
				Usage:    "The height of the bounding rectangle",
				OnlyOnce: true,
				Value:    800,
			},
			&cli.IntFlag{
				Name:     "relax",
				Usage:    "The number of Lloyd relaxation iterations to run before emitting the diagram",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// diagramOutput is the JSON shape emitted on stdout: the sites actually
// used (after any relaxation) and the resulting bounded cells.
type diagramOutput struct {
	Sites    []point.Point   `json:"sites"`
	Polygons [][]point.Point `json:"polygons"`
}

func app(_ context.Context, cmd *cli.Command) error {
	n := cmd.Int("number")
	width := cmd.Int("width")
	height := cmd.Int("height")
	relaxIterations := cmd.Int("relax")

	if width <= 0 {
		return fmt.Errorf("width must be greater than zero")
	}
	if height <= 0 {
		return fmt.Errorf("height must be greater than zero")
	}

	bounds := rectangle.New(0, 0, float64(width), float64(height))

	sites := make([]point.Point, n)
	for i := range sites {
		sites[i] = point.New(
			rand.Float64()*float64(width),
			rand.Float64()*float64(height),
		)
	}

	for i := int64(0); i < relaxIterations; i++ {
		sites = voronoi2d.LloydRelaxation(sites, bounds)
	}

	d := voronoi2d.Voronoi(sites, bounds)
	output := diagramOutput{
		Sites:    sites,
		Polygons: voronoi2d.MakePolygons(d),
	}

	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
