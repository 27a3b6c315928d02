package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdillard/go-pathtracer/pkg/renderer"
	"github.com/mdillard/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFrame renders a single still frame of the selected built-in scene
// and writes it to the output file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.DefaultCameraConfig()
	config.Width = ctx.Int("width")
	config.AspectRatio = ctx.Float64("aspect")
	config.SamplesPerPixel = ctx.Int("spp")
	config.MaxDepth = ctx.Int("max-depth")
	config.VFov = ctx.Float64("vfov")
	config.DefocusAngle = ctx.Float64("defocus-angle")
	config.FocusDistance = ctx.Float64("focus-dist")

	seed := ctx.Int64("seed")

	sc, err := buildScene(ctx.String("scene"), config, seed)
	if err != nil {
		return err
	}

	r := renderer.NewRenderer(sc, renderer.RenderConfig{
		NumWorkers: ctx.Int("workers"),
		Seed:       seed,
	})

	logger.Notice("rendering frame")
	var (
		frame *image.RGBA
		stats renderer.RenderStats
	)
	if ctx.Bool("serial") {
		frame, stats, err = r.RenderSerial()
	} else {
		frame, stats, err = r.Render()
	}
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	if err := writeFrame(imgFile, frame); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	displayFrameStats(stats)
	return nil
}

// buildScene constructs one of the built-in scenes by name
func buildScene(name string, config renderer.CameraConfig, seed int64) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(config)
	case "cover":
		return scene.NewCoverScene(config, seed)
	default:
		return nil, fmt.Errorf("unknown scene %q (available: default, cover)", name)
	}
}

// writeFrame encodes the frame based on the output extension: .ppm gets the
// plain-text format, everything else PNG. The file is only created after
// rendering succeeded, so a failed render leaves no output behind.
func writeFrame(path string, frame *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		err = renderer.WritePPM(f, frame)
	} else {
		err = png.Encode(f, frame)
	}
	if err != nil {
		return err
	}

	logger.Infof("encoded %s in %d ms", path, time.Since(start).Nanoseconds()/1000000)
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Samples", "Chunks", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.NumChunks),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%s", stats.RenderTime),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
