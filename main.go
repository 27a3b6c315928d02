package main

import (
	"os"

	"github.com/mdillard/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame of one of the built-in scenes and write it to an
image file. The output format is chosen from the file extension: .ppm
produces a plain-text PPM, anything else a PNG.`,
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "scene",
							Value: "default",
							Usage: "built-in scene to render (default, cover)",
						},
						cli.IntFlag{
							Name:  "width",
							Value: 400,
							Usage: "frame width",
						},
						cli.Float64Flag{
							Name:  "aspect",
							Value: 16.0 / 9.0,
							Usage: "aspect ratio (width over height)",
						},
						cli.IntFlag{
							Name:  "spp",
							Value: 10,
							Usage: "samples per pixel",
						},
						cli.IntFlag{
							Name:  "max-depth",
							Value: 10,
							Usage: "maximum ray bounce depth",
						},
						cli.Float64Flag{
							Name:  "vfov",
							Value: 90,
							Usage: "vertical field of view in degrees",
						},
						cli.Float64Flag{
							Name:  "defocus-angle",
							Value: 0,
							Usage: "defocus blur cone angle in degrees",
						},
						cli.Float64Flag{
							Name:  "focus-dist",
							Value: 10,
							Usage: "distance to the plane of perfect focus",
						},
						cli.IntFlag{
							Name:  "workers",
							Value: 0,
							Usage: "number of render workers (0 = all cpus)",
						},
						cli.BoolFlag{
							Name:  "serial",
							Usage: "render on a single goroutine",
						},
						cli.Int64Flag{
							Name:  "seed",
							Value: 42,
							Usage: "base seed for the per-chunk samplers",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					},
					Action: cmd.RenderFrame,
				},
			},
		},
	}

	app.Run(os.Args)
}
