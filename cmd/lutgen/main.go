package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/OCharnyshevich/tilenoise/pkg/lut"
	"github.com/OCharnyshevich/tilenoise/pkg/noise"
)

func main() {
	p := lut.DefaultParams()

	var zoff, woff string
	flag.IntVar(&p.Width, "width", p.Width, "table width in texels")
	flag.IntVar(&p.Height, "height", p.Height, "table height in texels")
	seed := flag.Uint("seed", 1, "LFSR seed")
	flag.StringVar(&zoff, "zoffset", "", "z fold offset as x,y (default from stock params)")
	flag.StringVar(&woff, "woffset", "", "w fold offset as x,y (default from stock params)")
	out := flag.String("o", "noise_lut.png", "output PNG path")
	verify := flag.Bool("verify", true, "re-check the channel contract after building")
	preview := flag.String("preview", "", "also render a sampled-noise preview PNG to this path")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	p.Seed = uint32(*seed)
	if zoff != "" {
		v, err := parseVec2(zoff)
		if err != nil {
			log.Error("parse -zoffset", "error", err)
			os.Exit(1)
		}
		p.Noise.ZOffset = v
	}
	if woff != "" {
		v, err := parseVec2(woff)
		if err != nil {
			log.Error("parse -woffset", "error", err)
			os.Exit(1)
		}
		p.Noise.WOffset = v
	}

	log.Info("building lookup table",
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"seed", p.Seed,
		"zoffset", p.Noise.ZOffset,
		"woffset", p.Noise.WOffset)

	t, err := lut.Build(p)
	if err != nil {
		log.Error("build table", "error", err)
		os.Exit(1)
	}

	if *verify {
		if err := lut.Verify(t, p.Noise); err != nil {
			log.Error("verify table", "error", err)
			os.Exit(1)
		}
		log.Info("channel contract verified")
	}

	if err := lut.WritePNG(t, *out); err != nil {
		log.Error("write table", "error", err)
		os.Exit(1)
	}
	log.Info("table written", "path", *out)

	if *preview != "" {
		if err := writePreview(t, p.Noise, *preview); err != nil {
			log.Error("write preview", "error", err)
			os.Exit(1)
		}
		log.Info("preview written", "path", *preview)
	}
}

// writePreview renders a grayscale slice of fractal 3D noise so the
// output can be eyeballed for grid artifacts.
func writePreview(t *noise.Table, np noise.Params, path string) error {
	const size = 512
	const scale = 1.0 / 24.0

	prev := previewImage(noise.New(t, np), size, scale)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, prev); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
