// Command rotozoom rotates and scales an image file.
//
// Usage:
//
//	rotozoom -in tile.png -out out.png -angle 30 -scale 0.5 -policy wrap
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/rotozoom"
	"github.com/gogpu/rotozoom/internal/imageio"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out     = flag.String("out", "rotated.png", "output image (png, jpeg, bmp, tiff)")
		angle   = flag.Float64("angle", 0, "rotation in degrees, counter-clockwise")
		scale   = flag.Float64("scale", 1, "magnification (destination pixels per source pixel)")
		policy  = flag.String("policy", "wrap", "edge policy: wrap, pow2 or clip")
		width   = flag.Int("width", 0, "output width (default: input width)")
		height  = flag.Int("height", 0, "output height (default: input height)")
		dcx     = flag.Float64("dcx", math.NaN(), "destination center x (default: width/2)")
		dcy     = flag.Float64("dcy", math.NaN(), "destination center y (default: height/2)")
		scx     = flag.Float64("scx", math.NaN(), "source center x (default: input width/2)")
		scy     = flag.Float64("scy", math.NaN(), "source center y (default: input height/2)")
		marker  = flag.Bool("marker", false, "mark where the source center lands")
		workers = flag.Int("workers", 1, "row bands processed in parallel")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		rotozoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := rotozoom.ParsePolicy(*policy)
	if err != nil {
		log.Fatal(err)
	}

	img, format, err := imageio.Load(*in)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	src := rotozoom.FromImage(img)

	w, h := orDefault(*width, src.Width()), orDefault(*height, src.Height())
	dst, err := rotozoom.NewBuffer[color.RGBA](w, h)
	if err != nil {
		log.Fatalf("Bad output size %dx%d: %v", w, h, err)
	}

	t := rotozoom.Transform{
		DstCenter: f32.Vec2{center(*dcx, w), center(*dcy, h)},
		SrcCenter: f32.Vec2{center(*scx, src.Width()), center(*scy, src.Height())},
		Angle:     float32(*angle * math.Pi / 180),
		Scale:     float32(*scale),
	}

	opts := []rotozoom.Option[color.RGBA]{rotozoom.WithWorkers[color.RGBA](*workers)}
	if *marker {
		opts = append(opts, rotozoom.WithDebugMarker(rotozoom.DefaultMarkerRGBA))
	}
	s := rotozoom.NewSampler(p, opts...)
	defer s.Close()

	if err := s.Rotate(dst, src, t); err != nil {
		log.Fatalf("Rotate %s (%s, %dx%d): %v", *in, format, src.Width(), src.Height(), err)
	}

	if err := imageio.Save(*out, rotozoom.ToImage(dst)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d, policy %s)\n", *out, w, h, p)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// center returns v, or half of size when v was not given.
func center(v float64, size int) float32 {
	if math.IsNaN(v) {
		return float32(size) / 2
	}
	return float32(v)
}
