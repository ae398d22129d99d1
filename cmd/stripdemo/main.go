// Command stripdemo rasterizes a demo shape into a triangle-strip vertex
// stream and writes it as a Wavefront OBJ mesh.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"

	"github.com/gogpu/tristrip"
)

func main() {
	var (
		shape    = flag.String("shape", "pie", "shape to rasterize: pie, rect, circle, star")
		fill     = flag.String("fill", "alternate", "fill mode: alternate, winding")
		clipX    = flag.Int("clip-x", 0, "clip rectangle origin X")
		clipY    = flag.Int("clip-y", 0, "clip rectangle origin Y")
		clipW    = flag.Int("clip-w", 100, "clip rectangle width")
		clipH    = flag.Int("clip-h", 100, "clip rectangle height")
		output   = flag.String("output", "", "OBJ output file (default stdout)")
		pngOut   = flag.String("png", "", "also write a coverage image to this PNG file")
		verbose  = flag.Bool("verbose", false, "enable debug logging")
		maxVerts = flag.Int("max-vertices", 0, "vertex cap (0 for default)")
	)
	flag.Parse()

	if *verbose {
		tristrip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	path, err := buildShape(*shape)
	if err != nil {
		log.Fatalf("Failed to build shape: %v", err)
	}

	switch *fill {
	case "alternate":
		path.SetFillMode(tristrip.FillAlternate)
	case "winding":
		path.SetFillMode(tristrip.FillWinding)
	default:
		log.Fatalf("Unknown fill mode %q", *fill)
	}

	clip := tristrip.ClipRect{X: *clipX, Y: *clipY, Width: *clipW, Height: *clipH}

	var opts []tristrip.Option
	if *maxVerts > 0 {
		opts = append(opts, tristrip.WithMaxVertices(*maxVerts))
	}

	buf, err := tristrip.Rasterize(path, clip, opts...)
	if err != nil {
		log.Fatalf("Failed to rasterize: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}
	if err := buf.WriteOBJ(out); err != nil {
		log.Fatalf("Failed to write OBJ: %v", err)
	}

	if *pngOut != "" {
		if err := savePNG(*pngOut, buf); err != nil {
			log.Fatalf("Failed to save PNG: %v", err)
		}
	}

	log.Printf("Rasterized %s: %d vertices, %d faces\n", *shape, buf.Len(), len(buf.Faces()))
}

func buildShape(name string) (*tristrip.Path, error) {
	p := tristrip.New()
	switch name {
	case "pie":
		return p, buildPie(p, 10, 25, 15)
	case "rect":
		return p, p.Rect(20, 20, 60, 40)
	case "circle":
		return p, p.Circle(50, 50, 30)
	case "star":
		return p, buildStar(p, 50, 50, 40)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// buildPie traces a quarter-circle wedge: an arc from the top of the
// circle to its right, then two straight edges through the center. The
// arc is one cubic whose handle length is fitted to the arc's midpoint.
func buildPie(p *tristrip.Path, xc, yc, r float32) error {
	a := tristrip.Pt(0, -1)
	b := tristrip.Pt(1, 0)

	mid2 := a.Mul(2).Add(b)
	h := (4.0 / 3.0) * a.Perp().Dot(mid2) / a.Dot(mid2)

	startX, startY := xc+r*a.X, yc+r*a.Y
	if err := p.MoveTo(startX, startY); err != nil {
		return err
	}
	if err := p.CurveTo(
		xc+r*(a.X-h*a.Y), yc+r*(a.Y+h*a.X),
		xc+r*(b.X+h*b.Y), yc+r*(b.Y-h*b.X),
		xc+r*b.X, yc+r*b.Y,
	); err != nil {
		return err
	}
	if err := p.LineTo(xc, yc); err != nil {
		return err
	}
	if err := p.LineTo(startX, startY); err != nil {
		return err
	}
	p.Close()
	return nil
}

// buildStar traces a five-pointed star by connecting every second point
// of a pentagon, so the fill mode decides whether the core is filled.
func buildStar(p *tristrip.Path, xc, yc, r float32) error {
	var pts [5]tristrip.Point
	for i := range pts {
		angle := float32(-90+i*144) * (math32.Pi / 180)
		pts[i] = tristrip.Pt(xc+r*math32.Cos(angle), yc+r*math32.Sin(angle))
	}
	if err := p.MoveTo(pts[0].X, pts[0].Y); err != nil {
		return err
	}
	for _, pt := range pts[1:] {
		if err := p.LineTo(pt.X, pt.Y); err != nil {
			return err
		}
	}
	p.Close()
	return nil
}

func savePNG(name string, buf *tristrip.VertexBuffer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, buf.CoverageImage())
}
