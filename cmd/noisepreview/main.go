// Command noisepreview renders a preview sheet of noise types applied to a
// displaced shape.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"github.com/gogpu/noise"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// panelSize is the side of a panel before scaling.
const panelSize = 256

const (
	columns     = 4
	labelHeight = 18
)

var (
	background = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	lowColor   = [3]float32{0.10, 0.20, 0.55}
	highColor  = [3]float32{1.00, 0.85, 0.40}
	lightDir   = ms3.Vec{X: -0.4, Y: 0.6, Z: 0.7}
)

func main() {
	var (
		types        = flag.String("types", "perlin,value,voronoi-worley-f1,simplex", "comma separated noise types, or \"all\"")
		shapeName    = flag.String("shape", "octasphere", "shape: plane, sphere, octasphere or torus")
		resolution   = flag.Int("resolution", 128, "shape resolution")
		dims         = flag.Int("dims", 3, "noise dimensions (1-3)")
		tiling       = flag.Bool("tiling", false, "use tiling noise")
		seed         = flag.Int("seed", 0, "noise seed")
		frequency    = flag.Int("frequency", 4, "base frequency")
		octaves      = flag.Int("octaves", 3, "octave count")
		lacunarity   = flag.Int("lacunarity", 2, "frequency multiplier per octave")
		persistence  = flag.Float64("persistence", 0.5, "amplitude multiplier per octave")
		displacement = flag.Float64("displacement", 0.1, "displacement along normals")
		scale        = flag.Float64("scale", 1, "panel scale factor")
		output       = flag.String("output", "noise.png", "output file")
		workers      = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		verbose      = flag.Bool("v", false, "log scheduling to stderr")
	)
	flag.Parse()

	if *verbose {
		noise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	typeList, err := parseTypes(*types)
	if err != nil {
		log.Fatal(err)
	}
	shape, err := noise.ParseShape(*shapeName)
	if err != nil {
		log.Fatal(err)
	}
	if *scale <= 0 {
		log.Fatalf("scale must be positive, got %v", *scale)
	}

	settings := noise.Settings{
		Seed:        *seed,
		Frequency:   *frequency,
		Octaves:     *octaves,
		Lacunarity:  *lacunarity,
		Persistence: float32(*persistence),
	}

	var opts []noise.Option
	if *workers > 0 {
		opts = append(opts, noise.WithWorkers(*workers))
	}
	g := noise.NewGenerator(opts...)
	defer g.Close()

	start := time.Now()
	samples := noise.ShapeSamples(*resolution)
	positions := make([]ms3.Vec, samples)
	normals := make([]ms3.Vec, samples)
	shapeRun, err := g.ScheduleShape(shape, *resolution, space.DefaultTRS(), positions, normals, nil)
	if err != nil {
		log.Fatal(err)
	}

	panels := make([]*image.RGBA, len(typeList))
	var eg errgroup.Group
	for i, typ := range typeList {
		eg.Go(func() error {
			req := noise.NoiseRequest{
				Type:       typ,
				Dimensions: *dims,
				Tiling:     *tiling,
				Settings:   settings,
				Domain:     space.DefaultTRS(),
			}
			values := make([]float32, samples)
			run, err := g.ScheduleNoise(positions, values, req, shapeRun)
			if err != nil {
				return fmt.Errorf("%v: %w", typ, err)
			}
			run.Wait()
			if err := run.Err(); err != nil {
				return err
			}

			displaced := make([]ms3.Vec, samples)
			if err := noise.Displace(positions, normals, values, float32(*displacement), displaced); err != nil {
				return fmt.Errorf("%v: %w", typ, err)
			}
			n := *resolution * *resolution
			panels[i] = renderPanel(displaced[:n], normals[:n], values[:n], typ.IsVoronoi())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	sheet := compose(panels, typeList, *scale)
	if err := savePNG(*output, sheet); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s: %d panels, %d samples each, %v on %d workers\n",
		*output, len(panels), samples, time.Since(start).Round(time.Millisecond), g.Workers())
}

func parseTypes(list string) ([]noise.Type, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return noise.Types(), nil
	}
	var out []noise.Type
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := noise.ParseType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no noise types in %q", list)
	}
	return out, nil
}

// renderPanel splats points orthographically, viewed from slightly above,
// keeping the nearest point per pixel.
func renderPanel(positions, normals []ms3.Vec, values []float32, unsigned bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, panelSize, panelSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	view := space.RotateX(-25 * math32.Pi / 180).Multiply(space.RotateY(30 * math32.Pi / 180))
	light := ms3.Scale(1/ms3.Norm(lightDir), lightDir)
	depth := make([]float32, panelSize*panelSize)
	for i := range depth {
		depth[i] = math32.Inf(-1)
	}

	const half = panelSize / 2
	const extent = panelSize * 0.6
	for i, p := range positions {
		v := view.TransformPoint(p)
		px := int(half + v.X*extent)
		py := int(half - v.Y*extent)

		t := values[i]
		if !unsigned {
			t = (t + 1) / 2
		}
		t = math32.Max(0, math32.Min(1, t))
		n := view.TransformVector(normals[i])
		shade := 0.35 + 0.65*math32.Max(0, ms3.Dot(n, light))
		c := color.RGBA{
			R: channel((lowColor[0] + (highColor[0]-lowColor[0])*t) * shade),
			G: channel((lowColor[1] + (highColor[1]-lowColor[1])*t) * shade),
			B: channel((lowColor[2] + (highColor[2]-lowColor[2])*t) * shade),
			A: 255,
		}

		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				x, y := px+dx, py+dy
				if x < 0 || y < 0 || x >= panelSize || y >= panelSize {
					continue
				}
				if k := y*panelSize + x; v.Z > depth[k] {
					depth[k] = v.Z
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

func channel(v float32) uint8 {
	return uint8(math32.Max(0, math32.Min(1, v)) * 255)
}

// compose scales the panels into a labelled grid.
func compose(panels []*image.RGBA, types []noise.Type, scale float64) *image.RGBA {
	size := int(panelSize * scale)
	cols := min(columns, len(panels))
	rows := (len(panels) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*size, rows*(size+labelHeight)))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, panel := range panels {
		x := (i % cols) * size
		y := (i / cols) * (size + labelHeight)
		dst := image.Rect(x, y+labelHeight, x+size, y+labelHeight+size)
		draw.CatmullRom.Scale(sheet, dst, panel, panel.Bounds(), draw.Src, nil)

		d := font.Drawer{
			Dst:  sheet,
			Src:  image.White,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x+4, y+labelHeight-5),
		}
		d.DrawString(types[i].String())
	}
	return sheet
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
