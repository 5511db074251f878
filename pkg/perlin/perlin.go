package perlin

import (
	"sync"

	"perlin-noise/pkg/core"
)

// persistence halves the contribution of each successive octave.
const persistence = 0.5

// Generator produces seeded value-noise maps. Every call to Generate
// consumes further draws from the generator's source, so repeated calls on
// one instance yield different maps unless the source is reseeded.
type Generator struct {
	width  int
	height int
	octave int
	src    core.Source
}

// New constructs a Generator from cfg, seeding a fresh random source.
func New(cfg Config) (*Generator, error) {
	return NewWithSource(cfg, core.NewSeededRNG(cfg.Seed))
}

// NewWithSource constructs a Generator drawing from the provided source.
// The source must belong to this generator alone; draws are strictly
// sequential.
func NewWithSource(cfg Config, src core.Source) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		width:  cfg.Width,
		height: cfg.Height,
		octave: cfg.Octave,
		src:    src,
	}, nil
}

// Width returns the configured map width.
func (g *Generator) Width() int { return g.width }

// Height returns the configured map height.
func (g *Generator) Height() int { return g.height }

// Octave returns the configured octave count.
func (g *Generator) Octave() int { return g.octave }

// Interpolate blends x and y linearly: alpha 0 yields x, alpha 1 yields y.
// Alpha is not clamped.
func Interpolate(x, y, alpha float64) float64 {
	return x*(1-alpha) + alpha*y
}

// Generate produces one height-by-width noise map with values in [0, 1].
func (g *Generator) Generate() *core.FloatGrid {
	return g.combine(g.whiteNoise())
}

// whiteNoise fills the base grid with independent draws, row by row, left
// to right. The traversal order is part of the seed contract: a fixed seed
// must always place the same draw in the same cell.
func (g *Generator) whiteNoise() *core.FloatGrid {
	grid := core.NewFloatGrid(g.width, g.height)
	cells := grid.Cells()
	for i := range cells {
		cells[i] = g.src.Float64()
	}
	return grid
}

// smoothNoise resamples base on a lattice with period 1<<level and blends
// bilinearly between the four surrounding anchors. Anchors wrap around both
// axes, so the result tiles. Once the period reaches the grid size the wrap
// collapses and that axis flattens; expected at high octave-to-size ratios.
func smoothNoise(base *core.FloatGrid, level int) *core.FloatGrid {
	width, height := base.W, base.H
	out := core.NewFloatGrid(width, height)

	period := 1 << level
	frequency := 1 / float64(period)

	for h := 0; h < height; h++ {
		h0 := (h / period) * period
		h1 := (h0 + period) % height
		vblend := float64(h-h0) * frequency

		for w := 0; w < width; w++ {
			w0 := (w / period) * period
			w1 := (w0 + period) % width
			hblend := float64(w-w0) * frequency

			top := Interpolate(base.At(w0, h0), base.At(w0, h1), hblend)
			bottom := Interpolate(base.At(w1, h1), base.At(w1, h0), hblend)
			out.Set(w, h, Interpolate(top, bottom, vblend))
		}
	}
	return out
}

// combine runs one smoothing pass per octave level over the shared base and
// blends the results, halving each level's weight. The passes only read
// base and each write their own grid, so they run concurrently and join
// before blending.
func (g *Generator) combine(base *core.FloatGrid) *core.FloatGrid {
	smoothed := make([]*core.FloatGrid, g.octave)

	var wg sync.WaitGroup
	for o := range smoothed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			smoothed[o] = smoothNoise(base, o)
		}()
	}
	wg.Wait()

	out := core.NewFloatGrid(base.W, base.H)
	cells := out.Cells()

	amplitude, total := 1.0, 0.0
	for _, layer := range smoothed {
		amplitude *= persistence
		total += amplitude
		for i, v := range layer.Cells() {
			cells[i] += v * amplitude
		}
	}
	for i := range cells {
		cells[i] /= total
	}
	return out
}
