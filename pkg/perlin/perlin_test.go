package perlin

import (
	"errors"
	"slices"
	"testing"

	"perlin-noise/pkg/core"
)

// seqSource replays a fixed sequence of draws, wrapping around at the end.
type seqSource struct {
	values []float64
	pos    int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.Octave = 4
	cfg.Seed = "shared seed"

	first, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(first.Generate().Cells(), second.Generate().Cells()) {
		t.Fatal("equal seeds must produce bit-identical maps")
	}
}

func TestGenerateAdvancesSource(t *testing.T) {
	gen, err := New(Config{Seed: int64(99), Width: 16, Height: 16, Octave: 2})
	if err != nil {
		t.Fatal(err)
	}

	a := append([]float64(nil), gen.Generate().Cells()...)
	b := gen.Generate().Cells()

	if slices.Equal(a, b) {
		t.Fatal("successive calls must consume further draws and differ")
	}
}

func TestGenerateShapeAndRange(t *testing.T) {
	cases := []struct {
		width, height, octave int
	}{
		{1, 1, 1},
		{5, 3, 1},
		{16, 16, 4},
		{7, 13, 3},
		{8, 8, 6}, // period exceeds the grid: degenerate but valid
	}

	for _, c := range cases {
		gen, err := New(Config{Seed: 7, Width: c.width, Height: c.height, Octave: c.octave})
		if err != nil {
			t.Fatalf("config %dx%d octave %d rejected: %v", c.width, c.height, c.octave, err)
		}

		grid := gen.Generate()
		if grid.W != c.width || grid.H != c.height {
			t.Fatalf("got %dx%d grid, want %dx%d", grid.W, grid.H, c.width, c.height)
		}
		if len(grid.Cells()) != c.width*c.height {
			t.Fatalf("backing slice has %d cells, want %d", len(grid.Cells()), c.width*c.height)
		}
		for i, v := range grid.Cells() {
			if v < 0 || v > 1 {
				t.Fatalf("cell %d out of range: %v", i, v)
			}
		}
	}
}

func TestInterpolateIdentity(t *testing.T) {
	pairs := [][2]float64{{0, 1}, {0.25, 0.75}, {-3.5, 12}, {1e9, -1e9}}
	for _, p := range pairs {
		if got := Interpolate(p[0], p[1], 0); got != p[0] {
			t.Fatalf("Interpolate(%v, %v, 0) = %v, want %v", p[0], p[1], got, p[0])
		}
		if got := Interpolate(p[0], p[1], 1); got != p[1] {
			t.Fatalf("Interpolate(%v, %v, 1) = %v, want %v", p[0], p[1], got, p[1])
		}
	}
	if got := Interpolate(2, 6, 0.5); got != 4 {
		t.Fatalf("Interpolate(2, 6, 0.5) = %v, want 4", got)
	}
}

// With a single octave the level-0 pass has period 1, every blend factor is
// zero, and normalization divides by the lone amplitude, so the output must
// equal the raw white noise exactly.
func TestSingleOctaveIdentity(t *testing.T) {
	src := &seqSource{values: []float64{0.1, 0.4, 0.7, 0.2}}
	gen, err := NewWithSource(Config{Width: 2, Height: 2, Octave: 1}, src)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0.1, 0.4, 0.7, 0.2}
	if got := gen.Generate().Cells(); !slices.Equal(got, want) {
		t.Fatalf("single-octave output %v, want raw draws %v", got, want)
	}
}

// The same identity must hold for a real seeded source: the generated map
// replays the source's first width*height draws in row-major order.
func TestSingleOctaveMatchesRawDraws(t *testing.T) {
	const seed, w, h = int64(1234), 9, 5

	gen, err := New(Config{Seed: seed, Width: w, Height: h, Octave: 1})
	if err != nil {
		t.Fatal(err)
	}
	got := gen.Generate().Cells()

	replay := core.NewSeededRNG(seed)
	for i, v := range got {
		if want := replay.Float64(); v != want {
			t.Fatalf("cell %d is %v, want draw %v", i, v, want)
		}
	}
}

func TestSmoothWrapAnchors(t *testing.T) {
	base := core.NewFloatGrid(4, 4)
	for i := range base.Cells() {
		base.Cells()[i] = float64(i) / 16
	}

	// Level 1, period 2: rows 0-1 anchor on rows (0, 2), rows 2-3 wrap onto
	// rows (2, 0); columns behave the same way.
	h0s := []int{0, 0, 2, 2}
	h1s := []int{2, 2, 0, 0}
	out := smoothNoise(base, 1)
	for h := 0; h < 4; h++ {
		vblend := float64(h%2) / 2
		for w := 0; w < 4; w++ {
			w0, w1 := h0s[w], h1s[w]
			hblend := float64(w%2) / 2
			top := Interpolate(base.At(w0, h0s[h]), base.At(w0, h1s[h]), hblend)
			bottom := Interpolate(base.At(w1, h1s[h]), base.At(w1, h0s[h]), hblend)
			want := Interpolate(top, bottom, vblend)
			if got := out.At(w, h); got != want {
				t.Fatalf("level 1 cell (%d,%d) = %v, want %v", w, h, got, want)
			}
		}
	}

	// Level 2, period 4 equals the grid size: both anchors of every cell
	// wrap onto index 0, so the whole pass collapses to base[0][0].
	out = smoothNoise(base, 2)
	for i, v := range out.Cells() {
		if v != base.At(0, 0) {
			t.Fatalf("level 2 cell %d = %v, want collapsed anchor %v", i, v, base.At(0, 0))
		}
	}
}

func TestAccessorsReflectConfig(t *testing.T) {
	gen, err := New(Config{Seed: "s", Width: 40, Height: 30, Octave: 5})
	if err != nil {
		t.Fatal(err)
	}
	if gen.Width() != 40 || gen.Height() != 30 || gen.Octave() != 5 {
		t.Fatalf("accessors report %dx%d octave %d, want 40x30 octave 5",
			gen.Width(), gen.Height(), gen.Octave())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		cfg   Config
		field string
	}{
		{Config{Width: 0, Height: 10, Octave: 1}, "width"},
		{Config{Width: 10, Height: -2, Octave: 1}, "height"},
		{Config{Width: 10, Height: 10, Octave: 0}, "octave"},
	}

	for _, c := range cases {
		_, err := New(c.cfg)
		if err == nil {
			t.Fatalf("config %+v must be rejected", c.cfg)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("want *ConfigError, got %T", err)
		}
		if cfgErr.Field != c.field {
			t.Fatalf("error names field %q, want %q", cfgErr.Field, c.field)
		}
	}
}
