package core

// FloatGrid stores a 2D grid of float64 samples in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the sample stored at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores a sample at (x, y).
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }
