// Package grid builds the three-dimensional sweep of cut-parameter
// candidates. A Cube stores one quantity for every (axial, radial, feed)
// combination as a flat float64 slice in row-major order, so element-wise
// physics can run as plain slice arithmetic.
package grid

// Axis is one evenly spaced sweep axis.
type Axis []float64

// NewAxis samples n values over the half-open interval [min, max) with
// step (max-min)/n, matching a fixed-step range generator (the upper
// bound is never included). min >= max yields an empty axis.
func NewAxis(min, max float64, n int) Axis {
	if n <= 0 || min >= max {
		return nil
	}
	step := (max - min) / float64(n)
	ax := make(Axis, n)
	for i := range ax {
		ax[i] = min + float64(i)*step
	}
	return ax
}

// The three cube dimensions, in row-major order.
const (
	DimAxial = iota
	DimRadial
	DimFeed
)

// Cube is a rank-3 array of shape (n, n, n) backed by a flat slice.
// Index (i, j, k) maps to Data[(i*n+j)*n+k]: axial depth varies slowest,
// feed per tooth fastest, which fixes the deterministic tie-break order
// of the search.
type Cube struct {
	N    int
	Data []float64
}

// NewCube allocates a zeroed cube of shape (n, n, n).
func NewCube(n int) *Cube {
	return &Cube{N: n, Data: make([]float64, n*n*n)}
}

// At returns the value at (i, j, k).
func (c *Cube) At(i, j, k int) float64 {
	return c.Data[(i*c.N+j)*c.N+k]
}

// Unravel decomposes a flat index into (i, j, k).
func (c *Cube) Unravel(idx int) (i, j, k int) {
	k = idx % c.N
	idx /= c.N
	j = idx % c.N
	i = idx / c.N
	return i, j, k
}

// Spread broadcasts an axis along the given dimension into a full cube,
// the rank-3 equivalent of expanding a vector against two singleton
// dimensions. len(ax) must equal n.
func Spread(ax Axis, dim, n int) *Cube {
	c := NewCube(n)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				switch dim {
				case DimAxial:
					c.Data[idx] = ax[i]
				case DimRadial:
					c.Data[idx] = ax[j]
				default:
					c.Data[idx] = ax[k]
				}
				idx++
			}
		}
	}
	return c
}
