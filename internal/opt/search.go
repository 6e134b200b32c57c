// Package opt maximizes material removal rate over a grid of cut
// parameters under a cutting-force constraint.
package opt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/millopt/internal/grid"
	"github.com/cwbudde/millopt/internal/mill"
)

// ErrInfeasible is returned when no grid candidate satisfies the
// cutting-force constraint (or the grid is empty). It is a normal,
// recoverable outcome: callers may widen the bounds and retry.
// Use errors.Is(err, ErrInfeasible) to check for it.
var ErrInfeasible = errors.New("no feasible cut parameters within bounds")

// DefaultResolution is the number of samples per sweep axis.
const DefaultResolution = 100

// Optimizer is one search session binding a material, a tool, a surface
// speed and the sweep settings. It holds no mutable state; every query
// recomputes from the inputs, so a session can be reused after
// narrowing the settings for refinement.
type Optimizer struct {
	Material     mill.Material
	Tool         mill.Tool
	SurfaceSpeed float64 // m/min
	Settings     Settings
	Resolution   int
}

// New validates the tool and settings and builds a search session with
// the default grid resolution.
func New(m mill.Material, t mill.Tool, surfaceSpeed float64, s Settings) (*Optimizer, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tool: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &Optimizer{
		Material:     m,
		Tool:         t,
		SurfaceSpeed: surfaceSpeed,
		Settings:     s,
		Resolution:   DefaultResolution,
	}, nil
}

// sweep holds the evaluated candidate cubes for one search session.
// valid marks candidates inside the engaged-flutes domain whose cutting
// force does not exceed the constraint.
type sweep struct {
	axial, radial, feed grid.Axis
	force, mrr          *grid.Cube
	valid               []bool
}

// evaluate builds the axes, broadcasts them into cubes and runs the
// physical model element-wise over the whole candidate space. Returns
// nil if any axis is empty.
func (o *Optimizer) evaluate() *sweep {
	n := o.Resolution
	s := o.Settings

	sw := &sweep{
		axial:  grid.NewAxis(s.MinAxialDOC, s.MaxAxialDOC, n),
		radial: grid.NewAxis(s.MinRadialDOC, s.MaxRadialDOC, n),
		feed:   grid.NewAxis(s.MinFeedPerTooth, s.MaxFeedPerTooth, n),
	}
	if sw.axial == nil || sw.radial == nil || sw.feed == nil {
		return nil
	}

	adoc := grid.Spread(sw.axial, grid.DimAxial, n)
	rdoc := grid.Spread(sw.radial, grid.DimRadial, n)
	fpt := grid.Spread(sw.feed, grid.DimFeed, n)

	rpm := mill.SpindleSpeed(o.SurfaceSpeed, o.Tool.Diameter)

	// feed rate = fpt * rpm * flutes
	feedRate := grid.NewCube(n)
	copy(feedRate.Data, fpt.Data)
	floats.Scale(rpm*float64(o.Tool.Flutes), feedRate.Data)

	// mrr = feed rate * adoc * rdoc / 1000
	sw.mrr = grid.NewCube(n)
	floats.MulTo(sw.mrr.Data, feedRate.Data, adoc.Data)
	floats.Mul(sw.mrr.Data, rdoc.Data)
	floats.Scale(1.0/1000, sw.mrr.Data)

	// chip area = adoc * fpt
	area := grid.NewCube(n)
	floats.MulTo(area.Data, adoc.Data, fpt.Data)

	// Average engaged flutes varies only with radial depth, but the
	// asin has a bounded domain: out-of-domain radial depths are
	// masked as infeasible rather than propagated as NaN.
	sw.valid = make([]bool, len(rdoc.Data))
	engaged := grid.NewCube(n)
	for i, r := range rdoc.Data {
		ef, err := mill.AverageEngagedFlutes(o.Tool.Flutes, r, o.Tool.Diameter)
		if err != nil {
			continue
		}
		engaged.Data[i] = ef
		sw.valid[i] = true
	}

	// force = tensile strength * engaged * wear * area
	sw.force = grid.NewCube(n)
	floats.MulTo(sw.force.Data, engaged.Data, area.Data)
	floats.Scale(o.Material.UltimateTensileStrength*o.Tool.WearFactor, sw.force.Data)

	for i, f := range sw.force.Data {
		if f > s.MaxCuttingForce {
			sw.valid[i] = false
		}
	}
	return sw
}

// ComputeBest evaluates the whole grid and returns the recipe with the
// highest material removal rate among candidates satisfying the force
// constraint. Ties keep the first candidate in row-major (axial,
// radial, feed) order. Returns ErrInfeasible when nothing qualifies.
func (o *Optimizer) ComputeBest() (mill.Recipe, error) {
	sw := o.evaluate()
	if sw == nil {
		return mill.Recipe{}, fmt.Errorf("empty parameter grid: %w", ErrInfeasible)
	}

	best := -1
	bestMRR := math.Inf(-1)
	for idx, ok := range sw.valid {
		if ok && sw.mrr.Data[idx] > bestMRR {
			best = idx
			bestMRR = sw.mrr.Data[idx]
		}
	}
	if best < 0 {
		return mill.Recipe{}, ErrInfeasible
	}

	i, j, k := sw.mrr.Unravel(best)
	return mill.Recipe{
		Tool:         o.Tool,
		FeedPerTooth: sw.feed[k],
		SurfaceSpeed: o.SurfaceSpeed,
		RadialDOC:    sw.radial[j],
		AxialDOC:     sw.axial[i],
	}, nil
}
