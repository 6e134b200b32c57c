package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"

	"github.com/cwbudde/millopt/internal/mill"
)

// Refiner polishes a grid winner with the external Mayfly optimizer,
// searching the continuous space between grid samples.
type Refiner struct {
	MaxIters int
	PopSize  int
	Seed     int64
}

// NewRefiner creates a refiner with the given iteration budget,
// population size and random seed.
func NewRefiner(maxIters, popSize int, seed int64) Refiner {
	return Refiner{MaxIters: maxIters, PopSize: popSize, Seed: seed}
}

// infeasiblePenalty dominates any real removal rate so constrained-out
// candidates never win. Kept finite; the mayfly library compares costs
// arithmetically.
const infeasiblePenalty = 1e12

// Refine searches the session's bounds around a known-feasible start
// recipe and returns the better of the two. The three cut parameters
// have very different scales, and the mayfly library only takes scalar
// bounds, so the search runs in a normalized [0,1]³ space.
func (rf Refiner) Refine(o *Optimizer, start mill.Recipe) (mill.Recipe, error) {
	startMRR := start.RemovalRate()

	eval := func(x []float64) float64 {
		rec := o.recipeAt(x)
		force, err := rec.CuttingForce(o.Material)
		if err != nil || force > o.Settings.MaxCuttingForce {
			return infeasiblePenalty
		}
		return -rec.RemovalRate()
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = 3
	config.MaxIterations = rf.MaxIters
	config.NPop = rf.PopSize
	config.LowerBound = 0
	config.UpperBound = 1
	config.Rand = rand.New(rand.NewSource(rf.Seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Refinement is best-effort; the grid winner stands.
		return start, nil
	}

	refined := o.recipeAt(result.GlobalBest.Position)
	force, ferr := refined.CuttingForce(o.Material)
	if ferr != nil || force > o.Settings.MaxCuttingForce || refined.RemovalRate() <= startMRR {
		return start, nil
	}
	return refined, nil
}

// recipeAt maps a normalized [0,1]³ point onto the settings bounds.
func (o *Optimizer) recipeAt(x []float64) mill.Recipe {
	s := o.Settings
	return mill.Recipe{
		Tool:         o.Tool,
		SurfaceSpeed: o.SurfaceSpeed,
		AxialDOC:     lerp(s.MinAxialDOC, s.MaxAxialDOC, clamp01(x[0])),
		RadialDOC:    lerp(s.MinRadialDOC, s.MaxRadialDOC, clamp01(x[1])),
		FeedPerTooth: lerp(s.MinFeedPerTooth, s.MaxFeedPerTooth, clamp01(x[2])),
	}
}

func lerp(lo, hi, t float64) float64 {
	return lo + t*(hi-lo)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
