package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineKeepsConstraintAndNeverWorsens(t *testing.T) {
	o := referenceOptimizer(t)

	gridBest, err := o.ComputeBest()
	require.NoError(t, err)

	// popSize must be >=20 for mayfly v0.1.0
	refiner := NewRefiner(100, 20, 42)
	refined, err := refiner.Refine(o, gridBest)
	require.NoError(t, err)

	force, err := refined.CuttingForce(o.Material)
	require.NoError(t, err)
	assert.LessOrEqual(t, force, o.Settings.MaxCuttingForce)
	assert.GreaterOrEqual(t, refined.RemovalRate(), gridBest.RemovalRate(),
		"refinement returns the grid winner unless it found something better")
}

func TestRefineDeterministic(t *testing.T) {
	o := referenceOptimizer(t)

	gridBest, err := o.ComputeBest()
	require.NoError(t, err)

	r1, err := NewRefiner(50, 20, 123).Refine(o, gridBest)
	require.NoError(t, err)
	r2, err := NewRefiner(50, 20, 123).Refine(o, gridBest)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "same seed must produce the same recipe")
}

func TestRecipeAtMapsBounds(t *testing.T) {
	o := referenceOptimizer(t)
	s := o.Settings

	lo := o.recipeAt([]float64{0, 0, 0})
	assert.Equal(t, s.MinAxialDOC, lo.AxialDOC)
	assert.Equal(t, s.MinRadialDOC, lo.RadialDOC)
	assert.Equal(t, s.MinFeedPerTooth, lo.FeedPerTooth)

	hi := o.recipeAt([]float64{1, 1, 1})
	assert.Equal(t, s.MaxAxialDOC, hi.AxialDOC)
	assert.Equal(t, s.MaxRadialDOC, hi.RadialDOC)
	assert.Equal(t, s.MaxFeedPerTooth, hi.FeedPerTooth)

	// Out-of-range positions are clamped into the bounds
	clamped := o.recipeAt([]float64{-0.5, 2, 0.5})
	assert.Equal(t, s.MinAxialDOC, clamped.AxialDOC)
	assert.Equal(t, s.MaxRadialDOC, clamped.RadialDOC)
}
