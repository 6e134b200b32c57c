package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/millopt/internal/mill"
)

func referenceSettings() Settings {
	// 1/4" three-flute end mill in 6061 aluminum
	return Settings{
		MinAxialDOC:     0.5,
		MaxAxialDOC:     9.525,
		MinRadialDOC:    0.2,
		MaxRadialDOC:    3.175,
		MinFeedPerTooth: 0.01,
		MaxFeedPerTooth: 0.1,
		MinChipArea:     0.02,
		MaxSpindlePower: 1.5,
		MaxCuttingForce: 17.0,
	}
}

func referenceOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	o, err := New(mill.Aluminum6061(), mill.NewTool(6.35, 3), 300, referenceSettings())
	require.NoError(t, err)
	return o
}

func TestComputeBest_ReferenceScenario(t *testing.T) {
	o := referenceOptimizer(t)

	recipe, err := o.ComputeBest()
	require.NoError(t, err)

	s := o.Settings
	assert.GreaterOrEqual(t, recipe.AxialDOC, s.MinAxialDOC)
	assert.Less(t, recipe.AxialDOC, s.MaxAxialDOC)
	assert.GreaterOrEqual(t, recipe.RadialDOC, s.MinRadialDOC)
	assert.Less(t, recipe.RadialDOC, s.MaxRadialDOC)
	assert.GreaterOrEqual(t, recipe.FeedPerTooth, s.MinFeedPerTooth)
	assert.Less(t, recipe.FeedPerTooth, s.MaxFeedPerTooth)

	force, err := recipe.CuttingForce(o.Material)
	require.NoError(t, err)
	assert.LessOrEqual(t, force, s.MaxCuttingForce,
		"recomputed cutting force must honor the constraint")
	assert.Greater(t, recipe.RemovalRate(), 0.0)
}

func TestComputeBest_RoundTrip(t *testing.T) {
	// The recipe rebuilt from the winning index must recompute to the
	// same quantities the cube evaluation saw at that index.
	o := referenceOptimizer(t)

	sw := o.evaluate()
	require.NotNil(t, sw)

	best := -1
	for idx, ok := range sw.valid {
		if ok && (best < 0 || sw.mrr.Data[idx] > sw.mrr.Data[best]) {
			best = idx
		}
	}
	require.GreaterOrEqual(t, best, 0)

	recipe, err := o.ComputeBest()
	require.NoError(t, err)

	i, j, k := sw.mrr.Unravel(best)
	assert.Equal(t, sw.axial[i], recipe.AxialDOC)
	assert.Equal(t, sw.radial[j], recipe.RadialDOC)
	assert.Equal(t, sw.feed[k], recipe.FeedPerTooth)

	assert.InEpsilon(t, sw.mrr.Data[best], recipe.RemovalRate(), 1e-9)
	force, err := recipe.CuttingForce(o.Material)
	require.NoError(t, err)
	assert.InEpsilon(t, sw.force.Data[best], force, 1e-9)
}

func TestComputeBest_MonotoneInForceLimit(t *testing.T) {
	// Relaxing the force constraint can never worsen the optimum.
	prev := 0.0
	for _, limit := range []float64{5, 10, 17, 40, 1000} {
		o := referenceOptimizer(t)
		o.Settings.MaxCuttingForce = limit

		recipe, err := o.ComputeBest()
		require.NoError(t, err, "limit %g", limit)

		mrr := recipe.RemovalRate()
		assert.GreaterOrEqual(t, mrr, prev, "limit %g", limit)
		prev = mrr
	}
}

func TestComputeBest_Infeasible(t *testing.T) {
	o := referenceOptimizer(t)
	o.Settings.MaxCuttingForce = 0.01 // below the minimum force on the grid

	_, err := o.ComputeBest()
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestComputeBest_EmptyAxis(t *testing.T) {
	s := referenceSettings()
	s.MinAxialDOC = 2.0
	s.MaxAxialDOC = 2.0 // zero samples, not a config error

	o, err := New(mill.Aluminum6061(), mill.NewTool(6.35, 3), 300, s)
	require.NoError(t, err)

	_, err = o.ComputeBest()
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestComputeBest_MasksOutOfDomainRadial(t *testing.T) {
	// Radial bounds past the tool diameter: those candidates fall
	// outside the engaged-flutes domain and must be masked, not
	// propagated as NaN or returned as winners.
	s := referenceSettings()
	s.MaxRadialDOC = 12.7 // 2x diameter
	s.MaxCuttingForce = 1e9

	o, err := New(mill.Aluminum6061(), mill.NewTool(6.35, 3), 300, s)
	require.NoError(t, err)

	recipe, err := o.ComputeBest()
	require.NoError(t, err)
	assert.LessOrEqual(t, recipe.RadialDOC, 6.35)

	_, err = recipe.CuttingForce(o.Material)
	assert.NoError(t, err)
}

func TestNew_InvalidConfiguration(t *testing.T) {
	s := referenceSettings()
	s.MinRadialDOC = 5
	s.MaxRadialDOC = 1
	_, err := New(mill.Aluminum6061(), mill.NewTool(6.35, 3), 300, s)
	assert.Error(t, err)

	_, err = New(mill.Aluminum6061(), mill.NewTool(-1, 3), 300, referenceSettings())
	assert.Error(t, err)

	_, err = New(mill.Aluminum6061(), mill.NewTool(6.35, 0), 300, referenceSettings())
	assert.Error(t, err)
}

func TestSettingsValidate_EqualBoundsAllowed(t *testing.T) {
	s := referenceSettings()
	s.MinFeedPerTooth = 0.05
	s.MaxFeedPerTooth = 0.05
	assert.NoError(t, s.Validate())
}
