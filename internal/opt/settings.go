package opt

import "fmt"

// Settings holds the user-supplied sweep bounds and constraints.
// Axial/radial depths and feed per tooth are swept over [min, max).
type Settings struct {
	// mm
	MinAxialDOC float64
	MaxAxialDOC float64

	// mm
	MinRadialDOC float64
	MaxRadialDOC float64

	// mm
	MinFeedPerTooth float64
	MaxFeedPerTooth float64

	// MinChipArea in mm². Declared constraint, currently not enforced
	// by the search.
	MinChipArea float64

	// MaxSpindlePower in kW. Declared constraint, currently not
	// enforced; spindle power is not modeled yet.
	MaxSpindlePower float64

	// MaxCuttingForce in N. The enforced constraint: candidates whose
	// cutting force exceeds it are excluded from the search.
	MaxCuttingForce float64
}

// Validate rejects any axis whose lower bound exceeds its upper bound.
// Equal bounds are allowed and produce an empty axis, which the search
// reports as infeasible.
func (s Settings) Validate() error {
	if s.MinAxialDOC > s.MaxAxialDOC {
		return fmt.Errorf("axial doc bounds inverted: min %g > max %g", s.MinAxialDOC, s.MaxAxialDOC)
	}
	if s.MinRadialDOC > s.MaxRadialDOC {
		return fmt.Errorf("radial doc bounds inverted: min %g > max %g", s.MinRadialDOC, s.MaxRadialDOC)
	}
	if s.MinFeedPerTooth > s.MaxFeedPerTooth {
		return fmt.Errorf("feed per tooth bounds inverted: min %g > max %g", s.MinFeedPerTooth, s.MaxFeedPerTooth)
	}
	return nil
}
