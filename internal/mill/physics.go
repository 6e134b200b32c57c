package mill

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when a formula input falls outside the range
// where the formula is defined. Use errors.Is(err, ErrDomain).
var ErrDomain = errors.New("input outside formula domain")

// ErrNotImplemented is returned by quantities that are declared but not
// yet modeled. Callers must never receive a fabricated value instead.
var ErrNotImplemented = errors.New("not implemented")

// ChipThinningFactor corrects for the reduced effective chip thickness
// when the radial depth of cut is below the tool radius (both in mm).
// Radial depths above half the diameter are outside the model.
func ChipThinningFactor(radialDOC, toolDiameter float64) (float64, error) {
	ratio := 2 * radialDOC / toolDiameter
	if ratio < -1 || ratio > 1 {
		return 0, fmt.Errorf("chip thinning factor: radial doc %g mm exceeds half of diameter %g mm: %w",
			radialDOC, toolDiameter, ErrDomain)
	}
	return math.Sqrt(1 - ratio*ratio), nil
}

// SpindleSpeed converts surface speed (m/min) and tool diameter (mm)
// to rotational speed in 1/min. The 1000 factor converts m to mm.
func SpindleSpeed(surfaceSpeed, toolDiameter float64) float64 {
	return 1000 * surfaceSpeed / (math.Pi * toolDiameter)
}

// FeedRate is the table feed in mm/min for a given feed per tooth (mm),
// spindle speed (1/min) and flute count.
func FeedRate(feedPerTooth, spindleSpeed float64, flutes int) float64 {
	return feedPerTooth * spindleSpeed * float64(flutes)
}

// MaterialRemovalRate is the removed volume in cm³/min given the feed
// rate (mm/min) and the axial and radial depths of cut (mm). The 1000
// divisor converts mm³ to cm³.
func MaterialRemovalRate(feedRate, axialDOC, radialDOC float64) float64 {
	return feedRate * axialDOC * radialDOC / 1000
}

// ChipCrossSectionalArea is the uncut chip section in mm².
func ChipCrossSectionalArea(axialDOC, feedPerTooth float64) float64 {
	return axialDOC * feedPerTooth
}

// AverageEngagedFlutes is the mean number of cutting edges in contact
// with the work piece for a given radial depth of cut. The engagement
// arc is only defined for 0 <= radialDOC <= toolDiameter; outside that
// range an explicit domain error is returned rather than NaN.
func AverageEngagedFlutes(flutes int, radialDOC, toolDiameter float64) (float64, error) {
	arg := (2*radialDOC - toolDiameter) / toolDiameter
	if arg < -1 || arg > 1 {
		return 0, fmt.Errorf("engaged flutes: radial doc %g mm outside [0, %g] for diameter %g mm: %w",
			radialDOC, toolDiameter, toolDiameter, ErrDomain)
	}
	engagement := (math.Asin(arg) + math.Asin(1)) / (2 * math.Pi)
	return float64(flutes) * engagement, nil
}

// CuttingForce is the tangential cutting force in N, from the material's
// ultimate tensile strength (N/mm²), the average engaged flute count,
// the tool wear factor and the chip cross-sectional area (mm²).
func CuttingForce(tensileStrength, avgEngagedFlutes, wearFactor, chipArea float64) float64 {
	return tensileStrength * avgEngagedFlutes * wearFactor * chipArea
}

// DepthRatio is radial over axial depth of cut. Undefined for zero
// axial depth; grid construction keeps zero out of the axial axis.
func DepthRatio(radialDOC, axialDOC float64) float64 {
	return radialDOC / axialDOC
}
