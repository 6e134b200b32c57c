package mill

import (
	"fmt"
	"strings"
)

// Report is the full set of reportable quantities for one recipe,
// recomputed exactly from the recipe's scalars.
type Report struct {
	AxialDOC      float64 // mm
	RadialDOC     float64 // mm
	SpindleSpeed  float64 // 1/min
	FeedRate      float64 // mm/min
	SurfaceSpeed  float64 // m/min
	FeedPerTooth  float64 // mm
	RemovalRate   float64 // cm³/min
	ChipArea      float64 // mm²
	EngagedFlutes float64
	CuttingForce  float64 // N
}

// BuildReport derives all report fields for a recipe cutting the given
// material. Fails if the recipe's radial engagement is outside the
// engaged-flutes domain.
func BuildReport(m Material, r Recipe) (Report, error) {
	force, err := r.CuttingForce(m)
	if err != nil {
		return Report{}, err
	}
	flutes, err := r.EngagedFlutes()
	if err != nil {
		return Report{}, err
	}
	return Report{
		AxialDOC:      r.AxialDOC,
		RadialDOC:     r.RadialDOC,
		SpindleSpeed:  r.SpindleSpeed(),
		FeedRate:      r.FeedRate(),
		SurfaceSpeed:  r.SurfaceSpeed,
		FeedPerTooth:  r.FeedPerTooth,
		RemovalRate:   r.RemovalRate(),
		ChipArea:      r.ChipArea(),
		EngagedFlutes: flutes,
		CuttingForce:  force,
	}, nil
}

// String renders the report fields in fixed order.
func (rep Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "axial doc:            %.4f mm\n", rep.AxialDOC)
	fmt.Fprintf(&b, "radial doc:           %.4f mm\n", rep.RadialDOC)
	fmt.Fprintf(&b, "spindle speed:        %.1f rpm\n", rep.SpindleSpeed)
	fmt.Fprintf(&b, "feed rate:            %.1f mm/min\n", rep.FeedRate)
	fmt.Fprintf(&b, "surface speed:        %.1f m/min\n", rep.SurfaceSpeed)
	fmt.Fprintf(&b, "feed per tooth:       %.4f mm\n", rep.FeedPerTooth)
	fmt.Fprintf(&b, "removal rate:         %.3f cm^3/min\n", rep.RemovalRate)
	fmt.Fprintf(&b, "chip area:            %.4f mm^2\n", rep.ChipArea)
	fmt.Fprintf(&b, "avg engaged flutes:   %.3f\n", rep.EngagedFlutes)
	fmt.Fprintf(&b, "cutting force:        %.2f N\n", rep.CuttingForce)
	return b.String()
}
