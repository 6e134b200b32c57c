package mill

// Recipe is one concrete set of cutting parameters for a tool. All
// derived quantities are computed on demand from the stored scalars, so
// a reported recipe never drifts from its inputs.
type Recipe struct {
	Tool Tool

	// FeedPerTooth in mm.
	FeedPerTooth float64

	// SurfaceSpeed in m/min.
	SurfaceSpeed float64

	// RadialDOC is the radial depth (width) of cut in mm.
	RadialDOC float64

	// AxialDOC is the axial depth of cut in mm.
	AxialDOC float64
}

// SpindleSpeed in 1/min.
func (r Recipe) SpindleSpeed() float64 {
	return SpindleSpeed(r.SurfaceSpeed, r.Tool.Diameter)
}

// FeedRate in mm/min.
func (r Recipe) FeedRate() float64 {
	return FeedRate(r.FeedPerTooth, r.SpindleSpeed(), r.Tool.Flutes)
}

// RemovalRate in cm³/min.
func (r Recipe) RemovalRate() float64 {
	return MaterialRemovalRate(r.FeedRate(), r.AxialDOC, r.RadialDOC)
}

// ChipArea in mm².
func (r Recipe) ChipArea() float64 {
	return ChipCrossSectionalArea(r.AxialDOC, r.FeedPerTooth)
}

// ChipThinningFactor for this recipe's radial engagement. Informational;
// the force model does not consume it yet.
func (r Recipe) ChipThinningFactor() (float64, error) {
	return ChipThinningFactor(r.RadialDOC, r.Tool.Diameter)
}

// DepthRatio is radial over axial depth of cut.
func (r Recipe) DepthRatio() float64 {
	return DepthRatio(r.RadialDOC, r.AxialDOC)
}

// EngagedFlutes is the average number of flutes in cut.
func (r Recipe) EngagedFlutes() (float64, error) {
	return AverageEngagedFlutes(r.Tool.Flutes, r.RadialDOC, r.Tool.Diameter)
}

// CuttingForce in N against the given material.
func (r Recipe) CuttingForce(m Material) (float64, error) {
	flutes, err := r.EngagedFlutes()
	if err != nil {
		return 0, err
	}
	return CuttingForce(m.UltimateTensileStrength, flutes, r.Tool.WearFactor, r.ChipArea()), nil
}

// SpindlePower in kW. Not modeled yet.
func (r Recipe) SpindlePower(m Material) (float64, error) {
	return 0, ErrNotImplemented
}

// TorqueAtCutter in Nm. Not modeled yet.
func (r Recipe) TorqueAtCutter(m Material) (float64, error) {
	return 0, ErrNotImplemented
}
