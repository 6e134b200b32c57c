package mill

// Material describes a work-piece material's resistance to cutting.
type Material struct {
	// Ultimate tensile strength in N/mm² (same as MPa).
	UltimateTensileStrength float64
}

// Aluminum6061 returns the preset for 6061 aluminum.
func Aluminum6061() Material {
	return Material{UltimateTensileStrength: 210.0}
}

// Steel1215 returns the preset for 1215 free-machining steel.
func Steel1215() Material {
	return Material{UltimateTensileStrength: 540.0}
}
