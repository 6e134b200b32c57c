package mill

import "fmt"

// Tool describes an end mill's cutting geometry.
type Tool struct {
	// Diameter in mm.
	Diameter float64

	// Flutes is the number of cutting edges.
	Flutes int

	// WearFactor derates cutting performance for edge dullness.
	// It is a multiplicative factor >= 1, not a probability; a fresh
	// tool is 1.0 and a typical worn allowance is 1.1.
	WearFactor float64

	// MachineEfficiency in [0, 1]. Declared tool attribute; not consumed
	// by any current computation (reserved for spindle power).
	MachineEfficiency float64
}

// NewTool creates a tool with the default wear and efficiency factors.
func NewTool(diameter float64, flutes int) Tool {
	return Tool{
		Diameter:          diameter,
		Flutes:            flutes,
		WearFactor:        1.1,
		MachineEfficiency: 0.8,
	}
}

// Validate checks the tool geometry. Non-positive diameter or flute
// count is a configuration error, never silently clamped.
func (t Tool) Validate() error {
	if t.Diameter <= 0 {
		return fmt.Errorf("tool diameter must be positive, got %g", t.Diameter)
	}
	if t.Flutes <= 0 {
		return fmt.Errorf("tool flute count must be positive, got %d", t.Flutes)
	}
	return nil
}
