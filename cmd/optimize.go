package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/millopt/internal/mill"
	"github.com/cwbudde/millopt/internal/opt"
)

var (
	materialName string
	tensile      float64
	diameter     float64
	flutes       int
	wearFactor   float64
	surfaceSpeed float64

	minAdoc, maxAdoc float64
	minRdoc, maxRdoc float64
	minFpt, maxFpt   float64
	maxForce         float64
	resolution       int

	refine      bool
	refineIters int
	refinePop   int
	refineSeed  int64
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the cut parameters maximizing material removal rate",
	Long: `Sweeps axial depth, radial depth and feed per tooth over the given
bounds, discards candidates exceeding the cutting-force limit and
reports the best remaining recipe.`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&materialName, "material", "al6061", "Material preset: al6061, steel1215")
	optimizeCmd.Flags().Float64Var(&tensile, "tensile", 0, "Ultimate tensile strength in N/mm^2 (overrides --material)")
	optimizeCmd.Flags().Float64Var(&diameter, "diameter", 6.35, "Tool diameter in mm")
	optimizeCmd.Flags().IntVar(&flutes, "flutes", 3, "Number of flutes")
	optimizeCmd.Flags().Float64Var(&wearFactor, "wear", 1.1, "Tool wear factor")
	optimizeCmd.Flags().Float64Var(&surfaceSpeed, "surface-speed", 300, "Surface speed in m/min")

	optimizeCmd.Flags().Float64Var(&minAdoc, "min-adoc", 0.5, "Min axial depth of cut in mm")
	optimizeCmd.Flags().Float64Var(&maxAdoc, "max-adoc", 9.525, "Max axial depth of cut in mm")
	optimizeCmd.Flags().Float64Var(&minRdoc, "min-rdoc", 0.2, "Min radial depth of cut in mm")
	optimizeCmd.Flags().Float64Var(&maxRdoc, "max-rdoc", 3.175, "Max radial depth of cut in mm")
	optimizeCmd.Flags().Float64Var(&minFpt, "min-fpt", 0.01, "Min feed per tooth in mm")
	optimizeCmd.Flags().Float64Var(&maxFpt, "max-fpt", 0.1, "Max feed per tooth in mm")
	optimizeCmd.Flags().Float64Var(&maxForce, "max-force", 17.0, "Max cutting force in N")
	optimizeCmd.Flags().IntVar(&resolution, "resolution", opt.DefaultResolution, "Samples per sweep axis")

	optimizeCmd.Flags().BoolVar(&refine, "refine", false, "Polish the grid winner with the mayfly optimizer")
	optimizeCmd.Flags().IntVar(&refineIters, "refine-iters", 100, "Refinement iterations")
	optimizeCmd.Flags().IntVar(&refinePop, "refine-pop", 30, "Refinement population size")
	optimizeCmd.Flags().Int64Var(&refineSeed, "refine-seed", 42, "Refinement random seed")

	rootCmd.AddCommand(optimizeCmd)
}

func selectMaterial() (mill.Material, error) {
	if tensile > 0 {
		return mill.Material{UltimateTensileStrength: tensile}, nil
	}
	switch materialName {
	case "al6061":
		return mill.Aluminum6061(), nil
	case "steel1215":
		return mill.Steel1215(), nil
	default:
		return mill.Material{}, fmt.Errorf("unknown material preset: %s", materialName)
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	material, err := selectMaterial()
	if err != nil {
		return err
	}

	tool := mill.NewTool(diameter, flutes)
	tool.WearFactor = wearFactor

	settings := opt.Settings{
		MinAxialDOC:     minAdoc,
		MaxAxialDOC:     maxAdoc,
		MinRadialDOC:    minRdoc,
		MaxRadialDOC:    maxRdoc,
		MinFeedPerTooth: minFpt,
		MaxFeedPerTooth: maxFpt,
		MaxCuttingForce: maxForce,
	}

	optimizer, err := opt.New(material, tool, surfaceSpeed, settings)
	if err != nil {
		return err
	}
	optimizer.Resolution = resolution

	slog.Info("Starting sweep",
		"resolution", resolution,
		"tensile", material.UltimateTensileStrength,
		"diameter", diameter,
		"flutes", flutes,
		"max_force", maxForce,
	)

	start := time.Now()
	recipe, err := optimizer.ComputeBest()
	if errors.Is(err, opt.ErrInfeasible) {
		fmt.Println("No feasible cut parameters within the given bounds; widen the bounds or raise the force limit.")
		return nil
	}
	if err != nil {
		return err
	}

	if refine {
		refiner := opt.NewRefiner(refineIters, refinePop, refineSeed)
		recipe, err = refiner.Refine(optimizer, recipe)
		if err != nil {
			return fmt.Errorf("refinement failed: %w", err)
		}
	}
	elapsed := time.Since(start)

	report, err := mill.BuildReport(material, recipe)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	slog.Info("Sweep complete",
		"elapsed", elapsed,
		"removal_rate", report.RemovalRate,
		"cutting_force", report.CuttingForce,
	)

	fmt.Print(report)
	return nil
}
