package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/diagram"
	"github.com/rmera/golft/export"
	"github.com/rmera/golft/lftplot"
	"github.com/rmera/golft/oct"
	"github.com/rmera/golft/sweep"
)

var (
	diagD      int
	diagDq     float64
	diagCut    float64
	diagB      []float64
	diagC      []float64
	diagPoints int
	diagSlater bool
	diagMaxE   float64
	diagRoots  int
	diagNoPlot bool
	diagNoTab  bool
	diagOut    string
	diagComp   string
	diagExt    string
	diagTags   []string
	diagLegend bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Compute the diagrams and excitation table for one complex",
	Long: `diagram sweeps the crystal field from zero to --dq and writes the
Tanabe-Sugano and d-d excitation diagrams of the complex, as CSV tables and
as plots. It also prints the excitation energies at the single field strength
given with --cut, which is where the complex under study actually sits.

Examples:
  golft diagram -d 6 --dq 25065 --cut 24000 --b 1080,0.9 --c 4773,1.0
  golft diagram -d 3 --slater --b 10.5,1 --c 6.1,1 --maxenergy 60000`,
	RunE: runDiagram,
}

func init() {
	f := diagramCmd.Flags()
	f.IntVarP(&diagD, "delectrons", "d", 6, "number of d electrons, 2 to 8")
	f.Float64Var(&diagDq, "dq", 25065.0, "10Dq at the right edge of the diagrams, in cm^-1")
	f.Float64Var(&diagCut, "cut", 24000.0, "10Dq for the printed excitation table, in cm^-1")
	f.Float64SliceVar(&diagB, "b", []float64{1080, 1.0}, "Racah B in cm^-1 and a reduction factor")
	f.Float64SliceVar(&diagC, "c", []float64{4773, 1.0}, "Racah C in cm^-1 and a reduction factor")
	f.IntVarP(&diagPoints, "points", "n", 500, "points along the field axis")
	f.BoolVar(&diagSlater, "slater", false, "read b and c as the Slater-Condon F2 and F4, in eV")
	f.Float64Var(&diagMaxE, "maxenergy", 0, "drop levels above this energy in cm^-1; 0 keeps everything")
	f.IntVar(&diagRoots, "maxroots", 0, "keep only this many roots per symmetry block; 0 keeps all")
	f.BoolVar(&diagNoPlot, "noplot", false, "do not write the diagram images")
	f.BoolVar(&diagNoTab, "notables", false, "do not write the CSV tables")
	f.StringVarP(&diagOut, "out", "o", ".", "output directory")
	f.StringVar(&diagComp, "compress", "", "compress the CSV tables: gz, zst or flate")
	f.StringVar(&diagExt, "plotext", "png", "image format for the plots: png, svg, pdf, eps, tif or jpg")
	f.StringSliceVar(&diagTags, "tag", nil, "names of levels to highlight in the plots, e.g. 5T2g_0")
	f.BoolVar(&diagLegend, "legend", false, "draw a legend with the level names")
	rootCmd.AddCommand(diagramCmd)
}

func runDiagram(cmd *cobra.Command, args []string) error {
	v, err := initSettings(cmd)
	if err != nil {
		return err
	}
	d := v.GetInt("delectrons")
	conf, err := oct.ForCount(d)
	if err != nil {
		return err
	}
	par, err := repulsion(diagB, diagC, v.GetBool("slater"))
	if err != nil {
		return err
	}
	dq := v.GetFloat64("dq")
	points := v.GetInt("points")
	var grid *lft.Grid
	if points == 1 {
		grid, err = lft.SinglePoint(dq)
	} else {
		grid, err = lft.NewGrid(dq, points)
	}
	if err != nil {
		return err
	}
	res := sweep.Run(conf, par, grid)
	if skipped := res.Skipped(); len(skipped) > 0 {
		log.Printf("%d of %d points were numerically unstable and dropped", len(skipped), grid.Len())
	}
	rows := sweep.Label(res)
	o := diagram.DefaultOptions()
	if maxe := v.GetFloat64("maxenergy"); maxe > 0 {
		o.Cutoff(maxe)
	}
	o.MaxRoots(v.GetInt("maxroots"))
	ts, err := diagram.Assemble(rows, d, par, diagram.TanabeSugano, o)
	if err != nil {
		return err
	}
	dd, err := diagram.Assemble(rows, d, par, diagram.EnergyLevels, o)
	if err != nil {
		return err
	}
	out := v.GetString("out")
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}
	if !v.GetBool("notables") {
		for _, D := range []*diagram.Dataset{ts, dd} {
			name := export.DefaultName(D)
			if comp := v.GetString("compress"); comp != "" {
				name = name + "." + comp
			}
			written, err := export.WriteFile(D, filepath.Join(out, name))
			if err != nil {
				return err
			}
			fmt.Println("wrote", written)
		}
	}
	//the excitation table for the complex at the --cut field strength
	cut := v.GetFloat64("cut")
	cgrid, err := lft.SinglePoint(cut)
	if err != nil {
		return err
	}
	levels, err := export.Levels(sweep.Label(sweep.Run(conf, par, cgrid)))
	if err != nil {
		return err
	}
	fmt.Printf("d%d excitations at 10Dq=%.0f cm^-1, %v\n", d, cut, par)
	fmt.Print(export.FormatLevels(levels))
	if !v.GetBool("notables") {
		name := filepath.Join(out, export.CutName(d, cut, par))
		if err := export.WriteLevelsFile(levels, name); err != nil {
			return err
		}
		fmt.Println("wrote", name)
	}
	if !v.GetBool("noplot") {
		po := lftplot.DefaultOptions()
		po.Legend(v.GetBool("legend"))
		tags := v.GetStringSlice("tag")
		ext := v.GetString("plotext")
		for _, D := range []*diagram.Dataset{ts, dd} {
			base := strings.TrimSuffix(export.DefaultName(D), ".csv")
			name := filepath.Join(out, base+"."+ext)
			if err := lftplot.Diagram(D, tags, name, po); err != nil {
				return err
			}
			fmt.Println("wrote", name)
		}
	}
	return nil
}

//repulsion builds the parameter set from the two value-and-reduction pairs
//the flags carry, converting from Slater-Condon integrals when asked to.
func repulsion(b, c []float64, slater bool) (*lft.Racah, error) {
	if len(b) != 2 || len(c) != 2 {
		return nil, fmt.Errorf("the b and c flags take a value and a reduction factor, got %v and %v", b, c)
	}
	if slater {
		return lft.FromSlaterCondon(b[0]*b[1], c[0]*c[1])
	}
	return lft.NewRacah(b[0], c[0], b[1], c[1])
}
