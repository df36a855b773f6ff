package diagram

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/oct"
	"github.com/rmera/golft/sweep"
)

func labeled(Te *testing.T, n int, b, c, delta float64) ([]sweep.Row, *oct.Config, *lft.Racah) {
	conf, err := oct.ForCount(n)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(b, c)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.SinglePoint(delta)
	if err != nil {
		Te.Fatal(err)
	}
	return sweep.Label(sweep.Run(conf, par, grid)), conf, par
}

//The strong-field d6 case: in the dimensionless diagram the low-spin singlet
//reads zero and the old high-spin ground state shows up as a high excited level.
func TestTanabeSuganoD6(Te *testing.T) {
	rows, conf, par := labeled(Te, 6, 860, 3850, 80650)
	ds, err := Assemble(rows, 6, par, TanabeSugano)
	if err != nil {
		Te.Fatal(err)
	}
	if ds.Mode() != TanabeSugano || ds.ElectronCount() != 6 || ds.Parameters() != par {
		Te.Error("data set metadata does not match the assembly arguments")
	}
	if ds.NSeries() != conf.TotalDim() || ds.Len() != conf.TotalDim() {
		Te.Fatalf("%d curves with %d points for a single-point d6 sweep, want %d and %d",
			ds.NSeries(), ds.Len(), conf.TotalDim(), conf.TotalDim())
	}
	wantx := 80650.0 / par.B()
	var singlet, triplet, quintet *Series
	for _, s := range ds.Series() {
		if s.Len() != 1 {
			Te.Fatalf("curve %s has %d points, want 1", s.Name(), s.Len())
		}
		if x, _ := s.Point(0); x != wantx {
			Te.Errorf("curve %s at 10Dq/B=%v, want %v", s.Name(), x, wantx)
		}
		if s.Root() != 0 {
			continue
		}
		switch s.Block() {
		case conf.LowSpinIndex():
			singlet = s
		case 0:
			triplet = s
		case conf.GroundIndex():
			quintet = s
		}
	}
	if singlet == nil || triplet == nil || quintet == nil {
		Te.Fatal("missing one of the 1A1, 3T1 or 5T2 curves")
	}
	_, e0 := singlet.Point(0)
	_, e1 := triplet.Point(0)
	_, e2 := quintet.Point(0)
	if e0 != 0 {
		Te.Errorf("1A1g not at zero: E/B=%v", e0)
	}
	if e1 < 69 || e1 > 94 {
		Te.Errorf("3T1g at E/B=%v, expected it near 81", e1)
	}
	if e2 < 139 || e2 > 157 {
		Te.Errorf("5T2g at E/B=%v, expected it near 148", e2)
	}
	if !(e0 < e1 && e1 < e2) {
		Te.Error("1A1g < 3T1g < 5T2g ordering lost")
	}
	fmt.Printf("strong-field d6: 1A1g %3.1f, 3T1g %3.1f, 5T2g %3.1f (E/B)\n", e0, e1, e2)
}

func TestAssembleIdempotent(Te *testing.T) {
	conf, err := oct.ForCount(3)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(918, 4133)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(20000, 5)
	if err != nil {
		Te.Fatal(err)
	}
	rows := sweep.Label(sweep.Run(conf, par, grid))
	before := make([]sweep.Row, len(rows))
	copy(before, rows)
	o := DefaultOptions()
	o.Cutoff(30000)
	ds1, err := Assemble(rows, 3, par, EnergyLevels, o)
	if err != nil {
		Te.Fatal(err)
	}
	ds2, err := Assemble(rows, 3, par, EnergyLevels, o)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(ds1, ds2) {
		Te.Error("assembling the same rows twice gave different data sets")
	}
	if !reflect.DeepEqual(rows, before) {
		Te.Error("Assemble modified the rows it was given")
	}
	fmt.Println("d3 assembly is idempotent over", ds1.NSeries(), "curves")
}

func TestMaxRoots(Te *testing.T) {
	conf, err := oct.ForCount(2)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3801)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(25000, 5)
	if err != nil {
		Te.Fatal(err)
	}
	res := sweep.Run(conf, par, grid)
	o := DefaultOptions()
	o.MaxRoots(1)
	ds, err := Assemble(sweep.Label(res), 2, par, EnergyLevels, o)
	if err != nil {
		Te.Fatal(err)
	}
	if ds.NSeries() != conf.NBlocks() {
		Te.Fatalf("root limit 1 gave %d curves, want one per block (%d)", ds.NSeries(), conf.NBlocks())
	}
	points := res.Points()
	for i, s := range ds.Series() {
		if s.Root() != 0 {
			Te.Errorf("curve %s is not a lowest root", s.Name())
		}
		if s.Block() != i {
			Te.Errorf("curves out of block order at %d", i)
		}
		if s.Len() != len(points) {
			Te.Errorf("curve %s has %d points, want %d", s.Name(), s.Len(), len(points))
		}
		for j := 0; j < s.Len(); j++ {
			_, y := s.Point(j)
			if y != points[j].Energies[i][0] {
				Te.Errorf("curve %s point %d does not match the sweep", s.Name(), j)
			}
		}
	}
	fmt.Println("one curve per block with the root limit in place")
}

func TestCutoff(Te *testing.T) {
	conf, err := oct.ForCount(2)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3801)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(25000, 11)
	if err != nil {
		Te.Fatal(err)
	}
	rows := sweep.Label(sweep.Run(conf, par, grid))
	//a cutoff below the ground state leaves nothing, and that is not an error
	o := DefaultOptions()
	o.Cutoff(-1)
	ds, err := Assemble(rows, 2, par, EnergyLevels, o)
	if err != nil {
		Te.Fatal("a cutoff below every level must not fail:", err)
	}
	if ds.NSeries() != 0 || ds.Len() != 0 || len(ds.Xs()) != 0 || ds.MaxDelta() != 0 {
		Te.Error("the empty diagram is not empty")
	}
	//a working cutoff: every surviving point obeys it, the ground curve is whole
	o = DefaultOptions()
	o.Cutoff(24000)
	ds, err = Assemble(rows, 2, par, EnergyLevels, o)
	if err != nil {
		Te.Fatal(err)
	}
	if ds.Len() >= len(rows) || ds.Len() == 0 {
		Te.Errorf("cutoff at 24000 kept %d of %d rows", ds.Len(), len(rows))
	}
	for _, s := range ds.Series() {
		for i := 0; i < s.Len(); i++ {
			if _, y := s.Point(i); y > 24000 {
				Te.Errorf("curve %s carries a point above the cutoff: %v", s.Name(), y)
			}
		}
		//the 1S root sits above 45000 cm^-1 over this whole range
		if s.Block() == 0 && s.Root() == 1 {
			Te.Error("the high singlet should have been cut entirely")
		}
		if s.Block() == conf.GroundIndex() && s.Root() == 0 && s.Len() != grid.Len() {
			Te.Error("the ground curve lost points to a cutoff above zero")
		}
	}
	fmt.Println("cutoff respected over", ds.NSeries(), "curves")
}

func TestDatasetJSON(Te *testing.T) {
	rows, _, par := labeled(Te, 4, 965, 4449, 12000)
	ds, err := Assemble(rows, 4, par, TanabeSugano)
	if err != nil {
		Te.Fatal(err)
	}
	j, err := json.Marshal(ds)
	if err != nil {
		Te.Fatal(err)
	}
	back := new(Dataset)
	if err := json.Unmarshal(j, back); err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(ds, back) {
		Te.Error("data set changed over a JSON round trip")
	}
	if err := json.Unmarshal([]byte(`{"mode":7,"n":4,"racah":{"b":860,"c":3850}}`), new(Dataset)); err == nil {
		Te.Error("an unknown mode was accepted")
	}
	if err := json.Unmarshal([]byte(`{"mode":0,"n":1,"racah":{"b":860,"c":3850}}`), new(Dataset)); err == nil {
		Te.Error("a d1 data set was accepted")
	}
	fmt.Println("data set survives the JSON round trip,", len(j), "bytes")
}
