package sweep

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/oct"
	"gonum.org/v1/gonum/floats"
)

func TestSweepShape(Te *testing.T) {
	conf, err := oct.ForCount(2)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3801)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(25000, 31)
	if err != nil {
		Te.Fatal(err)
	}
	res := Run(conf, par, grid)
	if len(res.Skipped()) != 0 {
		Te.Errorf("dropped %d points on a perfectly tame grid", len(res.Skipped()))
	}
	points := res.Points()
	if len(points) != 31 {
		Te.Fatalf("expected 31 solved points, got %d", len(points))
	}
	for _, p := range points {
		if len(p.Energies) != conf.NBlocks() {
			Te.Fatalf("point at %3.1f has %d blocks, the configuration has %d", p.Delta, len(p.Energies), conf.NBlocks())
		}
		total := 0
		for b, energies := range p.Energies {
			if len(energies) != conf.Block(b).Dim() {
				Te.Errorf("block %d at %3.1f: %d roots for a %dx%d matrix", b, p.Delta, len(energies), conf.Block(b).Dim(), conf.Block(b).Dim())
			}
			total += len(energies)
			for i := 1; i < len(energies); i++ {
				if energies[i] < energies[i-1] {
					Te.Errorf("block %d at %3.1f: roots not in ascending order", b, p.Delta)
				}
			}
		}
		if total != conf.TotalDim() {
			Te.Errorf("point at %3.1f carries %d roots, want %d", p.Delta, total, conf.TotalDim())
		}
		if g := p.Energies[conf.GroundIndex()][0]; g != 0 {
			Te.Errorf("ground level at %3.1f reads %v, want exactly zero", p.Delta, g)
		}
		for b, energies := range p.Energies {
			for _, e := range energies {
				if e < -1e-9 {
					Te.Errorf("block %d at %3.1f: level %v below the ground state", b, p.Delta, e)
				}
			}
		}
	}
	fmt.Println("d2 sweep over", len(points), "points looks sane")
}

//At zero field the blocks must regroup into the free-ion terms, which is a strong
//cross-check of the matrix tables: eigenvalues of different blocks, computed through
//different arithmetic, have to agree to numerical precision.
func TestFreeIonLimit(Te *testing.T) {
	b, c := 860.0, 3850.0
	conf, err := oct.ForCount(2)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(b, c)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.SinglePoint(0)
	if err != nil {
		Te.Fatal(err)
	}
	res := Run(conf, par, grid)
	points := res.Points()
	if len(points) != 1 || len(res.Skipped()) != 0 {
		Te.Fatalf("single-point sweep came back with %d points and %d skips", len(points), len(res.Skipped()))
	}
	e := points[0].Energies
	//block order for d2: 1A1, 1E, 1T2, 3T1, 1T1, 3T2, 3A2
	//3F splits into 3T1, 3T2 and 3A2, all at zero
	if e[3][0] != 0 {
		Te.Errorf("3T1 ground not at zero: %v", e[3][0])
	}
	for _, i := range []int{5, 6} {
		if !floats.EqualWithinAbs(e[i][0], 0, 1e-6) {
			Te.Errorf("block %d not degenerate with the 3F ground at zero field: %v", i, e[i][0])
		}
	}
	//3P sits at 15B above 3F
	if !floats.EqualWithinAbs(e[3][1], 15*b, 1e-6) {
		Te.Errorf("3P at %v, want %v", e[3][1], 15*b)
	}
	//1D at 5B+2C: shared by 1E and 1T2
	oneD := 5*b + 2*c
	if !floats.EqualWithinAbs(e[1][0], oneD, 1e-6) || !floats.EqualWithinAbs(e[2][0], oneD, 1e-6) {
		Te.Errorf("1D components disagree: %v %v, want %v", e[1][0], e[2][0], oneD)
	}
	//1G at 12B+2C: shared by 1A1, 1E, 1T2 and 1T1
	oneG := 12*b + 2*c
	for _, g := range []float64{e[0][0], e[1][1], e[2][1], e[4][0]} {
		if !floats.EqualWithinAbs(g, oneG, 1e-6) {
			Te.Errorf("1G component at %v, want %v", g, oneG)
		}
	}
	//1S at 22B+7C
	if !floats.EqualWithinAbs(e[0][1], 22*b+7*c, 1e-6) {
		Te.Errorf("1S at %v, want %v", e[0][1], 22*b+7*c)
	}
	fmt.Println("free-ion d2 terms recovered: 3F 3P 1D 1G 1S")
}

//The d5 sextet is the classic case: 6A1 is the ground state up to the spin crossover
//and an excited state past it, so its curve must leave zero exactly once and never
//come back down.
func TestSextetCrossover(Te *testing.T) {
	conf, err := oct.ForCount(5)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3850)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(30000, 61)
	if err != nil {
		Te.Fatal(err)
	}
	res := Run(conf, par, grid)
	points := res.Points()
	if len(points) != 61 {
		Te.Fatalf("expected 61 points, got %d", len(points))
	}
	sextet := conf.GroundIndex()
	prev := math.Inf(-1)
	for _, p := range points {
		g := p.Energies[sextet][0]
		if g < -1e-6 {
			Te.Errorf("6A1 below the ground state at 10Dq=%4.1f: %v", p.Delta, g)
		}
		if g < prev-1e-6 {
			Te.Errorf("6A1 curve dips at 10Dq=%4.1f: %v after %v", p.Delta, g, prev)
		}
		prev = g
		for b, energies := range p.Energies {
			for _, e := range energies {
				if e < -1e-6 {
					Te.Errorf("block %d at 10Dq=%4.1f: level %v below zero", b, p.Delta, e)
				}
			}
		}
	}
	last := points[len(points)-1].Energies[sextet][0]
	if last < 1000 {
		Te.Errorf("6A1 still near the ground at 10Dq=30000 (%v cm^-1), the crossover never happened", last)
	}
	fmt.Printf("d5 sextet leaves the ground state and ends up %4.1f cm^-1 up\n", last)
}

//d6 with the iron(II) parameters: high spin (5T2 ground) at low field, low spin
//(1A1 ground) at high field.
func TestSpinStates(Te *testing.T) {
	conf, err := oct.ForCount(6)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3850)
	if err != nil {
		Te.Fatal(err)
	}
	quintet := conf.GroundIndex()
	singlet := conf.LowSpinIndex()
	if singlet < 0 {
		Te.Fatal("d6 carries no low-spin block")
	}
	//weak field: the quintet is the ground state
	grid, err := lft.SinglePoint(8065)
	if err != nil {
		Te.Fatal(err)
	}
	e := Run(conf, par, grid).Points()[0].Energies
	if e[quintet][0] != 0 {
		Te.Errorf("5T2 not the ground state at 10Dq=8065: %v", e[quintet][0])
	}
	if e[singlet][0] < 1000 {
		Te.Errorf("1A1 suspiciously low at 10Dq=8065: %v", e[singlet][0])
	}
	//strong field: the singlet takes over and becomes the new zero
	grid, err = lft.SinglePoint(80650)
	if err != nil {
		Te.Fatal(err)
	}
	e = Run(conf, par, grid).Points()[0].Energies
	if e[singlet][0] != 0 {
		Te.Errorf("1A1 not the ground state at 10Dq=80650: %v", e[singlet][0])
	}
	triplet := e[0][0] //lowest root of the 3T1 block
	if triplet < 60000 || triplet > 80000 {
		Te.Errorf("3T1 at %v cm^-1 above the low-spin ground, expected it near 68000", triplet)
	}
	if q := e[quintet][0]; q < 120000 || q > 135000 {
		Te.Errorf("5T2 at %v cm^-1 above the low-spin ground, expected it near 127000", q)
	}
	if !(e[singlet][0] < triplet && triplet < e[quintet][0]) {
		Te.Error("1A1 < 3T1 < 5T2 ordering lost at strong field")
	}
	fmt.Println("d6 switches from high spin to low spin with the field")
}

//A grid point whose matrix elements overflow must be dropped and reported, while the
//rest of the sweep carries on.
func TestUnstablePointDropped(Te *testing.T) {
	conf, err := oct.ForCount(2)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(860, 3801)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(1.6e308, 3)
	if err != nil {
		Te.Fatal(err)
	}
	res := Run(conf, par, grid)
	points := res.Points()
	if len(points) != 2 {
		Te.Fatalf("expected 2 surviving points, got %d", len(points))
	}
	skipped := res.Skipped()
	if len(skipped) != 1 {
		Te.Fatalf("expected 1 dropped point, got %d", len(skipped))
	}
	if skipped[0].Delta() != 1.6e308 {
		Te.Errorf("dropped the wrong point: 10Dq=%v", skipped[0].Delta())
	}
	if points[0].Delta != 0 || points[1].Delta != 8e307 {
		Te.Errorf("surviving points at %v and %v", points[0].Delta, points[1].Delta)
	}
	fmt.Println("overflowing point dropped:", skipped[0].Error())
}

func TestLabel(Te *testing.T) {
	conf, err := oct.ForCount(3)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := lft.NewRacah(918, 4133)
	if err != nil {
		Te.Fatal(err)
	}
	grid, err := lft.NewGrid(12000, 3)
	if err != nil {
		Te.Fatal(err)
	}
	res := Run(conf, par, grid)
	rows := Label(res)
	if len(rows) != 3*conf.TotalDim() {
		Te.Fatalf("%d rows for 3 points of a %d-dimensional basis", len(rows), conf.TotalDim())
	}
	points := res.Points()
	i := 0
	for p, point := range points {
		for b := 0; b < conf.NBlocks(); b++ {
			for r := 0; r < conf.Block(b).Dim(); r++ {
				row := rows[i]
				if row.Block != b || row.Root != r {
					Te.Fatalf("row %d: got block %d root %d, want block %d root %d", i, row.Block, row.Root, b, r)
				}
				if row.Term != conf.Block(b).Term() {
					Te.Errorf("row %d labeled %s, the block is %s", i, row.Term.String(), conf.Block(b).Term().String())
				}
				if row.Delta != point.Delta || row.Energy != points[p].Energies[b][r] {
					Te.Errorf("row %d does not match the sweep it came from", i)
				}
				i++
			}
		}
	}
	//the quartet ground state reads zero on every row that carries it
	for _, row := range rows {
		if row.Block == conf.GroundIndex() && row.Root == 0 && row.Energy != 0 {
			Te.Errorf("4A2 row at 10Dq=%4.1f not at zero: %v", row.Delta, row.Energy)
		}
	}
	if again := Label(res); !reflect.DeepEqual(rows, again) {
		Te.Error("labeling the same sweep twice gave different rows")
	}
	fmt.Println("labeled", len(rows), "rows for d3")
}
