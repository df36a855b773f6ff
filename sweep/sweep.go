/*Package sweep solves the octahedral secular matrices over a range of field strengths.
At each grid point every symmetry block of the configuration is instantiated and
diagonalized, and the eigenvalues are referenced to the ground level at that same
point, so the ground state reads zero along the whole diagram even through a
high-spin/low-spin crossover.*/
package sweep

import (
	"log"
	"sort"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/oct"
	"gonum.org/v1/gonum/mat"
)

//Point holds the energies of every block at one field strength. Energies[i] are the
//ascending, ground-referenced eigenvalues (cm^-1) of the configuration's i-th block.
type Point struct {
	Delta    float64 //10Dq, cm^-1
	Energies [][]float64
}

//Result is the outcome of a sweep. Points only contains the grid points that could be
//solved; the points lost to numerical trouble are accounted for in Skipped.
type Result struct {
	conf    *oct.Config
	par     *lft.Racah
	points  []Point
	skipped []lft.NumericalInstabilityError
}

//Config returns the configuration that was swept.
func (R *Result) Config() *oct.Config { return R.conf }

//Parameters returns the Racah parameters used.
func (R *Result) Parameters() *lft.Racah { return R.par }

//Points returns the solved grid points, in grid order.
func (R *Result) Points() []Point {
	p := make([]Point, len(R.points))
	copy(p, R.points)
	return p
}

//Skipped returns the errors for the grid points that were dropped. An empty slice
//means the whole sweep went through.
func (R *Result) Skipped() []lft.NumericalInstabilityError {
	s := make([]lft.NumericalInstabilityError, len(R.skipped))
	copy(s, R.skipped)
	return s
}

//Run sweeps the given configuration over the grid. Parameter and configuration
//validation happen when those values are built, so by the time Run is called the only
//thing that can still go wrong is the numerics of a single point; such points are
//dropped, logged and reported in the result instead of aborting the sweep.
func Run(conf *oct.Config, par *lft.Racah, grid *lft.Grid) *Result {
	if conf == nil {
		panic(lft.ErrNilConfig)
	}
	if par == nil {
		panic(lft.ErrNilParameters)
	}
	if grid == nil {
		panic(lft.ErrNilGrid)
	}
	res := &Result{conf: conf, par: par}
	for _, delta := range grid.Values() {
		p, err := solvePoint(conf, par, delta)
		if err != nil {
			nerr := err.(lft.NumericalInstabilityError)
			log.Printf("goLFT/sweep: dropping the point at 10Dq=%4.1f cm^-1: %v", delta, nerr.Error())
			res.skipped = append(res.skipped, nerr)
			continue
		}
		res.points = append(res.points, p)
	}
	return res
}

//solvePoint diagonalizes every block at one field strength and references the
//energies to the ground level. The returned error, if any, is always a
//NumericalInstabilityError naming the first offending block: with the ground
//reference gone, the other blocks of the point are useless too, so the whole
//point is discarded.
func solvePoint(conf *oct.Config, par *lft.Racah, delta float64) (Point, error) {
	dq := delta / 10.0
	energies := make([][]float64, conf.NBlocks())
	for i := 0; i < conf.NBlocks(); i++ {
		blk := conf.Block(i)
		m, err := blk.Matrix(dq, par.B(), par.C())
		if err != nil {
			return Point{}, err
		}
		var eig mat.EigenSym
		if !eig.Factorize(m, false) {
			return Point{}, lft.NewNumericalInstability("sweep.solvePoint", blk.Term(), delta, "the eigendecomposition did not converge")
		}
		v := eig.Values(nil)
		sort.Float64s(v)
		energies[i] = v
	}
	shift(energies, energies[conf.GroundIndex()][0])
	//past the spin crossover the low-spin block is the new zero
	if ls := conf.LowSpinIndex(); ls >= 0 && energies[ls][0] <= conf.CrossoverTol() {
		shift(energies, energies[ls][0])
	}
	return Point{Delta: delta, Energies: energies}, nil
}

func shift(energies [][]float64, ref float64) {
	for _, blk := range energies {
		for i := range blk {
			blk[i] -= ref
		}
	}
}

//Row is one labeled eigenvalue: the term symbol and root index identify the curve it
//belongs to, Delta and Energy are the point on it. What the spectroscopists call an
//assignment.
type Row struct {
	Term   lft.Term
	Block  int
	Root   int
	Delta  float64
	Energy float64
}

//Label flattens a sweep into labeled rows. The labels come from the block templates,
//never from the numbers, so a root keeps its term symbol across crossings and
//degeneracies. The order is deterministic: grid point, then block, then root.
func Label(res *Result) []Row {
	if res == nil {
		return nil
	}
	rows := make([]Row, 0, len(res.points)*res.conf.TotalDim())
	for _, p := range res.points {
		for b, energies := range p.Energies {
			term := res.conf.Block(b).Term()
			for r, e := range energies {
				rows = append(rows, Row{Term: term, Block: b, Root: r, Delta: p.Delta, Energy: e})
			}
		}
	}
	return rows
}
