/*Package diagram turns labeled sweep rows into plottable data sets: the classic
dimensionless Tanabe-Sugano diagram (E/B against 10Dq/B) or the dimensioned
energy-level diagram in cm^-1. Assembling is a pure reshaping of the rows, so
the same rows and options always produce the same data set.*/
package diagram

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/sweep"
)

//Mode selects the diagram family.
type Mode int

const (
	//TanabeSugano is the dimensionless diagram: E/B against 10Dq/B. Diagrams in this
	//mode are comparable across ions with the same C/B ratio.
	TanabeSugano Mode = iota
	//EnergyLevels is the dimensioned diagram: E against 10Dq, both in cm^-1.
	EnergyLevels
)

//String returns the short tag used in file names: "TS" or "DD".
func (M Mode) String() string {
	if M == TanabeSugano {
		return "TS"
	}
	return "DD"
}

func (M Mode) valid() bool {
	return M == TanabeSugano || M == EnergyLevels
}

//Options modifies the assembly of a diagram. Use DefaultOptions to get a set
//with sane defaults, then change what you need with the provided methods.
type Options struct {
	cutoff   float64
	maxroots int
}

//DefaultOptions returns an Options with no energy cutoff and no root limit.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = math.Inf(1)
	ret.maxroots = 0
	return ret
}

//Returns the energy cutoff and sets it to the given value, if any. Rows above
//the cutoff are left out of the diagram. The cutoff is always in cm^-1 and is
//applied before any normalization by B, also in the dimensionless mode.
func (r *Options) Cutoff(cutoff ...float64) float64 {
	ret := r.cutoff
	if len(cutoff) > 0 && !math.IsNaN(cutoff[0]) {
		r.cutoff = cutoff[0]
	}
	return ret
}

//Returns the maximum number of roots kept per symmetry block and sets it, if a
//valid value is given. Zero means no limit; 1 keeps only each block's lowest
//level, which gives one curve per term.
func (r *Options) MaxRoots(maxroots ...int) int {
	ret := r.maxroots
	if len(maxroots) > 0 && maxroots[0] >= 0 {
		r.maxroots = maxroots[0]
	}
	return ret
}

//Series is one curve of a diagram: all the points of one root of one symmetry
//block, in ascending field order. The points of a series with an energy cutoff
//in place need not cover the whole grid.
type Series struct {
	term  lft.Term
	block int
	root  int
	x     []float64
	y     []float64
}

//Term returns the term symbol of the curve.
func (S *Series) Term() lft.Term { return S.term }

//Block returns the index of the symmetry block the curve belongs to.
func (S *Series) Block() int { return S.block }

//Root returns the root index (0 is the block's lowest level).
func (S *Series) Root() int { return S.root }

//Name returns the curve label used in tables and legends, e.g. "3T1g_0".
func (S *Series) Name() string { return fmt.Sprintf("%s_%d", S.term.String(), S.root) }

//Len returns the number of points in the curve.
func (S *Series) Len() int { return len(S.x) }

//Point returns the i-th point of the curve.
func (S *Series) Point(i int) (x, y float64) { return S.x[i], S.y[i] }

//X returns a copy of the abscissa values of the curve.
func (S *Series) X() []float64 {
	r := make([]float64, len(S.x))
	copy(r, S.x)
	return r
}

//Y returns a copy of the ordinate values of the curve.
func (S *Series) Y() []float64 {
	r := make([]float64, len(S.y))
	copy(r, S.y)
	return r
}

func (S *Series) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Term  lft.Term  `json:"term"`
		Block int       `json:"block"`
		Root  int       `json:"root"`
		X     []float64 `json:"x"`
		Y     []float64 `json:"y"`
	}{
		Term:  S.term,
		Block: S.block,
		Root:  S.root,
		X:     S.x,
		Y:     S.y,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (S *Series) UnmarshalJSON(b []byte) error {
	var a struct {
		Term  lft.Term  `json:"term"`
		Block int       `json:"block"`
		Root  int       `json:"root"`
		X     []float64 `json:"x"`
		Y     []float64 `json:"y"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	S.term = a.Term
	S.block = a.Block
	S.root = a.Root
	S.x = a.X
	S.y = a.Y
	return nil
}

//Dataset is an assembled diagram: the curves plus the metadata needed to label,
//file and replot them.
type Dataset struct {
	mode   Mode
	n      int
	par    *lft.Racah
	series []*Series
}

//Mode returns the diagram family of the data set.
func (D *Dataset) Mode() Mode { return D.mode }

//ElectronCount returns the d-electron count the diagram was computed for.
func (D *Dataset) ElectronCount() int { return D.n }

//Parameters returns the Racah parameters the diagram was computed with.
func (D *Dataset) Parameters() *lft.Racah { return D.par }

//NSeries returns the number of curves.
func (D *Dataset) NSeries() int { return len(D.series) }

//Series returns the curves, ordered by block and root. The slice is a copy but
//the curves are shared, do not modify them.
func (D *Dataset) Series() []*Series {
	s := make([]*Series, len(D.series))
	copy(s, D.series)
	return s
}

//Len returns the total number of points over all curves.
func (D *Dataset) Len() int {
	t := 0
	for _, s := range D.series {
		t += len(s.x)
	}
	return t
}

//Xs returns the sorted union of the abscissa values of all curves. With an
//energy cutoff in place not every curve covers every abscissa.
func (D *Dataset) Xs() []float64 {
	seen := make(map[float64]bool)
	var xs []float64
	for _, s := range D.series {
		for _, x := range s.x {
			if !seen[x] {
				seen[x] = true
				xs = append(xs, x)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

//MaxDelta returns the largest field strength in the data set, in cm^-1, whatever
//the mode. Zero for an empty data set.
func (D *Dataset) MaxDelta() float64 {
	max := 0.0
	for _, s := range D.series {
		for _, x := range s.x {
			if x > max {
				max = x
			}
		}
	}
	if D.mode == TanabeSugano {
		max *= D.par.B()
	}
	return max
}

//XLabel returns the axis label for the abscissa of this data set.
func (D *Dataset) XLabel() string {
	if D.mode == TanabeSugano {
		return "10Dq/B"
	}
	return "10Dq (cm^-1)"
}

//YLabel returns the axis label for the ordinate of this data set.
func (D *Dataset) YLabel() string {
	if D.mode == TanabeSugano {
		return "E/B"
	}
	return "E (cm^-1)"
}

func (D *Dataset) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Mode   Mode       `json:"mode"`
		N      int        `json:"n"`
		Racah  *lft.Racah `json:"racah"`
		Series []*Series  `json:"series"`
	}{
		Mode:   D.mode,
		N:      D.n,
		Racah:  D.par,
		Series: D.series,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Dataset) UnmarshalJSON(b []byte) error {
	var a struct {
		Mode   Mode       `json:"mode"`
		N      int        `json:"n"`
		Racah  *lft.Racah `json:"racah"`
		Series []*Series  `json:"series"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if !a.Mode.valid() {
		return lft.NewInvalidParameter("Dataset.UnmarshalJSON", "goLFT: unknown diagram mode %d", int(a.Mode))
	}
	if a.N < 2 || a.N > 8 {
		return lft.NewUnsupportedConfiguration("Dataset.UnmarshalJSON", a.N)
	}
	if a.Racah == nil {
		return lft.NewInvalidParameter("Dataset.UnmarshalJSON", "goLFT: data set without Racah parameters")
	}
	D.mode = a.Mode
	D.n = a.N
	D.par = a.Racah
	D.series = a.Series
	return nil
}

//Assemble builds a diagram from labeled rows. Rows above the energy cutoff, and
//roots past the per-block limit, are left out; in the dimensionless mode the
//surviving energies and fields are divided by B. Assembling is deterministic
//and does not modify the rows, so calling it twice gives equal data sets. An
//empty row set, or a cutoff below every row, gives an empty data set and no
//error.
func Assemble(rows []sweep.Row, n int, par *lft.Racah, mode Mode, options ...*Options) (*Dataset, error) {
	if par == nil {
		panic(lft.ErrNilParameters)
	}
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	if !mode.valid() {
		return nil, lft.NewInvalidParameter("diagram.Assemble", "goLFT: unknown diagram mode %d", int(mode))
	}
	if n < 2 || n > 8 {
		return nil, lft.NewUnsupportedConfiguration("diagram.Assemble", n)
	}
	ret := &Dataset{mode: mode, n: n, par: par}
	index := make(map[[2]int]*Series)
	for _, row := range rows {
		if row.Energy > o.cutoff {
			continue
		}
		if o.maxroots > 0 && row.Root >= o.maxroots {
			continue
		}
		key := [2]int{row.Block, row.Root}
		s, ok := index[key]
		if !ok {
			s = &Series{term: row.Term, block: row.Block, root: row.Root}
			index[key] = s
			ret.series = append(ret.series, s)
		}
		x, y := row.Delta, row.Energy
		if mode == TanabeSugano {
			x /= par.B()
			y /= par.B()
		}
		s.x = append(s.x, x)
		s.y = append(s.y, y)
	}
	sort.Slice(ret.series, func(i, j int) bool {
		a, b := ret.series[i], ret.series[j]
		if a.block != b.block {
			return a.block < b.block
		}
		return a.root < b.root
	})
	return ret, nil
}
