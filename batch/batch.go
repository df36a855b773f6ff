/*Package batch runs families of single-point ligand-field calculations over
ranges of the crystal-field strength and the Racah parameters, for screening
studies where one diagram is not enough. Jobs are described in a small YAML
format and the parameter combinations are dealt to concurrent workers.*/
package batch

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	lft "github.com/rmera/golft"
	"github.com/rmera/golft/oct"
	"github.com/rmera/golft/sweep"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

//Range is a closed interval sampled at Steps evenly spaced values, endpoints
//included. Steps=1 takes just Start. In YAML a range can be written as a
//mapping ({start: 4000, stop: 4500, steps: 10}) or as a plain three-value
//list ([4000, 4500, 10]).
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Steps int     `yaml:"steps"`
}

func (R *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var v []float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		if len(v) != 3 {
			return lft.NewInvalidParameter("batch.Range", "goLFT: a range written as a list takes exactly start, stop and steps, got %d values", len(v))
		}
		R.Start, R.Stop, R.Steps = v[0], v[1], int(v[2])
		return nil
	}
	var a struct {
		Start float64 `yaml:"start"`
		Stop  float64 `yaml:"stop"`
		Steps int     `yaml:"steps"`
	}
	if err := value.Decode(&a); err != nil {
		return err
	}
	R.Start, R.Stop, R.Steps = a.Start, a.Stop, a.Steps
	return nil
}

//Values returns the sampled points of the range. Call validate first; a range
//with Steps<1 makes no sense and this method will panic on one.
func (R Range) Values() []float64 {
	if R.Steps == 1 {
		return []float64{R.Start}
	}
	v := make([]float64, R.Steps)
	floats.Span(v, R.Start, R.Stop)
	v[R.Steps-1] = R.Stop
	return v
}

func (R Range) validate(name string, job int) error {
	if R.Steps < 1 {
		return lft.NewInvalidParameter("batch.Run", "goLFT: job %d: the %s range needs at least 1 step, got %d", job, name, R.Steps)
	}
	if math.IsNaN(R.Start) || math.IsInf(R.Start, 0) || math.IsNaN(R.Stop) || math.IsInf(R.Stop, 0) {
		return lft.NewInvalidParameter("batch.Run", "goLFT: job %d: the %s range bounds must be finite, got [%v,%v]", job, name, R.Start, R.Stop)
	}
	return nil
}

func (R Range) zero() bool {
	return R.Start == 0 && R.Stop == 0 && R.Steps == 0
}

//Job is one batch specification: a d-electron count plus ranges for 10Dq and
//for the two inter-electron repulsion parameters. With Slater set, the B and C
//ranges are read as the Slater-Condon integrals F2 and F4, in eV, and converted
//per point.
type Job struct {
	D      int   `yaml:"d"`
	Dq     Range `yaml:"dq"`
	B      Range `yaml:"b"`
	C      Range `yaml:"c"`
	Slater bool  `yaml:"slater"`
}

//DefaultJob returns the default screening job: a d5 ion over a modest 10Dq
//window and wide B and C ranges.
func DefaultJob() Job {
	return Job{
		D:  5,
		Dq: Range{Start: 40000, Stop: 45000, Steps: 10},
		B:  Range{Start: 400, Stop: 4500, Steps: 10},
		C:  Range{Start: 3600, Stop: 4000, Steps: 10},
	}
}

func fillDefaults(J *Job) {
	def := DefaultJob()
	if J.D == 0 {
		J.D = def.D
	}
	if J.Dq.zero() {
		J.Dq = def.Dq
	}
	if J.B.zero() {
		J.B = def.B
	}
	if J.C.zero() {
		J.C = def.C
	}
}

//Load reads a YAML job file from r. The format is a "jobs" list; keys that are
//not part of the format are rejected, and fields left out fall back to the
//DefaultJob values.
func Load(r io.Reader) ([]Job, error) {
	var f struct {
		Jobs []Job `yaml:"jobs"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if len(f.Jobs) == 0 {
		return nil, lft.NewInvalidParameter("batch.Load", "goLFT: no jobs in the input")
	}
	for i := range f.Jobs {
		fillDefaults(&f.Jobs[i])
	}
	return f.Jobs, nil
}

//LoadFile reads a YAML job file from disk.
func LoadFile(name string) ([]Job, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	jobs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("goLFT/batch: reading %s: %v", name, err)
	}
	return jobs, nil
}

//Entry is the outcome of one parameter combination: the labeled levels of one
//ion at one field strength.
type Entry struct {
	D     int
	Delta float64
	Par   *lft.Racah
	Rows  []sweep.Row
}

//Result collects the entries of a whole batch, in deterministic job, 10Dq, B, C
//order whatever the number of workers. Combinations lost to numerical trouble
//are reported in Skipped.
type Result struct {
	entries []Entry
	skipped []lft.NumericalInstabilityError
}

//Entries returns the computed entries.
func (R *Result) Entries() []Entry {
	e := make([]Entry, len(R.entries))
	copy(e, R.entries)
	return e
}

//Skipped returns the errors for the combinations that were dropped.
func (R *Result) Skipped() []lft.NumericalInstabilityError {
	s := make([]lft.NumericalInstabilityError, len(R.skipped))
	copy(s, R.skipped)
	return s
}

//Len returns the number of computed entries.
func (R *Result) Len() int { return len(R.entries) }

//Options modifies a batch run. Use DefaultOptions to get a set with the
//defaults, then change what you need with the provided methods.
type Options struct {
	cpus int
}

//DefaultOptions returns an Options with as many workers as logical CPUs.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	return ret
}

//Returns the number of concurrent workers and sets it, if a valid value
//is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//task is one fully validated parameter combination, ready for a worker.
type task struct {
	d    int
	conf *oct.Config
	grid *lft.Grid
	par  *lft.Racah
}

type unit struct {
	entry Entry
	skip  *lft.NumericalInstabilityError
}

//Run computes every parameter combination of every job. Invalid jobs (bad
//electron counts, empty or non-physical ranges) fail the whole batch before any
//computation starts; numerical trouble in single combinations only drops those
//combinations.
func Run(jobs []Job, options ...*Options) (*Result, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	tasks, err := expand(jobs)
	if err != nil {
		return nil, err
	}
	res := new(Result)
	results := make([]chan *unit, o.cpus)
	for i := range results {
		results[i] = make(chan *unit)
	}
	//workers are launched in rounds of cpus and collected in launch order,
	//which keeps the entries deterministic
	for start := 0; start < len(tasks); start += o.cpus {
		end := start + o.cpus
		if end > len(tasks) {
			end = len(tasks)
		}
		for k := 0; k < end-start; k++ {
			go unitPoint(tasks[start+k], results[k])
		}
		for k := 0; k < end-start; k++ {
			u := <-results[k]
			if u.skip != nil {
				res.skipped = append(res.skipped, *u.skip)
				continue
			}
			res.entries = append(res.entries, u.entry)
		}
	}
	return res, nil
}

//the worker for one parameter combination
func unitPoint(t task, out chan *unit) {
	r := sweep.Run(t.conf, t.par, t.grid)
	if sk := r.Skipped(); len(sk) > 0 {
		out <- &unit{skip: &sk[0]}
		return
	}
	out <- &unit{entry: Entry{D: t.d, Delta: t.grid.Max(), Par: t.par, Rows: sweep.Label(r)}}
}

//expand validates the jobs and unrolls them into single tasks, Dq outermost and
//C innermost.
func expand(jobs []Job) ([]task, error) {
	if len(jobs) == 0 {
		return nil, lft.NewInvalidParameter("batch.Run", "goLFT: no jobs to run")
	}
	var tasks []task
	for i, j := range jobs {
		conf, err := oct.ForCount(j.D)
		if err != nil {
			err.(lft.Error).Decorate(fmt.Sprintf("batch.Run: job %d", i))
			return nil, err
		}
		for _, r := range []struct {
			name string
			r    Range
		}{{"dq", j.Dq}, {"b", j.B}, {"c", j.C}} {
			if err := r.r.validate(r.name, i); err != nil {
				return nil, err
			}
		}
		for _, dq := range j.Dq.Values() {
			grid, err := lft.SinglePoint(dq)
			if err != nil {
				err.(lft.Error).Decorate(fmt.Sprintf("batch.Run: job %d", i))
				return nil, err
			}
			for _, b := range j.B.Values() {
				for _, c := range j.C.Values() {
					var par *lft.Racah
					if j.Slater {
						par, err = lft.FromSlaterCondon(b, c)
					} else {
						par, err = lft.NewRacah(b, c)
					}
					if err != nil {
						err.(lft.Error).Decorate(fmt.Sprintf("batch.Run: job %d", i))
						return nil, err
					}
					tasks = append(tasks, task{d: j.D, conf: conf, grid: grid, par: par})
				}
			}
		}
	}
	return tasks, nil
}
