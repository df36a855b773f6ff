/*Package export writes diagrams, level tables and batch results in the formats
the spectroscopy scripts expect: wide CSV frames with one column per level, and
sorted term tables in cm^-1 and eV. File names ending in .gz, .zst or .flate
get compressed on the fly.*/
package export

import (
	"compress/flate"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	lft "github.com/rmera/golft"
	"github.com/rmera/golft/batch"
	"github.com/rmera/golft/diagram"
	"github.com/rmera/golft/sweep"
)

//Error is the error type for exports. It implements lft.Error.
type Error struct {
	message  string
	filename string //the output file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("goLFT export to %s failed: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the decoration slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//DefaultName returns the conventional file name for a diagram, which encodes
//the mode, the ion and the parameters: "TS-diagram_d6_10Dq_25065_B_860_C_3850.csv"
//or the same with the "DD-energies" prefix for the dimensioned mode.
func DefaultName(D *diagram.Dataset) string {
	par := D.Parameters()
	prefix := "TS-diagram"
	if D.Mode() == diagram.EnergyLevels {
		prefix = "DD-energies"
	}
	return fmt.Sprintf("%s_d%d_10Dq_%d_B_%d_C_%d.csv", prefix, D.ElectronCount(),
		int(math.Round(D.MaxDelta())), int(par.B()), int(par.C()))
}

//CutName returns the conventional file name for the level table of one ion at
//one field strength.
func CutName(n int, delta float64, par *lft.Racah) string {
	return fmt.Sprintf("TS_Cut_d%d_10Dq_%d_B_%d_C_%d.csv", n, int(math.Round(delta)),
		int(par.B()), int(par.C()))
}

//Frame writes the data set as a wide CSV frame: the first column is the
//abscissa, named "delta_B" or "10Dq" depending on the mode, then one column per
//level. With an energy cutoff in place a level can be missing at some field
//strengths; those cells are left empty.
func Frame(D *diagram.Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	series := D.Series()
	header := make([]string, 1, len(series)+1)
	if D.Mode() == diagram.TanabeSugano {
		header[0] = "delta_B"
	} else {
		header[0] = "10Dq"
	}
	for _, s := range series {
		header = append(header, s.Name())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	xcol := make([][]float64, len(series))
	ycol := make([][]float64, len(series))
	for i, s := range series {
		xcol[i] = s.X()
		ycol[i] = s.Y()
	}
	at := make([]int, len(series))
	for _, x := range D.Xs() {
		record := make([]string, 1, len(series)+1)
		record[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for i := range series {
			if at[i] < len(xcol[i]) && xcol[i][at[i]] == x {
				record = append(record, strconv.FormatFloat(ycol[i][at[i]], 'g', -1, 64))
				at[i]++
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteFile writes the frame of the data set to the named file, creating or
//truncating it. An empty name takes the DefaultName in the current directory.
//It returns the name actually written.
func WriteFile(D *diagram.Dataset, name string) (string, error) {
	if name == "" {
		name = DefaultName(D)
	}
	f, err := os.Create(name)
	if err != nil {
		return name, Error{err.Error(), name, []string{"WriteFile"}}
	}
	defer f.Close()
	w, err := compressed(f, name)
	if err != nil {
		return name, Error{err.Error(), name, []string{"WriteFile"}}
	}
	if err := Frame(D, w); err != nil {
		return name, Error{err.Error(), name, []string{"WriteFile"}}
	}
	if err := w.Close(); err != nil {
		return name, Error{err.Error(), name, []string{"WriteFile"}}
	}
	return name, nil
}

//Level is one row of a level table: a labeled state and its energy above the
//ground state, in cm^-1 and eV.
type Level struct {
	State string
	Cm    int
	EV    float64
}

//Levels collects the levels of a single-point sweep, ascending in energy. The
//eV column uses the flat 0.00012 per cm^-1 conversion the printed tables have
//always used, rounded to 4 decimals; cm^-1 values are rounded to integers.
func Levels(rows []sweep.Row) ([]Level, error) {
	if len(rows) == 0 {
		return nil, Error{"no rows to tabulate", "", []string{"Levels"}}
	}
	delta := rows[0].Delta
	levels := make([]Level, 0, len(rows))
	for _, r := range rows {
		if r.Delta != delta {
			return nil, Error{fmt.Sprintf("level tables are per field strength, got rows at both 10Dq=%4.1f and %4.1f", delta, r.Delta), "", []string{"Levels"}}
		}
		levels = append(levels, Level{
			State: fmt.Sprintf("%s_%d", r.Term.String(), r.Root),
			Cm:    int(math.Round(r.Energy)),
			EV:    math.Round(r.Energy*0.00012*10000) / 10000,
		})
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].EV < levels[j].EV })
	return levels, nil
}

//WriteLevels writes the level table as CSV with a "state,cm,eV" header, the
//format of the TS_Cut files.
func WriteLevels(levels []Level, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"state", "cm", "eV"}); err != nil {
		return err
	}
	for _, l := range levels {
		err := cw.Write([]string{l.State, strconv.Itoa(l.Cm), strconv.FormatFloat(l.EV, 'f', 4, 64)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteLevelsFile writes the level table to the named file.
func WriteLevelsFile(levels []Level, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteLevelsFile"}}
	}
	defer f.Close()
	w, err := compressed(f, name)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteLevelsFile"}}
	}
	if err := WriteLevels(levels, w); err != nil {
		return Error{err.Error(), name, []string{"WriteLevelsFile"}}
	}
	if err := w.Close(); err != nil {
		return Error{err.Error(), name, []string{"WriteLevelsFile"}}
	}
	return nil
}

//FormatLevels renders a level table for the terminal.
func FormatLevels(levels []Level) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "State\tcm-1\teV")
	for _, l := range levels {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", l.State, l.Cm, l.EV)
	}
	tw.Flush()
	return b.String()
}

//BatchFrame writes a batch result in long format, one row per level per
//parameter combination, ready for dataframe tooling.
func BatchFrame(R *batch.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"d", "10Dq", "B", "C", "state", "energy"}); err != nil {
		return err
	}
	for _, e := range R.Entries() {
		for _, row := range e.Rows {
			record := []string{
				strconv.Itoa(e.D),
				strconv.FormatFloat(e.Delta, 'g', -1, 64),
				strconv.FormatFloat(e.Par.B(), 'g', -1, 64),
				strconv.FormatFloat(e.Par.C(), 'g', -1, 64),
				fmt.Sprintf("%s_%d", row.Term.String(), row.Root),
				strconv.FormatFloat(row.Energy, 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteBatchFile writes a batch result to the named file in long format.
func WriteBatchFile(R *batch.Result, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteBatchFile"}}
	}
	defer f.Close()
	w, err := compressed(f, name)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteBatchFile"}}
	}
	if err := BatchFrame(R, w); err != nil {
		return Error{err.Error(), name, []string{"WriteBatchFile"}}
	}
	if err := w.Close(); err != nil {
		return Error{err.Error(), name, []string{"WriteBatchFile"}}
	}
	return nil
}

//compressed wraps a according to the file extension, following the trajectory
//format conventions: gzip for .gz, zstd for .zst, DEFLATE for .flate, and a
//plain passthrough for anything else.
func compressed(a io.Writer, name string) (io.WriteCloser, error) {
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, 9) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, 9) }
	plainwriter := func(a io.Writer) (io.WriteCloser, error) { return nopCloser{a}, nil }
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch filepath.Ext(name) {
	case ".gz":
		anyNewWriter = gzipwriter
	case ".zst":
		anyNewWriter = zstdwriter
	case ".flate":
		anyNewWriter = flatewriter
	default:
		anyNewWriter = plainwriter
	}
	return anyNewWriter(a)
}

type nopCloser struct{ io.Writer }

func (n nopCloser) Close() error { return nil }
