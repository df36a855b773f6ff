package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rmera/golft/batch"
	"github.com/rmera/golft/export"
)

var (
	batchOut    string
	batchCpus   int
	batchD      int
	batchDq     []float64
	batchB      []float64
	batchC      []float64
	batchSlater bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [jobs.yaml]",
	Short: "Sweep parameter ranges and write one long table",
	Long: `batch solves every combination of the 10Dq, B and C ranges and writes a
single long-format CSV table, one row per level per combination, meant for
dataframe tooling. The ranges come from a YAML jobs file, or from the range
flags when no file is given. A range is start,stop,steps.

Examples:
  golft batch jobs.yaml -o scan.csv.zst
  golft batch -d 2 --dqrange 0,30000,31 --brange 700,1100,5 --crange 3500,4500,5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchOut, "out", "o", "batch.csv", "output file; a .gz, .zst or .flate suffix compresses it")
	f.IntVar(&batchCpus, "cpus", 0, "workers to use; 0 means all the CPUs")
	f.IntVarP(&batchD, "delectrons", "d", 5, "number of d electrons, 2 to 8")
	f.Float64SliceVar(&batchDq, "dqrange", nil, "10Dq range as start,stop,steps, in cm^-1")
	f.Float64SliceVar(&batchB, "brange", nil, "Racah B range as start,stop,steps, in cm^-1")
	f.Float64SliceVar(&batchC, "crange", nil, "Racah C range as start,stop,steps, in cm^-1")
	f.BoolVar(&batchSlater, "slater", false, "read the B and C ranges as F2 and F4, in eV")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var jobs []batch.Job
	var err error
	if len(args) == 1 {
		jobs, err = batch.LoadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		job := batch.DefaultJob()
		job.D = batchD
		job.Slater = batchSlater
		if err := flagRange(&job.Dq, batchDq); err != nil {
			return err
		}
		if err := flagRange(&job.B, batchB); err != nil {
			return err
		}
		if err := flagRange(&job.C, batchC); err != nil {
			return err
		}
		jobs = []batch.Job{job}
	}
	o := batch.DefaultOptions()
	if batchCpus > 0 {
		o.Cpus(batchCpus)
	}
	res, err := batch.Run(jobs, o)
	if err != nil {
		return err
	}
	if skipped := res.Skipped(); len(skipped) > 0 {
		log.Printf("%d parameter combinations were numerically unstable and dropped", len(skipped))
	}
	if err := export.WriteBatchFile(res, batchOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d parameter combinations\n", batchOut, res.Len())
	return nil
}

//flagRange overwrites dst when a start,stop,steps triple was given.
func flagRange(dst *batch.Range, flag []float64) error {
	if flag == nil {
		return nil
	}
	if len(flag) != 3 {
		return fmt.Errorf("a range takes exactly start,stop,steps, got %v", flag)
	}
	*dst = batch.Range{Start: flag[0], Stop: flag[1], Steps: int(flag[2])}
	return nil
}
