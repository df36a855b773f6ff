package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "golft",
	Short: "golft - ligand field diagrams for octahedral complexes",
	Long: `golft solves the electrostatic plus crystal field problem for octahedral
d2 to d8 transition metal complexes and produces Tanabe-Sugano diagrams,
d-d excitation diagrams and excitation energy tables from the Racah (or
Slater-Condon) parameters of the ion.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	Long: `Every scalar flag of the diagram command can also be given through the
environment or a golft.yaml file; the flag wins over the environment, which
wins over the file.`,
	Run: runEnv,
}

func init() {
	rootCmd.SetVersionTemplate("golft version {{.Version}}\n")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) {
	vars := [][2]string{
		{"GOLFT_DELECTRONS", "number of d electrons (int)"},
		{"GOLFT_DQ", "10Dq at the right edge of the diagrams, cm^-1 (float)"},
		{"GOLFT_CUT", "10Dq for the excitation table, cm^-1 (float)"},
		{"GOLFT_POINTS", "points along the field axis (int)"},
		{"GOLFT_SLATER", "read the repulsion parameters as F2 and F4, in eV (bool)"},
		{"GOLFT_MAXENERGY", "drop levels above this energy, cm^-1 (float)"},
		{"GOLFT_MAXROOTS", "roots kept per symmetry block (int)"},
		{"GOLFT_OUT", "output directory (string)"},
		{"GOLFT_COMPRESS", "compression for the tables: gz, zst or flate (string)"},
		{"GOLFT_PLOTEXT", "image format for the plots (string)"},
		{"GOLFT_LEGEND", "draw a legend on the plots (bool)"},
		{"GOLFT_NOPLOT", "skip the plots (bool)"},
		{"GOLFT_NOTABLES", "skip the CSV tables (bool)"},
	}
	for _, v := range vars {
		fmt.Printf("  %-18s %s\n", v[0], v[1])
	}
	fmt.Println("\nExample:")
	fmt.Println("  GOLFT_DELECTRONS=3 golft diagram --dq 21000")
}
