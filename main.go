package main

import (
	"fmt"
	"os"

	"github.com/is386/GoInvaders/i8080"
	"github.com/is386/GoInvaders/i8080Invaders"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goinvaders",
		Short: "Intel 8080 Space Invaders emulator",
	}

	var romDir string
	rootCmd.PersistentFlags().StringVar(&romDir, "rom", "roms", "Directory with invaders.h/g/f/e")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Play in real time (SDL window, 60 fps)",
		RunE: func(cmd *cobra.Command, args []string) error {
			im, err := i8080Invaders.NewInvadersMachine(romDir, i8080.NopTracer)
			if err != nil {
				return err
			}
			im.Run()
			return nil
		},
	}

	var testSteps uint64
	var showTrace bool

	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Run a fixed number of instructions, optionally tracing each one",
		RunE: func(cmd *cobra.Command, args []string) error {
			trace := i8080.NopTracer
			if showTrace {
				trace = stderrTracer
			}
			im, err := i8080Invaders.NewInvadersMachine(romDir, trace)
			if err != nil {
				return err
			}
			n := im.RunBatch(testSteps)
			fmt.Printf("Instructions: %d\nCycles: %d\n", n, im.CPU().GetCycles())
			return nil
		},
	}
	testCmd.Flags().Uint64Var(&testSteps, "steps", 50000, "Instruction budget")
	testCmd.Flags().BoolVar(&showTrace, "trace", false, "Trace every instruction to stderr")

	var benchSteps uint64
	var profiled bool

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a traceless batch and report simulated vs wall time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profiled {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			im, err := i8080Invaders.NewInvadersMachine(romDir, i8080.NopTracer)
			if err != nil {
				return err
			}
			res := im.RunBench(benchSteps)
			fmt.Printf("Instructions: %d\nCycles: %d\nSimulated: %.3fs\nWall: %.3fs\n",
				res.Instructions, res.Cycles, res.Simulated, res.Wall)
			return nil
		},
	}
	benchCmd.Flags().Uint64Var(&benchSteps, "steps", 5000000, "Instruction budget")
	benchCmd.Flags().BoolVar(&profiled, "profile", false, "Write a CPU profile to the working directory")

	rootCmd.AddCommand(runCmd, testCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func stderrTracer(c *i8080.CPU, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
