package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"synthvm/vm"
)

var debugTrace bool

func main() {
	root := &cobra.Command{
		Use:           "synthvm",
		Short:         "Interpreter for a register-based array machine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debugTrace, "debug", false, "print an execution trace to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "run <image>",
		Short: "Run a program image read from disk, to halt or trap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0])
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a failure to the process exit code: 1 for a trap
// the machine itself raised, 2 for anything that kept it from running
// at all (bad args, missing file, malformed image).
func exitCodeFor(err error) int {
	var trap *vm.TrapError
	if errors.As(err, &trap) {
		return 1
	}
	return 2
}

// runImage loads the image at path and runs it to halt or trap.
func runImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	program, err := vm.DecodeImage(f)
	if err != nil {
		return err
	}

	m := vm.NewMachine(program, os.Stdin, os.Stdout)
	if debugTrace {
		m.Trace = traceToStderr
	}
	return m.Run()
}

func traceToStderr(pc uint32, instr vm.Instr, regs [8]uint32) {
	fmt.Fprintf(os.Stderr, "pc=%06d %-12s regs=%v\n", pc, instr.Op, regs)
}
