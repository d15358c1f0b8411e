package vm

import (
	"bufio"
	"io"
)

// numRegisters is fixed by the ISA: eight general-purpose words.
const numRegisters = 8

// TraceFunc is invoked, if set, immediately before an instruction
// executes. It exists purely for --debug tracing; nothing in the core
// depends on it.
type TraceFunc func(pc uint32, instr Instr, regs [numRegisters]uint32)

// Machine is the executor: the register file, the execution pointer,
// and the memory universe it drives. It is the only mutator of its
// own state and owns the console streams.
type Machine struct {
	Registers [numRegisters]uint32
	PC        uint32
	Halted    bool
	Universe  *Universe
	Trace     TraceFunc

	stdin  *bufio.Reader
	stdout *bufio.Writer
}

// NewMachine constructs a machine whose array 0 is a copy of program,
// consoled through in and out.
func NewMachine(program []uint32, in io.Reader, out io.Writer) *Machine {
	return &Machine{
		Universe: NewUniverse(program),
		stdin:    bufio.NewReader(in),
		stdout:   bufio.NewWriter(out),
	}
}

// Step fetches, decodes, and executes exactly one instruction. It
// returns nil on success (including a HALT, which only flips
// m.Halted), or a *TrapError identifying the failure.
func (m *Machine) Step() error {
	pc := m.PC

	word, err := m.Universe.FetchInstruction(pc)
	if err != nil {
		return &TrapError{Cause: err, Stage: "fetch", PC: pc}
	}
	m.PC = pc + 1

	instr, err := Decode(word)
	if err != nil {
		return &TrapError{Cause: err, Stage: "decode", PC: pc}
	}

	if m.Trace != nil {
		m.Trace(pc, instr, m.Registers)
	}

	if err := m.execute(instr); err != nil {
		return &TrapError{Cause: err, Stage: instr.Op.String(), PC: pc}
	}
	return nil
}
