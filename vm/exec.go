package vm

import "io"

// execute applies the side effects of one decoded instruction. It
// returns a bare sentinel error on trap; Step wraps it with the
// opcode and pointer. The switch is over a small contiguous opcode
// space so the compiler lowers it to a jump table.
func (m *Machine) execute(instr Instr) error {
	switch instr.Op {
	case OpCMOV:
		if m.Registers[instr.C] != 0 {
			m.Registers[instr.A] = m.Registers[instr.B]
		}

	case OpLoad:
		v, err := m.Universe.Read(m.Registers[instr.B], m.Registers[instr.C])
		if err != nil {
			return err
		}
		m.Registers[instr.A] = v

	case OpStore:
		return m.Universe.Write(m.Registers[instr.A], m.Registers[instr.B], m.Registers[instr.C])

	case OpAdd:
		m.Registers[instr.A] = m.Registers[instr.B] + m.Registers[instr.C]

	case OpMul:
		m.Registers[instr.A] = m.Registers[instr.B] * m.Registers[instr.C]

	case OpDiv:
		if m.Registers[instr.C] == 0 {
			return ErrDivisionByZero
		}
		m.Registers[instr.A] = m.Registers[instr.B] / m.Registers[instr.C]

	case OpNand:
		m.Registers[instr.A] = ^(m.Registers[instr.B] & m.Registers[instr.C])

	case OpHalt:
		m.Halted = true

	case OpAlloc:
		id, err := m.Universe.Alloc(m.Registers[instr.C])
		if err != nil {
			return err
		}
		m.Registers[instr.B] = id

	case OpFree:
		return m.Universe.Free(m.Registers[instr.C])

	case OpOut:
		return m.out(m.Registers[instr.C])

	case OpIn:
		return m.in(instr.C)

	case OpLoadProgram:
		if m.Registers[instr.B] != 0 {
			if err := m.Universe.LoadProgram(m.Registers[instr.B]); err != nil {
				return err
			}
		}
		m.PC = m.Registers[instr.C]

	case OpLoadImm:
		m.Registers[instr.A] = instr.Imm

	default:
		return ErrMalformedInstruction
	}
	return nil
}

// out writes one byte to the console. The value is range-checked
// before anything is written, so a failing OUT never partially
// flushes.
func (m *Machine) out(v uint32) error {
	if v > 255 {
		return ErrCharOutOfRange
	}
	if err := m.stdout.WriteByte(byte(v)); err != nil {
		return ErrConsoleIO
	}
	if err := m.stdout.Flush(); err != nil {
		return ErrConsoleIO
	}
	return nil
}

// in reads one byte from the console into register reg, delivering
// 0xFFFFFFFF on EOF.
func (m *Machine) in(reg uint8) error {
	b, err := m.stdin.ReadByte()
	if err != nil {
		if err == io.EOF {
			m.Registers[reg] = 0xFFFFFFFF
			return nil
		}
		return ErrConsoleIO
	}
	m.Registers[reg] = uint32(b)
	return nil
}
