package vm

import (
	"errors"
	"fmt"
)

// Sentinel causes. Every trap the executor or memory universe can raise
// wraps exactly one of these, so callers can test with errors.Is while
// the reported TrapError still carries the opcode and pointer. A runtime
// panic recovered by Run is the exception: its cause is the formatted
// panic value, not a sentinel.
var (
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrInactiveArray        = errors.New("array identifier is not active")
	ErrFreeProgramArray     = errors.New("cannot free the program array")
	ErrDoubleFree           = errors.New("array identifier already freed")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrCharOutOfRange       = errors.New("character value exceeds byte range")
	ErrPointerOverrun       = errors.New("execution pointer exceeds program length")
	ErrOffsetOutOfBounds    = errors.New("array offset out of bounds")
	ErrIDSpaceExhausted     = errors.New("array identifier space exhausted")
	ErrAllocFailed          = errors.New("allocation failed")
	ErrConsoleIO            = errors.New("console i/o error")
)

// TrapError is a fatal, irrecoverable execution failure. Stage names
// either the decoder ("fetch", "decode"), the mnemonic of the opcode
// that raised it, or "panic" for a runtime panic recovered by Run, per
// the ISA's requirement that every trap identify its source.
type TrapError struct {
	Cause error
	Stage string
	PC    uint32
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("trap at pc=%d (%s): %v", e.PC, e.Stage, e.Cause)
}

func (e *TrapError) Unwrap() error {
	return e.Cause
}
