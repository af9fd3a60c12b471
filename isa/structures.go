package isa

import (
	"fmt"
	"slices"
)

type OperandType int

const (
	Register OperandType = iota
	Number
	Label
	NumberRegister // based addressing, e.g. 4($t0)
)

func (t OperandType) String() string {
	switch t {
	case Register:
		return "register"
	case Number:
		return "number"
	case Label:
		return "label"
	case NumberRegister:
		return "number(register)"
	}
	panic(fmt.Sprintf("isa: unknown operand type %d", int(t)))
}

// InstructionSpec maps a mnemonic (case-sensitive) to the operand types it expects, in order.
type InstructionSpec map[string][]OperandType

func (s InstructionSpec) Lookup(mnemonic string) ([]OperandType, bool) {
	operands, ok := s[mnemonic]
	return operands, ok
}

// Mnemonics returns the keys of the table in sorted order.
func (s InstructionSpec) Mnemonics() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s InstructionSpec) Clone() InstructionSpec {
	out := make(InstructionSpec, len(s))
	for name, operands := range s {
		out[name] = slices.Clone(operands)
	}
	return out
}

func (s InstructionSpec) Equal(other InstructionSpec) bool {
	if len(s) != len(other) {
		return false
	}
	for name, operands := range s {
		otherOperands, ok := other[name]
		if !ok || !slices.Equal(operands, otherOperands) {
			return false
		}
	}
	return true
}

var defaultSpec = InstructionSpec{
	"add":  {Register, Register, Register},
	"nand": {Register, Register, Register},
	"addi": {Register, Register, Number},
	"lw":   {Register, NumberRegister},
	"sw":   {Register, NumberRegister},
	"beq":  {Register, Register, Label},
	"lea":  {Register, Label},
	"jalr": {Register, Register},
	"halt": {},
}

// DefaultSpec returns a copy of the built-in instruction table.
func DefaultSpec() InstructionSpec {
	return defaultSpec.Clone()
}

var registers = map[string]bool{
	"$zero": true,
	"$at":   true,
	"$v0":   true,
	"$a0":   true,
	"$a1":   true,
	"$a2":   true,
	"$t0":   true,
	"$t1":   true,
	"$t2":   true,
	"$s0":   true,
	"$s1":   true,
	"$s2":   true,
	"$k0":   true,
	"$sp":   true,
	"$fp":   true,
	"$ra":   true,
}

var pseudoOps = map[string]bool{
	".word": true,
	".fill": true,
}

func IsRegister(name string) bool {
	return registers[name]
}

func IsPseudoOp(mnemonic string) bool {
	return pseudoOps[mnemonic]
}

// Registers lists the valid register names in sorted order.
func Registers() []string {
	names := make([]string, 0, len(registers))
	for name := range registers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func PseudoOps() []string {
	names := make([]string, 0, len(pseudoOps))
	for name := range pseudoOps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
