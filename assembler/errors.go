package assembler

import (
	"fmt"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

const diagnosticSource = "cs2200asm"

// Errors
type assemblyError struct{}

var Errors assemblyError

func (assemblyError) IllegalMnemonic(mnemonic string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Illegal mnemonic: " + mnemonic,
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (assemblyError) OperandCount(mnemonic string, expected, got int, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  fmt.Sprintf("Expected %d operand(s) for '%s', got %d", expected, mnemonic, got),
		Source:   diagnosticSource,
		Severity: Error,
	}
}

// OperandType reports an operand that does not have the expected shape. Position is 1-based.
func (assemblyError) OperandType(expected isa.OperandType, position int, operand string, r TextRange) Diagnostic {
	message := fmt.Sprintf("Expected %s at position %d, got '%s'", expected, position, operand)
	if expected == isa.NumberRegister {
		message = fmt.Sprintf("Expected %s format at position %d, got '%s'", expected, position, operand)
	}
	return Diagnostic{
		Range:    r,
		Message:  message,
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (assemblyError) InvalidRegister(register string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Invalid register: " + register,
		Source:   diagnosticSource,
		Severity: Error,
	}
}

func (assemblyError) UndefinedLabel(label string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Undefined label: " + label,
		Source:   diagnosticSource,
		Severity: Error,
	}
}

// Warnings
type assemblyWarning struct{}

var Warnings assemblyWarning

// ExpectedLabel is advisory: the name may be resolved by the assembler from context this
// file does not show.
func (assemblyWarning) ExpectedLabel(position int, operand string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  fmt.Sprintf("Expected %s at position %d, got '%s'", isa.Label, position, operand),
		Source:   diagnosticSource,
		Severity: Warning,
	}
}
