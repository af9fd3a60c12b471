package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

func operandPlaceholder(t isa.OperandType) string {
	switch t {
	case isa.Register:
		return "<reg>"
	case isa.Number:
		return "<imm>"
	case isa.Label:
		return "<label>"
	case isa.NumberRegister:
		return "<imm>(<reg>)"
	}
	panic(fmt.Sprintf("assembler: unhandled operand type %d", int(t)))
}

func instructionFormat(mnemonic string, operands []isa.OperandType) string {
	if len(operands) == 0 {
		return mnemonic
	}
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = operandPlaceholder(o)
	}
	return mnemonic + " " + strings.Join(parts, ", ")
}

func getHoverInfoForInstruction(spec isa.InstructionSpec, mnemonic string) (string, bool) {
	if operands, ok := spec.Lookup(mnemonic); ok {
		return fmt.Sprintf(hoverInfoFormats.instruction, mnemonic, instructionFormat(mnemonic, operands), isa.Detail(operands)), true
	}
	if isa.IsPseudoOp(mnemonic) {
		return fmt.Sprintf(hoverInfoFormats.directive, mnemonic), true
	}
	return "", false
}

func getHoverInfoForRegister(name string) (string, bool) {
	if !isa.IsRegister(name) {
		return "", false
	}
	if desc, ok := registerDescriptions[name]; ok {
		return fmt.Sprintf(hoverInfoFormats.describeRegister, name, desc), true
	}
	return fmt.Sprintf(hoverInfoFormats.register, name), true
}

func getHoverInfoForNumber(literal string) (string, bool) {
	value, err := strconv.ParseInt(literal, 0, 64)
	if err != nil {
		value, err = strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return "", false
		}
	}
	if value < 0 {
		return fmt.Sprintf(hoverInfoFormats.integerLiteral, value, "0x"+strconv.FormatUint(uint64(value)&0xFFFFFFFF, 16)), true
	}
	return fmt.Sprintf(hoverInfoFormats.integerLiteral, value, "0x"+strconv.FormatInt(value, 16)), true
}

// operandPiece narrows an operand like `4($t0)` to the part under char.
func operandPiece(t token, char int) string {
	rel := char - t.Offset
	start := strings.LastIndexAny(t.Text[:rel], "()") + 1
	end := strings.IndexAny(t.Text[rel:], "()")
	if end == -1 {
		return t.Text[start:]
	}
	return t.Text[start : rel+end]
}

// EvaluateHover returns markdown describing whatever is under position, and whether there was
// anything to describe.
func (r *ValidationResult) EvaluateHover(position TextPosition) (string, bool) {
	if position.Line < 0 || position.Line >= len(r.lines) {
		return "", false
	}
	line := r.lines[position.Line]

	if line.Label != "" && position.Char >= line.LabelOffset && position.Char < line.LabelOffset+len(line.Label) {
		return fmt.Sprintf(hoverInfoFormats.labelDefinition, line.Label, line.Number+1), true
	}

	for i, t := range line.Tokens {
		if position.Char < t.Offset || position.Char >= t.end() {
			continue
		}
		if i == 0 {
			return getHoverInfoForInstruction(r.spec, t.Text)
		}

		piece := operandPiece(t, position.Char)
		if piece == "" {
			return "", false
		}
		if strings.HasPrefix(piece, "$") {
			return getHoverInfoForRegister(piece)
		}
		if defLine, ok := r.Labels[piece]; ok {
			return fmt.Sprintf(hoverInfoFormats.labelReference, piece, defLine+1), true
		}
		return getHoverInfoForNumber(piece)
	}

	return "", false
}
