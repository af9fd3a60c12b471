package assembler

import (
	"fmt"
	"strings"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

// ValidationResult is everything one pass over a document produced.
type ValidationResult struct {
	Diagnostics []Diagnostic
	Labels      map[string]int // label name to defining line
	spec        isa.InstructionSpec
	lines       []sourceLine
}

type validator struct {
	spec   isa.InstructionSpec
	labels map[string]int
	res    *ValidationResult
}

func (v *validator) report(d Diagnostic) {
	v.res.Diagnostics = append(v.res.Diagnostics, d)
}

func (v *validator) isLegalMnemonic(mnemonic string) bool {
	if _, ok := v.spec.Lookup(mnemonic); ok {
		return true
	}
	return isa.IsPseudoOp(mnemonic)
}

func (v *validator) checkOperand(line int, expected isa.OperandType, position int, op token) {
	r := lineRange(line, op.Offset, op.end())
	switch expected {
	case isa.Register:
		if !isa.IsRegister(stripParens(op.Text)) {
			v.report(Errors.OperandType(expected, position, op.Text, r))
		}
	case isa.Number:
		if !isNumber(op.Text) {
			v.report(Errors.OperandType(expected, position, op.Text, r))
		}
	case isa.Label:
		if _, ok := v.labels[op.Text]; !ok {
			v.report(Warnings.ExpectedLabel(position, op.Text, r))
		}
	case isa.NumberRegister:
		m := numberRegisterPattern.FindStringSubmatch(op.Text)
		if m == nil || !isa.IsRegister(m[1]) {
			v.report(Errors.OperandType(expected, position, op.Text, r))
		}
	default:
		panic(fmt.Sprintf("assembler: unhandled operand type %d", int(expected)))
	}
}

// checkRegisters flags every register-shaped name that is not a real register, including
// names embedded in a based-addressing operand.
func (v *validator) checkRegisters(line int, tokens []token) {
	for _, t := range tokens {
		if strings.HasPrefix(t.Text, "$") {
			if !isa.IsRegister(t.Text) {
				v.report(Errors.InvalidRegister(t.Text, lineRange(line, t.Offset, t.end())))
			}
			continue
		}
		for _, m := range registerPattern.FindAllStringIndex(t.Text, -1) {
			name := t.Text[m[0]:m[1]]
			if !isa.IsRegister(name) {
				v.report(Errors.InvalidRegister(name, lineRange(line, t.Offset+m[0], t.Offset+m[1])))
			}
		}
	}
}

func (v *validator) checkBranchTarget(line int, mnemonic string, operands []token) {
	if !labelConsumingPattern.MatchString(mnemonic) || len(operands) == 0 {
		return
	}

	last := operands[len(operands)-1]
	target := strings.TrimRight(last.Text, ",")
	if target == "" || strings.HasPrefix(target, "$") || isNumber(target) {
		return
	}
	if _, ok := v.labels[target]; ok {
		return
	}
	v.report(Errors.UndefinedLabel(target, lineRange(line, last.Offset, last.Offset+len(target))))
}

func (v *validator) checkLine(line sourceLine) {
	mnemonic, ok := line.mnemonic()
	if !ok {
		return
	}

	mnemonicRange := lineRange(line.Number, mnemonic.Offset, mnemonic.end())
	if !v.isLegalMnemonic(mnemonic.Text) {
		v.report(Errors.IllegalMnemonic(mnemonic.Text, mnemonicRange))
		return
	}

	operands := line.operands()
	if expected, ok := v.spec.Lookup(mnemonic.Text); ok {
		if len(operands) != len(expected) {
			v.report(Errors.OperandCount(mnemonic.Text, len(expected), len(operands), mnemonicRange))
		} else {
			for i, op := range operands {
				v.checkOperand(line.Number, expected[i], i+1, op)
			}
		}
	}

	v.checkRegisters(line.Number, line.Tokens)
	v.checkBranchTarget(line.Number, mnemonic.Text, operands)
}

// Validate checks every line of a document against spec. Labels may be used before they are
// defined. The result always holds a non-nil diagnostic slice.
func Validate(lines []string, spec isa.InstructionSpec) *ValidationResult {
	res := &ValidationResult{
		Diagnostics: make([]Diagnostic, 0),
		Labels:      CollectLabels(lines),
		spec:        spec,
	}
	v := validator{spec: spec, labels: res.Labels, res: res}

	for i, raw := range lines {
		line := splitLine(i, raw)
		res.lines = append(res.lines, line)
		v.checkLine(line)
	}
	return res
}

// SplitLines breaks document text into lines, dropping the '\r' of CRLF endings.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func ValidateText(text string, spec isa.InstructionSpec) *ValidationResult {
	return Validate(SplitLines(text), spec)
}
