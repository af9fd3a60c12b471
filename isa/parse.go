package isa

import (
	"os"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Operand markers of the .isa format, tried in order: based addressing first so it is not
// split into an immediate and a register.
var operandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Based", Pattern: `#I\s*\(\s*\$[A-Za-z0-9]+\s*\)`},
	{Name: "Register", Pattern: `\$[A-Za-z0-9]+`},
	{Name: "Immediate", Pattern: `#I`},
	{Name: "Offset", Pattern: `%O`},
	{Name: "Other", Pattern: `[^$#%]+|[$#%]`},
})

var operandTokenTypes = func() map[lexer.TokenType]OperandType {
	symbols := operandLexer.Symbols()
	return map[lexer.TokenType]OperandType{
		symbols["Based"]:     NumberRegister,
		symbols["Register"]:  Register,
		symbols["Immediate"]: Number,
		symbols["Offset"]:    Label,
	}
}()

var escapeReplacer = strings.NewReplacer(`\s*`, "", `\(`, "(", `\)`, ")")

func normalizeOperandSpec(operandSpec string) string {
	s := escapeReplacer.Replace(strings.TrimSpace(operandSpec))
	return strings.ReplaceAll(s, `\`, "")
}

// parseOperands turns the operand portion of a declaration into its operand types.
func parseOperands(operandSpec string) []OperandType {
	operands := []OperandType{}
	s := normalizeOperandSpec(operandSpec)
	if s == "" {
		return operands
	}

	lex, err := operandLexer.LexString("", s)
	if err != nil {
		return operands
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		// the Other rule matches any character, so this only happens on a lexer bug
		return operands
	}

	for _, tok := range tokens {
		if t, ok := operandTokenTypes[tok.Type]; ok {
			operands = append(operands, t)
		}
	}
	return operands
}

// ParseIsaFile builds an instruction table from the contents of an .isa description.
//
// Each significant line has the form `MNEMONIC <operands> : <ignored>`. Blank lines, lines
// starting with '#' and lines without a mnemonic are skipped.
func ParseIsaFile(text string) InstructionSpec {
	spec := InstructionSpec{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		instrPart, _, _ := strings.Cut(line, ":")
		fields := strings.Fields(instrPart)
		if len(fields) == 0 {
			continue
		}

		mnemonic := fields[0]
		operandSpec := strings.TrimSpace(instrPart)[len(mnemonic):]
		spec[mnemonic] = parseOperands(operandSpec)
	}
	return spec
}

// LoadIsaFile reads and parses the .isa file at path. It never falls back to the default
// table; callers decide what to do with a *SpecLoadError.
func LoadIsaFile(path string) (InstructionSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, newReadError(path, err)
	}

	spec := ParseIsaFile(string(b))
	if len(spec) == 0 {
		return nil, &SpecLoadError{Path: path, Reason: Empty}
	}
	return spec, nil
}
