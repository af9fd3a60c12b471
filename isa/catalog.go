package isa

import (
	"fmt"
	"strings"
)

// CatalogEntry describes one mnemonic for completion lists.
type CatalogEntry struct {
	Mnemonic string
	Detail   string // e.g. "register, register, number"
	Snippet  string // LSP snippet syntax
}

func Detail(operands []OperandType) string {
	if len(operands) == 0 {
		return "no operands"
	}
	names := make([]string, len(operands))
	for i, o := range operands {
		names[i] = o.String()
	}
	return strings.Join(names, ", ")
}

func placeholder(t OperandType) string {
	switch t {
	case Register:
		return `\$t0`
	case Number:
		return "0"
	case Label:
		return "label"
	case NumberRegister:
		return `0(\$t0)`
	}
	panic(fmt.Sprintf("isa: unknown operand type %d", int(t)))
}

func Snippet(mnemonic string, operands []OperandType) string {
	if len(operands) == 0 {
		return mnemonic
	}
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = fmt.Sprintf("${%d:%s}", i+1, placeholder(o))
	}
	return mnemonic + " " + strings.Join(parts, ", ")
}

// Catalog lists every mnemonic of spec, sorted, with its operand shape.
func Catalog(spec InstructionSpec) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(spec))
	for _, mnemonic := range spec.Mnemonics() {
		operands := spec[mnemonic]
		entries = append(entries, CatalogEntry{
			Mnemonic: mnemonic,
			Detail:   Detail(operands),
			Snippet:  Snippet(mnemonic, operands),
		})
	}
	return entries
}
