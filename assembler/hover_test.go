package assembler_test

import (
	"strings"
	"testing"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/assembler"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

func TestHover(t *testing.T) {
	source := "LOOP: lw $t0, -4($sp) ! load\n" +
		"      beq $t0, $zero, LOOP\n" +
		"      .word 0x20\n" +
		"      bogus $zz"
	res := assembler.ValidateText(source, isa.DefaultSpec())

	tests := []struct {
		line, char int
		contains   string // empty means no hover
	}{
		{0, 1, "Definition of label `LOOP`"},
		{0, 6, "Instruction `lw`"},
		{0, 7, "`lw <reg>, <imm>(<reg>)`"},
		{0, 10, "Register `$t0`"},
		{0, 14, "Integer Literal `-4`"},
		{0, 18, "Stack Pointer"},
		{0, 24, ""},
		{0, 5, ""},
		{1, 11, "Register `$t0`"},
		{1, 23, "Reference to label `LOOP`\n\nDefined on line 1"},
		{2, 7, "Directive `.word`"},
		{2, 13, "Integer Literal `32` (`0x20`)"},
		{3, 7, ""},
		{3, 13, ""},
		{9, 0, ""},
	}

	for _, tc := range tests {
		text, ok := res.EvaluateHover(assembler.TextPosition{Line: tc.line, Char: tc.char})
		if tc.contains == "" {
			if ok {
				t.Errorf("(%d,%d): expected no hover, got %q", tc.line, tc.char, text)
			}
			continue
		}
		if !ok || !strings.Contains(text, tc.contains) {
			t.Errorf("(%d,%d): hover %q (ok=%v) does not contain %q", tc.line, tc.char, text, ok, tc.contains)
		}
	}
}

func TestHoverCustomSpec(t *testing.T) {
	res := assembler.ValidateText("halt", isa.ParseIsaFile("halt : 7"))
	text, ok := res.EvaluateHover(assembler.TextPosition{Line: 0, Char: 2})
	if !ok || !strings.Contains(text, "no operands") {
		t.Errorf("unexpected hover %q", text)
	}
}
