package assembler_test

import (
	"testing"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/assembler"
)

func TestReformat(t *testing.T) {
	source := "! program header   \n" +
		"add   $t0,  $t1, $t2\n" +
		"LOOP:beq $t0, $zero,   DONE   ! branch\n" +
		"\n" +
		"    DONE:\n" +
		"  halt\n" +
		"X: .fill 5"

	expected := "! program header\n" +
		"      add $t0, $t1, $t2\n" +
		"LOOP: beq $t0, $zero, DONE ! branch\n" +
		"\n" +
		"DONE:\n" +
		"      halt\n" +
		"X:    .fill 5"

	got := assembler.Reformat(source)
	if got != expected {
		t.Fatalf("Reformat mismatch.\ngot:\n%s\nwant:\n%s", got, expected)
	}

	if again := assembler.Reformat(got); again != got {
		t.Errorf("Reformat is not idempotent.\nfirst:\n%s\nsecond:\n%s", got, again)
	}
}

func TestReformatKeepsLineEndings(t *testing.T) {
	got := assembler.Reformat("add $t0,$t1,$t2\r\nhalt\r\n")
	expected := "  add $t0,$t1,$t2\r\n  halt\r\n"
	if got != expected {
		t.Errorf("got %q; want %q", got, expected)
	}
}
