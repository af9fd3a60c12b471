package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.s", "LOOP: add $t0, $t1, $t2\n      beq $t0, $zero, LOOP\n")
	bad := writeFile(t, dir, "bad.s", "halt\n  lea $t0, NOWHERE\n")

	out := bytes.Buffer{}
	errorCount, err := checkFiles(&out, isa.DefaultSpec(), []string{good, bad})
	if err != nil {
		t.Fatal(err)
	}
	if errorCount != 1 {
		t.Errorf("expected 1 error, got %d", errorCount)
	}

	expected := bad + ":2:12: warning: Expected label at position 2, got 'NOWHERE'\n" +
		bad + ":2:12: error: Undefined label: NOWHERE\n"
	if out.String() != expected {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), expected)
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, err := checkFiles(&bytes.Buffer{}, isa.DefaultSpec(), []string{filepath.Join(t.TempDir(), "nope.s")})
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadSpec(t *testing.T) {
	spec, err := loadSpec("")
	if err != nil || !spec.Equal(isa.DefaultSpec()) {
		t.Errorf("expected the default table, got %v (%v)", spec, err)
	}

	path := writeFile(t, t.TempDir(), "custom.isa", "foo $D #I : 1\n")
	spec, err = loadSpec(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := spec.Lookup("foo"); !ok {
		t.Errorf("expected foo in %v", spec)
	}

	_, err = loadSpec(filepath.Join(t.TempDir(), "missing.isa"))
	if !isa.IsLoadFailure(err, isa.NotFound) {
		t.Errorf("expected a not found failure, got %v", err)
	}
}

func TestPrintCatalog(t *testing.T) {
	out := bytes.Buffer{}
	printCatalog(&out, isa.ParseIsaFile("halt : 7\nadd $D $S $T : 0"), false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if fields := strings.Fields(lines[0]); fields[0] != "add" || !strings.Contains(lines[0], "register, register, register") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "halt") || !strings.Contains(lines[1], "no operands") {
		t.Errorf("unexpected line %q", lines[1])
	}

	out.Reset()
	printCatalog(&out, isa.ParseIsaFile("halt : 7"), true)
	if !strings.Contains(out.String(), "halt") {
		t.Errorf("dump does not mention halt: %q", out.String())
	}
}

func TestCheckCommandExitStatus(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.s", "mul $t0, $t1, $t2\n")

	out := bytes.Buffer{}
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"check", bad})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected check to fail")
	}
	if !strings.Contains(out.String(), bad+":1:1: error: Illegal mnemonic: mul") {
		t.Errorf("unexpected output %q", out.String())
	}
}
