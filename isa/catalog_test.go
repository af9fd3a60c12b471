package isa_test

import (
	"path/filepath"
	"testing"

	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

func TestCatalogDefaultSpec(t *testing.T) {
	entries := isa.Catalog(isa.DefaultSpec())
	want := map[string]struct {
		detail  string
		snippet string
	}{
		"add":  {"register, register, register", `add ${1:\$t0}, ${2:\$t0}, ${3:\$t0}`},
		"addi": {"register, register, number", `addi ${1:\$t0}, ${2:\$t0}, ${3:0}`},
		"lw":   {"register, number(register)", `lw ${1:\$t0}, ${2:0(\$t0)}`},
		"lea":  {"register, label", `lea ${1:\$t0}, ${2:label}`},
		"halt": {"no operands", "halt"},
	}

	if len(entries) != 9 {
		t.Fatalf("expected 9 catalog entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Mnemonic >= entries[i].Mnemonic {
			t.Errorf("catalog not sorted: %q before %q", entries[i-1].Mnemonic, entries[i].Mnemonic)
		}
	}
	for _, e := range entries {
		w, ok := want[e.Mnemonic]
		if !ok {
			continue
		}
		if e.Detail != w.detail {
			t.Errorf("%s detail = %q; want %q", e.Mnemonic, e.Detail, w.detail)
		}
		if e.Snippet != w.snippet {
			t.Errorf("%s snippet = %q; want %q", e.Mnemonic, e.Snippet, w.snippet)
		}
	}
}

func TestOperandTypeString(t *testing.T) {
	tests := map[isa.OperandType]string{
		isa.Register:       "register",
		isa.Number:         "number",
		isa.Label:          "label",
		isa.NumberRegister: "number(register)",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("%d.String() = %q; want %q", int(o), got, want)
		}
	}
}

func TestDefaultSpecIsACopy(t *testing.T) {
	spec := isa.DefaultSpec()
	delete(spec, "add")
	if _, ok := isa.DefaultSpec().Lookup("add"); !ok {
		t.Error("modifying a DefaultSpec result changed the built-in table")
	}
}

func TestRegisterAndPseudoOpSets(t *testing.T) {
	if n := len(isa.Registers()); n != 16 {
		t.Errorf("expected 16 registers, got %d", n)
	}
	for _, r := range []string{"$zero", "$t0", "$ra", "$k0"} {
		if !isa.IsRegister(r) {
			t.Errorf("IsRegister(%q) = false", r)
		}
	}
	for _, r := range []string{"$zz", "$t3", "t0", "$T0"} {
		if isa.IsRegister(r) {
			t.Errorf("IsRegister(%q) = true", r)
		}
	}
	if !isa.IsPseudoOp(".word") || !isa.IsPseudoOp(".fill") || isa.IsPseudoOp(".text") {
		t.Error("unexpected pseudo-op membership")
	}
}

func TestActiveSpecLoadAndFallback(t *testing.T) {
	active := isa.NewActiveSpec()
	if !active.IsDefault() {
		t.Fatal("new ActiveSpec should start on the default table")
	}

	path := writeIsaFile(t, "foo $D #I : 1\n")
	if err := active.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if active.Source() != path {
		t.Errorf("Source = %q; want %q", active.Source(), path)
	}
	if _, ok := active.Current().Lookup("add"); ok {
		t.Error("custom table should fully replace the default")
	}

	before := active.Current()
	err := active.Load(filepath.Join(t.TempDir(), "nope.isa"))
	if !isa.IsLoadFailure(err, isa.NotFound) {
		t.Fatalf("Load of missing file: got %v", err)
	}
	if !active.IsDefault() {
		t.Error("failed load should fall back to the default table")
	}
	if _, ok := before.Lookup("foo"); !ok {
		t.Error("a published table must not be mutated by a later load")
	}
}

func TestResolveIsaPath(t *testing.T) {
	root := filepath.FromSlash("/work/project")
	abs := filepath.FromSlash("/etc/cs2200.isa")
	tests := []struct {
		setting string
		want    string
	}{
		{"", ""},
		{"cs2200.isa", filepath.Join(root, "cs2200.isa")},
		{"specs/p2.isa", filepath.Join(root, "specs", "p2.isa")},
		{abs, abs},
	}
	for _, tc := range tests {
		if got := isa.ResolveIsaPath(root, tc.setting); got != tc.want {
			t.Errorf("ResolveIsaPath(%q) = %q; want %q", tc.setting, got, tc.want)
		}
	}
}
