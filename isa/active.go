package isa

import (
	"path/filepath"
	"sync/atomic"
)

type activeTable struct {
	spec   InstructionSpec
	source string
}

// ActiveSpec holds the one instruction table that is authoritative for a session. A reload
// swaps in a whole new table; a table is never modified once published.
type ActiveSpec struct {
	table atomic.Pointer[activeTable]
}

func NewActiveSpec() *ActiveSpec {
	a := &ActiveSpec{}
	a.Reset()
	return a
}

func (a *ActiveSpec) Current() InstructionSpec {
	return a.table.Load().spec
}

// Source is the path of the loaded .isa file, or "" when the default table is active.
func (a *ActiveSpec) Source() string {
	return a.table.Load().source
}

func (a *ActiveSpec) IsDefault() bool {
	return a.Source() == ""
}

func (a *ActiveSpec) Reset() {
	a.table.Store(&activeTable{spec: DefaultSpec()})
}

// Load replaces the active table with the one described by the file at path. On failure the
// default table becomes active and the error is returned for the caller to report.
func (a *ActiveSpec) Load(path string) error {
	spec, err := LoadIsaFile(path)
	if err != nil {
		a.Reset()
		return err
	}
	a.table.Store(&activeTable{spec: spec, source: path})
	return nil
}

// ResolveIsaPath turns the isaFilePath setting into a file path. Relative settings are taken
// from the workspace root; an empty setting means no custom file.
func ResolveIsaPath(workspaceRoot, setting string) string {
	if setting == "" {
		return ""
	}
	if filepath.IsAbs(setting) {
		return setting
	}
	return filepath.Join(workspaceRoot, setting)
}
