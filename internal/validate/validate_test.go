package validate

import (
	"path/filepath"
	"testing"

	"pokerphe/internal/flatten"
	"pokerphe/internal/fsm"
	"pokerphe/internal/hand"
	"pokerphe/internal/layout"
	"pokerphe/internal/oracle"
	"pokerphe/internal/table"
)

func TestFSMValidatorPassesForAMatchingOracle(t *testing.T) {
	size := uint8(4)
	machine, _, err := fsm.Build(oracle.Sum, size)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := FSM(machine, oracle.Sum, size); err != nil {
		t.Fatalf("FSM validation failed against its own oracle: %v", err)
	}
}

func TestFSMValidatorCatchesAWrongOracle(t *testing.T) {
	size := uint8(3)
	machine, _, err := fsm.Build(oracle.Sum, size)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wrong := func(h hand.Hand) uint32 { return oracle.Sum(h) + 1 }
	if err := FSM(machine, wrong, size); err == nil {
		t.Fatalf("expected FSM validation to fail against a deliberately wrong oracle")
	}
}

func TestFlatTableValidatorPassesForAMatchingOracle(t *testing.T) {
	size := uint8(4)
	machine, _, err := fsm.Build(oracle.Sum, size)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order := layout.BFS(machine, size)
	flat, err := flatten.Flatten(machine, order, size)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	path := filepath.Join(t.TempDir(), "validate.phe")
	if err := flatten.Write(path, flat); err != nil {
		t.Fatalf("Write: %v", err)
	}
	tbl, err := table.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := FlatTable(tbl, oracle.Sum, size); err != nil {
		t.Fatalf("flat-table validation failed: %v", err)
	}
}

func TestFlatTableValidatorCatchesATamperedFile(t *testing.T) {
	size := uint8(3)
	machine, _, err := fsm.Build(oracle.Sum, size)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order := layout.BFS(machine, size)
	flat, err := flatten.Flatten(machine, order, size)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	flat[0] = flat[0] + 1000000
	path := filepath.Join(t.TempDir(), "tampered.phe")
	if err := flatten.Write(path, flat); err != nil {
		t.Fatalf("Write: %v", err)
	}
	tbl, err := table.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := FlatTable(tbl, oracle.Sum, size); err == nil {
		t.Fatalf("expected flat-table validation to fail against a tampered file")
	}
}
