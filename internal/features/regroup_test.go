// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/ppi-engine/internal/ontology"
)

func TestRegroupCapsRepeatedTerms(t *testing.T) {
	store := testStore(t)

	terms := []string{"GO:0000001", "GO:0000001", "GO:0000001"}
	groups, err := Regroup(store, terms, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GO:0000001", "GO:0000001"}
	if !reflect.DeepEqual(groups[ontology.MolecularFunction], want) {
		t.Errorf("mf group = %v, want %v", groups[ontology.MolecularFunction], want)
	}
}

func TestRegroupAlwaysHasThreeKeys(t *testing.T) {
	store := testStore(t)

	groups, err := Regroup(store, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	for _, ns := range ontology.Namespaces() {
		list, ok := groups[ns]
		if !ok {
			t.Errorf("missing namespace key %s", ns)
			continue
		}
		if list == nil {
			t.Errorf("groups[%s] = nil, want empty slice", ns)
		}
		if len(list) != 0 {
			t.Errorf("groups[%s] = %v, want empty", ns, list)
		}
	}
}

func TestRegroupPartitionsByTrueNamespace(t *testing.T) {
	store := testStore(t)

	// A mix as produced by concatenated inductions: part_of edges cross
	// namespaces, so a biological_process induction can emit the
	// cellular_component root.
	terms := []string{"GO:0000023", "GO:0000030", "GO:0000001", "GO:0000021"}
	groups, err := Regroup(store, terms, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ns   ontology.Namespace
		want []string
	}{
		{ontology.MolecularFunction, []string{"GO:0000001"}},
		{ontology.BiologicalProcess, []string{"GO:0000023", "GO:0000021"}},
		{ontology.CellularComponent, []string{"GO:0000030"}},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(groups[tt.ns], tt.want) {
			t.Errorf("groups[%s] = %v, want %v", tt.ns, groups[tt.ns], tt.want)
		}
	}
}

func TestRegroupFirstSeenOrder(t *testing.T) {
	store := testStore(t)

	terms := []string{"GO:0000002", "GO:0000001", "GO:0000002", "GO:0000002", "GO:0000001"}
	groups, err := Regroup(store, terms, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GO:0000002", "GO:0000001", "GO:0000002", "GO:0000001"}
	if !reflect.DeepEqual(groups[ontology.MolecularFunction], want) {
		t.Errorf("mf group = %v, want %v", groups[ontology.MolecularFunction], want)
	}
}

func TestRegroupResolvesAlternateAccessions(t *testing.T) {
	store := testStore(t)

	// GO:1000001 is an alternate id of GO:0000001; both count against the
	// same canonical term.
	terms := []string{"GO:1000001", "GO:0000001", "GO:0000001"}
	groups, err := Regroup(store, terms, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"GO:0000001", "GO:0000001"}
	if !reflect.DeepEqual(groups[ontology.MolecularFunction], want) {
		t.Errorf("mf group = %v, want %v", groups[ontology.MolecularFunction], want)
	}
}

func TestRegroupUnknownTerm(t *testing.T) {
	store := testStore(t)

	_, err := Regroup(store, []string{"GO:9999999"}, 2)
	var unknown *ontology.UnknownTermError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *ontology.UnknownTermError", err)
	}
}
