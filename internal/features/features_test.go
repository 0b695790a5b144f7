// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/ppi-engine/internal/ontology"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

func TestComputeMissingInput(t *testing.T) {
	store := testStore(t)
	protein := &types.Protein{Accession: "P00001", GOMF: "GO:0000001"}

	tests := []struct {
		name   string
		source *types.Protein
		target *types.Protein
	}{
		{"nil source", nil, protein},
		{"nil target", protein, nil},
		{"both nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Compute(tt.source, tt.target, store)
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if record != nil {
				t.Errorf("record = %+v, want nil", record)
			}
		})
	}
}

func TestComputeEmptyAnnotations(t *testing.T) {
	store := testStore(t)
	source := &types.Protein{Accession: "P00001"}
	target := &types.Protein{Accession: "P00002"}

	record, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil {
		t.Fatal("record = nil, want empty record")
	}
	for _, f := range record.Fields() {
		if f.Values == nil {
			t.Errorf("field %s = nil, want empty slice", f.Name)
		}
		if len(f.Values) != 0 {
			t.Errorf("field %s = %v, want empty", f.Name, f.Values)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	store := testStore(t)
	source := &types.Protein{
		Accession: "P00001",
		GOMF:      "GO:0000004,GO:0000005",
		GOBP:      "GO:0000021",
		GOCC:      "GO:0000031",
		InterPro:  "IPR000001",
		Pfam:      "PF00001,PF00002",
		Keywords:  "kinase,membrane",
	}
	target := &types.Protein{
		Accession: "P00002",
		GOMF:      "GO:0000003",
		GOBP:      "GO:0000022",
		GOCC:      "GO:0000030",
	}

	first, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compute differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestComputeSharedRootScenario(t *testing.T) {
	store := testStore(t)
	source := &types.Protein{Accession: "P00001", GOMF: "GO:0000001,GO:0000002"}
	target := &types.Protein{Accession: "P00002", GOMF: "GO:0000003"}

	record, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}

	wantRaw := []string{"GO:0000001", "GO:0000002", "GO:0000003"}
	if !reflect.DeepEqual(record.GOMF, wantRaw) {
		t.Errorf("go_mf = %v, want %v", record.GOMF, wantRaw)
	}

	// The induced set carries the shared root and every annotated child.
	wantInduced := map[string]bool{
		"GO:0000001": true,
		"GO:0000002": true,
		"GO:0000003": true,
		"GO:0000010": true,
	}
	got := make(map[string]bool, len(record.ULCAGOMF))
	for _, id := range record.ULCAGOMF {
		got[id] = true
	}
	if !reflect.DeepEqual(got, wantInduced) {
		t.Errorf("ulca_go_mf = %v, want the terms %v", record.ULCAGOMF, wantInduced)
	}

	for _, f := range record.Fields() {
		switch f.Name {
		case "go_mf", "ulca_go_mf":
		default:
			if len(f.Values) != 0 {
				t.Errorf("field %s = %v, want empty", f.Name, f.Values)
			}
		}
	}
}

func TestComputeUnknownTermAborts(t *testing.T) {
	store := testStore(t)
	source := &types.Protein{Accession: "P00001", GOMF: "GO:0000001,GO:9999999"}
	target := &types.Protein{Accession: "P00002", GOMF: "GO:0000003"}

	record, err := Compute(source, target, store)
	var unknown *ontology.UnknownTermError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *ontology.UnknownTermError", err)
	}
	if record != nil {
		t.Errorf("record = %+v, want nil on unknown term", record)
	}
}

func TestComputeCanonicalizesAlternateAccessions(t *testing.T) {
	store := testStore(t)
	// GO:1000001 is an alt_id of GO:0000001 and GO:2000002 is obsolete,
	// replaced by GO:0000002.
	source := &types.Protein{Accession: "P00001", GOMF: "GO:1000001,GO:2000002"}
	target := &types.Protein{Accession: "P00002", GOMF: "GO:0000003"}

	record, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}
	wantRaw := []string{"GO:0000001", "GO:0000002", "GO:0000003"}
	if !reflect.DeepEqual(record.GOMF, wantRaw) {
		t.Errorf("go_mf = %v, want %v", record.GOMF, wantRaw)
	}
}

func TestComputeCrossOntologyInduction(t *testing.T) {
	store := testStore(t)
	// Both biological_process annotations sit under the cellular_component
	// root via part_of, so the induced LCA regroups into ulca_go_cc.
	source := &types.Protein{Accession: "P00001", GOBP: "GO:0000023"}
	target := &types.Protein{Accession: "P00002", GOBP: "GO:0000024"}

	record, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}

	wantBP := []string{"GO:0000023", "GO:0000024"}
	if !reflect.DeepEqual(record.ULCAGOBP, wantBP) {
		t.Errorf("ulca_go_bp = %v, want %v", record.ULCAGOBP, wantBP)
	}
	wantCC := []string{"GO:0000030"}
	if !reflect.DeepEqual(record.ULCAGOCC, wantCC) {
		t.Errorf("ulca_go_cc = %v, want %v", record.ULCAGOCC, wantCC)
	}
}

func TestComputeRawFieldsConcatenateSourceThenTarget(t *testing.T) {
	store := testStore(t)
	source := &types.Protein{
		Accession: "P00001",
		InterPro:  "IPR000002,IPR000001",
		Pfam:      "PF00001",
		Keywords:  " kinase , membrane ,",
	}
	target := &types.Protein{
		Accession: "P00002",
		InterPro:  "IPR000001",
		Keywords:  "membrane",
	}

	record, err := Compute(source, target, store)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"interpro", record.InterPro, []string{"IPR000002", "IPR000001", "IPR000001"}},
		{"pfam", record.Pfam, []string{"PF00001"}},
		{"keywords", record.Keywords, []string{"kinase", "membrane", "membrane"}},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestComputeFallsBackToActiveStore(t *testing.T) {
	ontology.ResetActive()
	t.Cleanup(ontology.ResetActive)

	source := &types.Protein{Accession: "P00001", GOMF: "GO:0000001"}
	target := &types.Protein{Accession: "P00002", GOMF: "GO:0000003"}

	// Without an active store the computation cannot start.
	_, err := Compute(source, target, nil)
	if !errors.Is(err, ontology.ErrNoActiveStore) {
		t.Fatalf("err = %v, want ErrNoActiveStore", err)
	}

	ontology.SetActive(testStore(t))
	record, err := Compute(source, target, nil)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil {
		t.Fatal("record = nil, want record from active store")
	}
	want := []string{"GO:0000001", "GO:0000003"}
	if !reflect.DeepEqual(record.GOMF, want) {
		t.Errorf("go_mf = %v, want %v", record.GOMF, want)
	}
}
