// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"github.com/pdiddy/ppi-engine/internal/ontology"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

// Compute derives the feature record for an interaction between source and
// target. When store is nil the process-wide active store is used.
//
// A nil source or target yields (nil, nil): an unannotated pair is a
// normal outcome, distinct from a record whose lists are all empty. A GO
// accession that does not resolve in the store aborts the computation with
// *ontology.UnknownTermError; dropping the term silently would make
// feature sets incomparable across ontology snapshots.
//
// Compute reads only its inputs and the frozen store, so it is safe to
// call concurrently for many pairs.
func Compute(source, target *types.Protein, store *ontology.Store) (*types.FeatureRecord, error) {
	if store == nil {
		var err error
		store, err = ontology.Active()
		if err != nil {
			return nil, err
		}
	}
	if source == nil || target == nil {
		return nil, nil
	}

	srcMF, err := parseGO(store, source.GOMF)
	if err != nil {
		return nil, err
	}
	srcBP, err := parseGO(store, source.GOBP)
	if err != nil {
		return nil, err
	}
	srcCC, err := parseGO(store, source.GOCC)
	if err != nil {
		return nil, err
	}
	tgtMF, err := parseGO(store, target.GOMF)
	if err != nil {
		return nil, err
	}
	tgtBP, err := parseGO(store, target.GOBP)
	if err != nil {
		return nil, err
	}
	tgtCC, err := parseGO(store, target.GOCC)
	if err != nil {
		return nil, err
	}

	// Induce per sub-ontology, then regroup the concatenation by each
	// term's true namespace and cap repeats.
	var induced []string
	for _, pair := range [3][2][]string{
		{srcMF, tgtMF},
		{srcBP, tgtBP},
		{srcCC, tgtCC},
	} {
		seq, err := Induce(store, pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		induced = append(induced, seq...)
	}

	grouped, err := Regroup(store, induced, DefaultMaxTermCount)
	if err != nil {
		return nil, err
	}
	ulcaMF, err := canonicalize(store, grouped[ontology.MolecularFunction])
	if err != nil {
		return nil, err
	}
	ulcaBP, err := canonicalize(store, grouped[ontology.BiologicalProcess])
	if err != nil {
		return nil, err
	}
	ulcaCC, err := canonicalize(store, grouped[ontology.CellularComponent])
	if err != nil {
		return nil, err
	}

	return &types.FeatureRecord{
		GOMF:     concat(srcMF, tgtMF),
		GOBP:     concat(srcBP, tgtBP),
		GOCC:     concat(srcCC, tgtCC),
		ULCAGOMF: ulcaMF,
		ULCAGOBP: ulcaBP,
		ULCAGOCC: ulcaCC,
		InterPro: concat(parseRaw(source.InterPro), parseRaw(target.InterPro)),
		Pfam:     concat(parseRaw(source.Pfam), parseRaw(target.Pfam)),
		Keywords: concat(parseRaw(source.Keywords), parseRaw(target.Keywords)),
	}, nil
}

// parseGO splits a GO annotation field and maps every accession to its
// canonical id. An absent field parses to an empty list.
func parseGO(store *ontology.Store, raw string) ([]string, error) {
	tokens := SplitAnnotations(raw, DefaultSeparator)
	ids := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		id, err := store.Canonical(tok)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseRaw splits a non-GO annotation field, defaulting an absent field to
// an empty list. The tokens are opaque; no canonicalization applies.
func parseRaw(raw string) []string {
	tokens := SplitAnnotations(raw, DefaultSeparator)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// canonicalize maps every accession through the store's alias table.
func canonicalize(store *ontology.Store, accs []string) ([]string, error) {
	out := make([]string, 0, len(accs))
	for _, acc := range accs {
		id, err := store.Canonical(acc)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// concat returns a fresh slice so the record never aliases caller memory.
func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
