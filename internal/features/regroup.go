// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"github.com/pdiddy/ppi-engine/internal/ontology"
)

// DefaultMaxTermCount caps how many times a single induced accession may
// appear within one sub-ontology list.
const DefaultMaxTermCount = 2

// Regroup partitions induced terms by their true sub-ontology. Induction
// runs per sub-ontology, but part_of edges cross ontology boundaries, so
// the concatenated induction output can hold terms of any namespace and
// may repeat a term. Within each namespace list an accession is kept at
// most maxCount times; first-seen order is otherwise preserved.
//
// The result always carries all three namespace keys, with empty (non-nil)
// lists where nothing qualified.
func Regroup(store *ontology.Store, terms []string, maxCount int) (map[ontology.Namespace][]string, error) {
	if maxCount <= 0 {
		maxCount = DefaultMaxTermCount
	}

	groups := make(map[ontology.Namespace][]string, 3)
	counts := make(map[ontology.Namespace]map[string]int, 3)
	for _, ns := range ontology.Namespaces() {
		groups[ns] = []string{}
		counts[ns] = make(map[string]int)
	}

	for _, acc := range terms {
		term, err := store.Term(acc)
		if err != nil {
			return nil, err
		}
		ns := term.Namespace
		if counts[ns][term.ID] >= maxCount {
			continue
		}
		counts[ns][term.ID]++
		groups[ns] = append(groups[ns], term.ID)
	}

	return groups, nil
}
