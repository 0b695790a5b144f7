// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ontology

import (
	"fmt"
	"os"
	"sort"

	"github.com/pdiddy/ppi-engine/pkg/types"
)

// Store is the immutable term store: canonical terms, an alias table for
// alternate and replaced accessions, and the parent DAG. Once built it is
// never mutated, so concurrent readers need no locking.
type Store struct {
	terms       map[string]*Term
	aliases     map[string]string // alt/replaced accession → canonical id
	dataVersion string
}

// LoadStore reads the configured OBO file and builds the term store.
func LoadStore(cfg types.OntologyConfig) (*Store, error) {
	if cfg.OBOPath == "" {
		return nil, fmt.Errorf("ontology: no OBO path configured")
	}
	f, err := os.Open(cfg.OBOPath)
	if err != nil {
		return nil, fmt.Errorf("opening ontology: %w", err)
	}
	defer f.Close()

	doc, err := ParseOBO(f)
	if err != nil {
		return nil, fmt.Errorf("parsing ontology %s: %w", cfg.OBOPath, err)
	}
	return NewStore(doc)
}

// NewStore builds the frozen DAG from a parsed document. It canonicalizes
// parent references, applies the header default-namespace where a stanza
// omits one, and rejects documents whose term graph contains a cycle.
func NewStore(doc *Document) (*Store, error) {
	s := &Store{
		terms:       make(map[string]*Term, len(doc.Terms)),
		aliases:     make(map[string]string),
		dataVersion: doc.DataVersion,
	}

	// First pass: register canonical terms and the alias table. Obsolete
	// terms with a designated replacement become pure aliases.
	for i := range doc.Terms {
		raw := &doc.Terms[i]
		if raw.ID == "" {
			return nil, fmt.Errorf("ontology: term stanza %d has no id", i)
		}
		if raw.IsObsolete && raw.ReplacedBy != "" {
			s.aliases[raw.ID] = raw.ReplacedBy
			for _, alt := range raw.AltIDs {
				s.aliases[alt] = raw.ReplacedBy
			}
			continue
		}

		ns := raw.Namespace
		if ns == "" {
			ns = doc.DefaultNamespace
		}
		if !validNamespace(Namespace(ns)) {
			return nil, fmt.Errorf("ontology: term %s has unknown namespace %q", raw.ID, ns)
		}
		if _, dup := s.terms[raw.ID]; dup {
			return nil, fmt.Errorf("ontology: duplicate term id %s", raw.ID)
		}

		s.terms[raw.ID] = &Term{
			ID:         raw.ID,
			Name:       raw.Name,
			Namespace:  Namespace(ns),
			AltIDs:     raw.AltIDs,
			IsObsolete: raw.IsObsolete,
			ReplacedBy: raw.ReplacedBy,
		}
		for _, alt := range raw.AltIDs {
			s.aliases[alt] = raw.ID
		}
	}

	// Second pass: resolve parent edges against the alias table. Parents
	// are sorted so ancestor traversal order is stable across runs.
	for i := range doc.Terms {
		raw := &doc.Terms[i]
		term, ok := s.terms[raw.ID]
		if !ok {
			continue // folded into its replacement
		}
		refs := make([]string, 0, len(raw.IsA)+len(raw.PartOf))
		refs = append(refs, raw.IsA...)
		refs = append(refs, raw.PartOf...)

		seen := make(map[string]bool, len(refs))
		for _, ref := range refs {
			canonical, err := s.resolve(ref)
			if err != nil {
				return nil, fmt.Errorf("ontology: term %s: unresolvable parent %s", raw.ID, ref)
			}
			if canonical == term.ID || seen[canonical] {
				continue
			}
			seen[canonical] = true
			term.Parents = append(term.Parents, canonical)
		}
		sort.Strings(term.Parents)
	}

	if err := s.checkAcyclic(); err != nil {
		return nil, err
	}
	return s, nil
}

func validNamespace(ns Namespace) bool {
	switch ns {
	case MolecularFunction, BiologicalProcess, CellularComponent:
		return true
	}
	return false
}

// resolve follows the alias table to a canonical id. Replacement chains
// (an obsolete term replaced by another obsolete term) are followed with a
// bound to catch alias loops in malformed files.
func (s *Store) resolve(accession string) (string, error) {
	acc := accession
	for hops := 0; hops < 8; hops++ {
		if _, ok := s.terms[acc]; ok {
			return acc, nil
		}
		next, ok := s.aliases[acc]
		if !ok {
			return "", &UnknownTermError{Accession: accession}
		}
		acc = next
	}
	return "", fmt.Errorf("ontology: alias chain for %s does not terminate", accession)
}

// checkAcyclic runs an iterative three-color DFS over the parent graph.
func (s *Store) checkAcyclic() error {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[string]int, len(s.terms))

	ids := make([]string, 0, len(s.terms))
	for id := range s.terms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, start := range ids {
		if color[start] != white {
			continue
		}
		// Stack frames carry the node and the next parent index to visit.
		type frame struct {
			id  string
			idx int
		}
		stack := []frame{{id: start}}
		color[start] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			parents := s.terms[top.id].Parents
			if top.idx >= len(parents) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			next := parents[top.idx]
			top.idx++
			switch color[next] {
			case grey:
				return fmt.Errorf("ontology: cycle detected through %s", next)
			case white:
				color[next] = grey
				stack = append(stack, frame{id: next})
			}
		}
	}
	return nil
}

// Term returns the term for an accession, resolving alternate and replaced
// accessions to the canonical term. Returns *UnknownTermError if the
// accession is not in the store.
func (s *Store) Term(accession string) (*Term, error) {
	id, err := s.resolve(accession)
	if err != nil {
		return nil, err
	}
	return s.terms[id], nil
}

// Canonical returns the canonical id for an accession.
func (s *Store) Canonical(accession string) (string, error) {
	return s.resolve(accession)
}

// Parents returns the canonical parent accessions of a term.
func (s *Store) Parents(accession string) ([]string, error) {
	t, err := s.Term(accession)
	if err != nil {
		return nil, err
	}
	return t.Parents, nil
}

// Ancestors returns the transitive parent closure of a term, including the
// term itself, in breadth-first discovery order. Parents are stored sorted,
// so the order is deterministic for a given store.
func (s *Store) Ancestors(accession string) ([]string, error) {
	start, err := s.resolve(accession)
	if err != nil {
		return nil, err
	}

	order := []string{start}
	seen := map[string]bool{start: true}
	for i := 0; i < len(order); i++ {
		for _, p := range s.terms[order[i]].Parents {
			if !seen[p] {
				seen[p] = true
				order = append(order, p)
			}
		}
	}
	return order, nil
}

// Len returns the number of canonical terms.
func (s *Store) Len() int {
	return len(s.terms)
}

// DataVersion returns the data-version header of the loaded ontology.
func (s *Store) DataVersion() string {
	return s.dataVersion
}

// NamespaceCounts returns the number of canonical terms per sub-ontology.
func (s *Store) NamespaceCounts() map[Namespace]int {
	counts := make(map[Namespace]int, 3)
	for _, t := range s.terms {
		counts[t.Namespace]++
	}
	return counts
}

// ObsoleteCount returns the number of obsolete terms kept as canonical
// nodes (obsolete terms with a replacement are folded away at build time).
func (s *Store) ObsoleteCount() int {
	n := 0
	for _, t := range s.terms {
		if t.IsObsolete {
			n++
		}
	}
	return n
}
