// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"github.com/pdiddy/ppi-engine/internal/ontology"
)

// ancestry is the transitive parent closure of one term: the breadth-first
// discovery order and the same terms as a set.
type ancestry struct {
	order []string
	set   map[string]bool
}

// self returns the canonical id of the term the closure was computed for.
func (a *ancestry) self() string {
	return a.order[0]
}

// ancestryCache memoizes closures within a single induction. The cache is
// per-call state, so induction stays safe to run concurrently over a
// shared store.
type ancestryCache struct {
	store *ontology.Store
	memo  map[string]*ancestry
}

func newAncestryCache(store *ontology.Store) *ancestryCache {
	return &ancestryCache{store: store, memo: make(map[string]*ancestry)}
}

func (c *ancestryCache) get(accession string) (*ancestry, error) {
	if a, ok := c.memo[accession]; ok {
		return a, nil
	}
	order, err := c.store.Ancestors(accession)
	if err != nil {
		return nil, err
	}
	a := &ancestry{order: order, set: make(map[string]bool, len(order))}
	for _, id := range order {
		a.set[id] = true
	}
	c.memo[accession] = a
	c.memo[a.self()] = a
	return a, nil
}

// Induce computes the up-to-least-common-ancestor term set for one GO
// sub-ontology: for every pair (ta, tb) drawn from the two input sets, the
// lowest common ancestors of the pair and every term lying on a path from
// ta or tb up to such an ancestor.
//
// Terms shared between the inputs are their own ancestors at distance
// zero, so they always qualify. If either input is empty the result is
// empty. The result contains each induced term once, in first-discovered
// order: pairs are visited in input order and closures breadth-first over
// lexicographically sorted parents, so identical inputs against an
// unchanged store always induce the identical sequence.
func Induce(store *ontology.Store, termsA, termsB []string) ([]string, error) {
	if len(termsA) == 0 || len(termsB) == 0 {
		return nil, nil
	}

	cache := newAncestryCache(store)
	var induced []string
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			induced = append(induced, id)
		}
	}

	for _, ta := range termsA {
		ancA, err := cache.get(ta)
		if err != nil {
			return nil, err
		}
		for _, tb := range termsB {
			ancB, err := cache.get(tb)
			if err != nil {
				return nil, err
			}

			lcas, err := lowestCommon(cache, ancA, ancB)
			if err != nil {
				return nil, err
			}

			// Collect everything between each pair member and each LCA:
			// x lies on a path from ta up to c when x is an ancestor of
			// ta and c is an ancestor of x. The LCA itself satisfies both.
			for _, c := range lcas {
				for _, side := range []*ancestry{ancA, ancB} {
					for _, x := range side.order {
						ax, err := cache.get(x)
						if err != nil {
							return nil, err
						}
						if ax.set[c] {
							add(x)
						}
					}
				}
			}
		}
	}

	return induced, nil
}

// lowestCommon returns the lowest common ancestors of one pair: the common
// ancestors that have no strict descendant among the common ancestors.
// Order follows ancA's breadth-first order.
func lowestCommon(cache *ancestryCache, ancA, ancB *ancestry) ([]string, error) {
	var common []string
	for _, id := range ancA.order {
		if ancB.set[id] {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return nil, nil
	}

	inCommon := make(map[string]bool, len(common))
	for _, id := range common {
		inCommon[id] = true
	}

	var lcas []string
	for _, c := range common {
		lowest := true
		for _, d := range common {
			if d == c {
				continue
			}
			ad, err := cache.get(d)
			if err != nil {
				return nil, err
			}
			// d is a strict descendant of c, so c is not lowest.
			if ad.set[c] {
				lowest = false
				break
			}
		}
		if lowest {
			lcas = append(lcas, c)
		}
	}
	return lcas, nil
}
