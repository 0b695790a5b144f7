// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract computes feature records for batches of interaction
// pairs. It fans the pairs out over a worker pool; the feature engine is
// pure and the term store is frozen, so workers share them without locks.
package extract

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/ppi-engine/internal/features"
	"github.com/pdiddy/ppi-engine/internal/ontology"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

// DefaultWorkers is the worker pool size when none is configured.
const DefaultWorkers = 4

// ProteinSource resolves accessions to annotation records. The dataset
// store implements it; tests substitute an in-memory map.
type ProteinSource interface {
	Protein(ctx context.Context, accession string) (*types.Protein, error)
}

// FeatureCache stores computed records keyed by pair so repeated runs skip
// recomputation.
type FeatureCache interface {
	CachedFeatures(ctx context.Context, source, target string) (*types.FeatureRecord, error)
	PutFeatures(ctx context.Context, source, target string, record *types.FeatureRecord) error
}

// PairFeatures is the outcome for one interaction pair. Record is nil when
// either protein is missing from the source; such pairs are skipped, not
// failed.
type PairFeatures struct {
	Interaction types.Interaction    `json:"interaction" yaml:"interaction"`
	Record      *types.FeatureRecord `json:"record,omitempty" yaml:"record,omitempty"`
	FromCache   bool                 `json:"from_cache,omitempty" yaml:"from_cache,omitempty"`
}

// Summary holds counts from a batch run.
type Summary struct {
	Computed int
	Cached   int
	Skipped  int
}

// Extractor runs the feature engine over interaction batches.
type Extractor struct {
	// Store is the frozen term store shared by all workers.
	Store *ontology.Store

	// Source resolves pair accessions to protein records.
	Source ProteinSource

	// Workers is the pool size; DefaultWorkers when <= 0.
	Workers int

	// Cache, when non-nil, is consulted before computing and updated
	// after.
	Cache FeatureCache
}

// New builds an Extractor from configuration. The cache is wired only when
// cfg.UseCache is set.
func New(cfg types.ExtractConfig, store *ontology.Store, source ProteinSource, cache FeatureCache) *Extractor {
	e := &Extractor{
		Store:   store,
		Source:  source,
		Workers: cfg.Workers,
	}
	if cfg.UseCache {
		e.Cache = cache
	}
	return e
}

// Transform computes feature records for the given pairs. Results are
// returned in input order regardless of worker scheduling. Pairs with a
// missing protein are reported to w and skipped. An unresolvable GO
// accession aborts the whole batch: the error propagates so the caller
// can decide whether to fix the ontology snapshot or the annotations.
func (e *Extractor) Transform(ctx context.Context, pairs []types.Interaction, w io.Writer) ([]PairFeatures, Summary, error) {
	workers := e.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(pairs) && len(pairs) > 0 {
		workers = len(pairs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]PairFeatures, len(pairs))
	jobs := make(chan int)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pf, err := e.computePair(ctx, pairs[i])
				if err != nil {
					errs <- err
					cancel()
					return
				}
				results[i] = pf
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range pairs {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	var summary Summary
	for _, pf := range results {
		switch {
		case pf.Record == nil:
			fmt.Fprintf(w, "skipped %s-%s: protein missing\n",
				pf.Interaction.Source, pf.Interaction.Target)
			summary.Skipped++
		case pf.FromCache:
			summary.Cached++
		default:
			summary.Computed++
		}
	}
	fmt.Fprintf(w, "computed: %d, cached: %d, skipped: %d\n",
		summary.Computed, summary.Cached, summary.Skipped)

	return results, summary, nil
}

func (e *Extractor) computePair(ctx context.Context, pair types.Interaction) (PairFeatures, error) {
	pf := PairFeatures{Interaction: pair}

	if e.Cache != nil {
		record, err := e.Cache.CachedFeatures(ctx, pair.Source, pair.Target)
		if err != nil {
			return pf, err
		}
		if record != nil {
			pf.Record = record
			pf.FromCache = true
			return pf, nil
		}
	}

	source, err := e.Source.Protein(ctx, pair.Source)
	if err != nil {
		return pf, err
	}
	target, err := e.Source.Protein(ctx, pair.Target)
	if err != nil {
		return pf, err
	}

	record, err := features.Compute(source, target, e.Store)
	if err != nil {
		return pf, err
	}
	if record == nil {
		return pf, nil // missing protein on either side
	}

	pf.Record = record
	if e.Cache != nil {
		if err := e.Cache.PutFeatures(ctx, pair.Source, pair.Target, record); err != nil {
			return pf, err
		}
	}
	return pf, nil
}
