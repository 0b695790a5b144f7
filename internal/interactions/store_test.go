// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interactions

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ppi-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.DatasetConfig{Path: filepath.Join(t.TempDir(), "ppi.db")}
	store, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestImportProteins(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	tsv := strings.Join([]string{
		"accession\tgo_mf\tgo_bp\tgo_cc\tinterpro\tpfam\tkeywords",
		"P00001\tGO:0000001,GO:0000002\tGO:0000021\t\tIPR000001\tPF00001\tkinase",
		"P00002\tGO:0000003\t\t\t\t\t",
		"\tGO:0000001\t\t\t\t\t", // missing accession
	}, "\n")

	summary, err := store.ImportProteins(ctx, strings.NewReader(tsv), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	p, err := store.Protein(ctx, "P00001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "GO:0000001,GO:0000002", p.GOMF)
	assert.Equal(t, "GO:0000021", p.GOBP)
	assert.Equal(t, "kinase", p.Keywords)

	missing, err := store.Protein(ctx, "P99999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestImportProteinsUpserts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.ImportProteins(ctx,
		strings.NewReader("P00001\tGO:0000001\t\t\t\t\t"), io.Discard)
	require.NoError(t, err)
	_, err = store.ImportProteins(ctx,
		strings.NewReader("P00001\tGO:0000002\t\t\t\t\t"), io.Discard)
	require.NoError(t, err)

	p, err := store.Protein(ctx, "P00001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "GO:0000002", p.GOMF)

	proteins, _, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, proteins)
}

func TestImportInteractions(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	tsv := strings.Join([]string{
		"source\ttarget\tlabels",
		"P00002\tP00003\tphosphorylation",
		"P00001\tP00002", // short row: labels column omitted
		"P00004\t\t",     // missing target
	}, "\n")

	summary, err := store.ImportInteractions(ctx, strings.NewReader(tsv), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	pairs, err := store.Interactions(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	// Deterministic source/target ordering.
	assert.Equal(t, types.Interaction{Source: "P00001", Target: "P00002"}, pairs[0])
	assert.Equal(t, types.Interaction{Source: "P00002", Target: "P00003", Labels: "phosphorylation"}, pairs[1])
}

func TestFeatureCacheRoundtrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	miss, err := store.CachedFeatures(ctx, "P00001", "P00002")
	require.NoError(t, err)
	assert.Nil(t, miss)

	record := &types.FeatureRecord{
		GOMF:     []string{"GO:0000001", "GO:0000003"},
		GOBP:     []string{},
		GOCC:     []string{},
		ULCAGOMF: []string{"GO:0000001", "GO:0000003", "GO:0000010"},
		ULCAGOBP: []string{},
		ULCAGOCC: []string{},
		InterPro: []string{"IPR000001"},
		Pfam:     []string{},
		Keywords: []string{"kinase"},
	}
	require.NoError(t, store.PutFeatures(ctx, "P00001", "P00002", record))

	got, err := store.CachedFeatures(ctx, "P00001", "P00002")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// Replacing an entry keeps the latest record.
	record.Keywords = []string{"kinase", "membrane"}
	require.NoError(t, store.PutFeatures(ctx, "P00001", "P00002", record))
	got, err = store.CachedFeatures(ctx, "P00001", "P00002")
	require.NoError(t, err)
	assert.Equal(t, []string{"kinase", "membrane"}, got.Keywords)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(types.DatasetConfig{})
	require.Error(t, err)
}
