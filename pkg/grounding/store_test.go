package grounding

import (
	"context"
	"strings"
	"testing"

	chromem "github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

// hashEmbedding is a deterministic stand-in for the embeddings endpoint:
// vectors depend only on byte content, so similarity is reproducible.
func hashEmbedding(_ context.Context, text string) ([]float32, error) {
	const dim = 16
	vec := make([]float32, dim)
	for i, r := range text {
		vec[i%dim] += float32(r%13) / 13
	}
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	return vec, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	store, err := NewStore(client, Config{
		Collection:    "test_documents",
		EmbeddingFunc: chromem.EmbeddingFunc(hashEmbedding),
	})
	require.NoError(t, err)
	return store
}

func TestIngestAndReadContext(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result, err := store.Ingest(ctx, "application.txt", []byte("Application de gestion des rendez-vous médicaux.\n\nLes pannes de paiement sont critiques."))
	require.NoError(t, err)
	assert.NotEmpty(t, result.DocumentID)
	assert.Equal(t, "application.txt", result.Filename)
	assert.GreaterOrEqual(t, result.Chunks, 1)

	text, err := store.ReadContext(ctx)
	require.NoError(t, err)
	assert.Contains(t, text, "=== FICHIER: application.txt ===")
	assert.Contains(t, text, "rendez-vous médicaux")
}

func TestIngestChunksLongDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	paragraph := strings.Repeat("Une phrase qui décrit le fonctionnement du module de facturation. ", 20)
	long := paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	result, err := store.Ingest(ctx, "facturation.txt", []byte(long))
	require.NoError(t, err)
	assert.Greater(t, result.Chunks, 1, "documents above the chunk size are split")

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Documents)
	assert.Equal(t, result.Chunks, status.Chunks)
	assert.Equal(t, result.Chunks, status.VectorDocuments)
}

func TestIngestRejectsDuplicates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	content := []byte("Contenu unique du document de contexte.")
	first, err := store.Ingest(ctx, "v1.txt", content)
	require.NoError(t, err)

	// Same bytes under another name are still a duplicate.
	_, err = store.Ingest(ctx, "v2.txt", content)
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.DocumentID, dup.DocumentID)
	assert.Equal(t, "v1.txt", dup.Filename)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestIngestRejectsEmpty(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Ingest(context.Background(), "vide.txt", []byte("   \n "))
	require.Error(t, err)
}

func TestReadContextEmptyCorpus(t *testing.T) {
	store := newTestStore(t)
	_, err := store.ReadContext(context.Background())
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestListAndDeleteDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Ingest(ctx, "a.txt", []byte("Premier document."))
	require.NoError(t, err)
	_, err = store.Ingest(ctx, "b.txt", []byte("Second document."))
	require.NoError(t, err)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	require.NoError(t, store.DeleteDocument(ctx, first.DocumentID))

	docs, err = store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b.txt", docs[0].Filename)

	_, err = store.ReadContext(ctx)
	require.NoError(t, err, "remaining documents still serve the context")

	assert.ErrorIs(t, store.DeleteDocument(ctx, first.DocumentID), ErrDocumentNotFound)
}

func TestSimilarCards(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, store.SimilarCards(ctx, "panne de paiement", 3), "empty index yields no guidance")

	store.SaveAnalysisTrace(ctx, models.CardPayload{
		ID:        "card-1",
		Name:      "Panne du module de paiement",
		Desc:      "Les paiements échouent en production",
		BoardID:   "board-1",
		BoardName: "Support",
	}, models.CriticalityHigh)
	store.SaveAnalysisTrace(ctx, models.CardPayload{
		ID:      "card-2",
		Name:    "Couleur du bouton",
		Desc:    "Ajuster le style",
		BoardID: "board-1",
	}, models.CriticalityLow)

	traces := store.SimilarCards(ctx, "panne de paiement en production", 3)
	require.NotEmpty(t, traces)
	assert.LessOrEqual(t, len(traces), 2)
	ids := make([]string, 0, len(traces))
	for _, trace := range traces {
		ids = append(ids, trace.CardID)
		assert.NotEmpty(t, trace.Content)
		assert.NotEmpty(t, trace.Criticality)
	}
	assert.Contains(t, ids, "card-1")

	assert.Empty(t, store.SimilarCards(ctx, "   ", 3))
	assert.Empty(t, store.SimilarCards(ctx, "panne", 0))
}

func TestSimilarCardsIgnoresDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Ingest(ctx, "contexte.txt", []byte("Document de contexte sur les paiements."))
	require.NoError(t, err)

	// Only card-analysis traces are eligible, never document chunks.
	assert.Empty(t, store.SimilarCards(ctx, "paiements", 3))
}
