package grounding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// ReadContext renders the whole corpus as one prompt section: per-file blocks
// in the form "=== FICHIER: name ===" with the file's chunks in order.
// Returns ErrNoDocuments when the corpus is empty so the analyzer can take
// the default-verdict path.
func (s *Store) ReadContext(ctx context.Context) (string, error) {
	rows, err := s.client.DocumentChunk.Query().
		Order(
			ent.Asc(documentchunk.FieldFilename),
			ent.Asc(documentchunk.FieldChunkIndex),
		).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("load context documents: %w", err)
	}
	if len(rows) == 0 {
		return "", ErrNoDocuments
	}

	type docContent struct {
		filename string
		chunks   []string
	}
	order := make([]string, 0)
	byDoc := make(map[string]*docContent)
	for _, row := range rows {
		doc, ok := byDoc[row.DocumentID]
		if !ok {
			doc = &docContent{filename: row.Filename}
			byDoc[row.DocumentID] = doc
			order = append(order, row.DocumentID)
		}
		doc.chunks = append(doc.chunks, row.Content)
	}

	blocks := make([]string, 0, len(order))
	for _, id := range order {
		doc := byDoc[id]
		blocks = append(blocks, fmt.Sprintf("=== FICHIER: %s ===\n%s", doc.filename, strings.Join(doc.chunks, "\n")))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// CardTrace is one past card analysis found by similarity search.
type CardTrace struct {
	CardID      string
	CardName    string
	Criticality string
	Content     string
	Similarity  float32
}

// SimilarCards returns up to k past analyses similar to the query. Search
// failures degrade to an empty result: analysis proceeds without history.
func (s *Store) SimilarCards(ctx context.Context, query string, k int) []CardTrace {
	if strings.TrimSpace(query) == "" || k <= 0 {
		return nil
	}
	count := s.collection.Count()
	if count == 0 {
		return nil
	}
	if k > count {
		k = count
	}

	results, err := s.collection.Query(ctx, query, k, map[string]string{"type": typeCardAnalysis}, nil)
	if err != nil {
		slog.Warn("Similarity search failed", "error", err)
		return nil
	}

	traces := make([]CardTrace, 0, len(results))
	for _, r := range results {
		traces = append(traces, CardTrace{
			CardID:      r.Metadata["card_id"],
			CardName:    r.Metadata["card_name"],
			Criticality: r.Metadata["criticality_level"],
			Content:     r.Content,
			Similarity:  r.Similarity,
		})
	}
	return traces
}

// SaveAnalysisTrace records a finished card analysis in the vector index so
// later runs can cite it as history. Failures are logged, never fatal.
func (s *Store) SaveAnalysisTrace(ctx context.Context, card models.CardPayload, criticality string) {
	now := time.Now()

	labelNames := make([]string, 0, len(card.Labels))
	for _, l := range card.Labels {
		labelNames = append(labelNames, l.Name)
	}
	content := fmt.Sprintf("CARD ANALYSÉE: %s\nDESCRIPTION: %s\nLABELS: %s\nRÉSULTAT: %s\nBOARD: %s",
		orDefault(card.Name, "N/A"),
		orDefault(card.Desc, "Aucune"),
		strings.Join(labelNames, ", "),
		criticality,
		orDefault(card.BoardName, "N/A"))

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:      fmt.Sprintf("analysis_%s_%d", card.ID, now.Unix()),
		Content: content,
		Metadata: map[string]string{
			"type":              typeCardAnalysis,
			"card_id":           card.ID,
			"card_name":         card.Name,
			"board_id":          card.BoardID,
			"criticality_level": criticality,
			"analyzed_at":       now.Format(time.RFC3339),
		},
	})
	if err != nil {
		slog.Warn("Failed to save analysis trace",
			"card_id", card.ID,
			"error", err)
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
