// Package grounding manages the context corpus the analyzer is grounded on:
// uploaded documents chunked into Postgres rows (source of truth) and a
// persistent vector index for similarity search over past card analyses.
package grounding

import (
	"context"
	"errors"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
)

// Chunking parameters for uploaded documents.
const (
	ChunkSize    = 1000
	ChunkOverlap = 200
)

// Vector document types.
const (
	typeDocument     = "document"
	typeCardAnalysis = "card_analysis"
)

var (
	// ErrNoDocuments is returned by ReadContext when nothing was uploaded yet.
	ErrNoDocuments = errors.New("no context documents available")

	// ErrDocumentNotFound is returned when a document id is unknown.
	ErrDocumentNotFound = errors.New("document not found")
)

// DuplicateError reports an upload whose content is already ingested.
type DuplicateError struct {
	DocumentID string
	Filename   string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("document already ingested as %s (%s)", e.DocumentID, e.Filename)
}

// Config holds grounding store settings.
type Config struct {
	Path       string
	Collection string

	// Embeddings endpoint (OpenAI-compatible). Ignored when EmbeddingFunc is
	// set, which tests use for deterministic vectors.
	APIKey        string
	BaseURL       string
	EmbeddingFunc chromem.EmbeddingFunc
}

// Store is the grounding corpus: relational chunks plus a vector index.
type Store struct {
	client     *ent.Client
	db         *chromem.DB
	collection *chromem.Collection
	splitter   textsplitter.RecursiveCharacter
}

// NewStore opens (or creates) the persistent vector index and prepares the
// chunker.
func NewStore(client *ent.Client, cfg Config) (*Store, error) {
	if cfg.Collection == "" {
		cfg.Collection = "talan_documents"
	}

	var db *chromem.DB
	var err error
	if cfg.Path != "" {
		db, err = chromem.NewPersistentDB(cfg.Path, false)
		if err != nil {
			return nil, fmt.Errorf("open vector store at %s: %w", cfg.Path, err)
		}
	} else {
		db = chromem.NewDB()
	}

	embeddingFunc := cfg.EmbeddingFunc
	if embeddingFunc == nil {
		if cfg.BaseURL != "" {
			embeddingFunc = chromem.NewEmbeddingFuncOpenAICompat(cfg.BaseURL, cfg.APIKey, string(chromem.EmbeddingModelOpenAI3Small), nil)
		} else {
			embeddingFunc = chromem.NewEmbeddingFuncOpenAI(cfg.APIKey, chromem.EmbeddingModelOpenAI3Small)
		}
	}

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", cfg.Collection, err)
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(ChunkSize),
		textsplitter.WithChunkOverlap(ChunkOverlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", " ", ""}),
	)

	return &Store{
		client:     client,
		db:         db,
		collection: collection,
		splitter:   splitter,
	}, nil
}

// Status describes the corpus for health and document endpoints.
type Status struct {
	Documents       int    `json:"documents"`
	Chunks          int    `json:"chunks"`
	VectorDocuments int    `json:"vector_documents"`
	Collection      string `json:"collection"`
}

// Status reports corpus size from both stores.
func (s *Store) Status(ctx context.Context) (*Status, error) {
	chunks, err := s.client.DocumentChunk.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count chunks: %w", err)
	}

	ids, err := s.client.DocumentChunk.Query().
		Unique(true).
		Select(documentchunk.FieldDocumentID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	return &Status{
		Documents:       len(ids),
		Chunks:          chunks,
		VectorDocuments: s.collection.Count(),
		Collection:      s.collection.Name,
	}, nil
}
