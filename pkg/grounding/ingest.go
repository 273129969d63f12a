package grounding

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
)

// IngestResult describes one ingested document.
type IngestResult struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Chunks     int    `json:"chunks"`
}

// DocumentInfo is one corpus document in listings.
type DocumentInfo struct {
	DocumentID  string    `json:"document_id"`
	Filename    string    `json:"filename"`
	Chunks      int       `json:"chunks"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Ingest chunks a document and stores it in both the relational corpus and
// the vector index. Content already ingested (same MD5) returns a
// *DuplicateError carrying the existing document id.
func (s *Store) Ingest(ctx context.Context, filename string, content []byte) (*IngestResult, error) {
	text := string(content)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document %s is empty", filename)
	}

	sum := md5.Sum(content)
	hash := hex.EncodeToString(sum[:])

	existing, err := s.client.DocumentChunk.Query().
		Where(documentchunk.ContentHashEQ(hash)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateError{DocumentID: existing.DocumentID, Filename: existing.Filename}
	}

	chunks, err := s.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split document: %w", err)
	}
	if len(chunks) == 0 {
		chunks = []string{text}
	}

	documentID := uuid.New().String()

	// Relational rows first: they are the source of truth for context reads.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	defer tx.Rollback()

	for i, chunk := range chunks {
		_, err := tx.DocumentChunk.Create().
			SetDocumentID(documentID).
			SetFilename(filename).
			SetChunkIndex(i).
			SetTotalChunks(len(chunks)).
			SetContent(chunk).
			SetContentHash(hash).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("store chunk %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit document: %w", err)
	}

	// Vector index second, best effort: a missing embedding degrades
	// similarity guidance but never loses the document.
	for i, chunk := range chunks {
		err := s.collection.AddDocument(ctx, chromem.Document{
			ID:      fmt.Sprintf("%s_chunk_%d", documentID, i),
			Content: chunk,
			Metadata: map[string]string{
				"type":         typeDocument,
				"document_id":  documentID,
				"filename":     filename,
				"chunk_index":  strconv.Itoa(i),
				"total_chunks": strconv.Itoa(len(chunks)),
				"content_hash": hash,
			},
		})
		if err != nil {
			slog.Warn("Failed to index document chunk",
				"document_id", documentID,
				"chunk_index", i,
				"error", err)
		}
	}

	slog.Info("Document ingested",
		"document_id", documentID,
		"filename", filename,
		"chunks", len(chunks))

	return &IngestResult{
		DocumentID: documentID,
		Filename:   filename,
		Chunks:     len(chunks),
	}, nil
}

// ListDocuments returns the ingested documents, newest first.
func (s *Store) ListDocuments(ctx context.Context) ([]DocumentInfo, error) {
	heads, err := s.client.DocumentChunk.Query().
		Where(documentchunk.ChunkIndexEQ(0)).
		Order(ent.Desc(documentchunk.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]DocumentInfo, 0, len(heads))
	for _, head := range heads {
		docs = append(docs, DocumentInfo{
			DocumentID:  head.DocumentID,
			Filename:    head.Filename,
			Chunks:      head.TotalChunks,
			ContentHash: head.ContentHash,
			CreatedAt:   head.CreatedAt,
		})
	}
	return docs, nil
}

// DeleteDocument removes a document from both stores.
func (s *Store) DeleteDocument(ctx context.Context, documentID string) error {
	deleted, err := s.client.DocumentChunk.Delete().
		Where(documentchunk.DocumentIDEQ(documentID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete document chunks: %w", err)
	}
	if deleted == 0 {
		return ErrDocumentNotFound
	}

	if err := s.collection.Delete(ctx, map[string]string{"document_id": documentID}, nil); err != nil {
		slog.Warn("Failed to remove document from vector index",
			"document_id", documentID,
			"error", err)
	}

	slog.Info("Document deleted", "document_id", documentID, "chunks", deleted)
	return nil
}
