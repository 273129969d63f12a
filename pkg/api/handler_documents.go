package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/grounding"
)

// uploadDocument handles POST /fileapi/upload: a multipart .txt file that
// joins the grounding corpus. Duplicate content answers 409 with the
// existing document id.
func (s *Server) uploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "file field is required")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
		abortWithError(c, http.StatusBadRequest, "only .txt files are accepted")
		return
	}
	if header.Size > s.settings.MaxContentLength {
		abortWithError(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, s.settings.MaxContentLength+1))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if int64(len(content)) > s.settings.MaxContentLength {
		abortWithError(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
		return
	}

	result, err := s.documents.Ingest(c.Request.Context(), filepath.Base(header.Filename), content)
	if err != nil {
		var dup *grounding.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"status":            "error",
				"message":           "document already ingested",
				"document_id":       dup.DocumentID,
				"original_filename": dup.Filename,
			})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, success(gin.H{
		"document_id":       result.DocumentID,
		"original_filename": result.Filename,
		"chunks":            result.Chunks,
		"content_length":    len(content),
	}))
}

// listDocuments handles GET /fileapi/documents.
func (s *Server) listDocuments(c *gin.Context) {
	docs, err := s.documents.ListDocuments(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"documents": docs,
		"count":     len(docs),
	}))
}

// deleteDocument handles DELETE /fileapi/documents/:documentId.
func (s *Server) deleteDocument(c *gin.Context) {
	documentID := c.Param("documentId")
	if err := s.documents.DeleteDocument(c.Request.Context(), documentID); err != nil {
		if errors.Is(err, grounding.ErrDocumentNotFound) {
			abortWithError(c, http.StatusNotFound, "document not found")
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"document_id": documentID}))
}
