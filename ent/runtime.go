// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardconfig"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
	"github.com/talan-labs/cardtriage/ent/schema"
	"github.com/talan-labs/cardtriage/ent/ticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysishistoryFields := schema.AnalysisHistory{}.Fields()
	_ = analysishistoryFields
	// analysishistoryDescAnalyzedAt is the schema descriptor for analyzed_at field.
	analysishistoryDescAnalyzedAt := analysishistoryFields[4].Descriptor()
	// analysishistory.DefaultAnalyzedAt holds the default value on creation for the analyzed_at field.
	analysishistory.DefaultAnalyzedAt = analysishistoryDescAnalyzedAt.Default.(func() time.Time)
	analysissessionFields := schema.AnalysisSession{}.Fields()
	_ = analysissessionFields
	// analysissessionDescReanalyse is the schema descriptor for reanalyse field.
	analysissessionDescReanalyse := analysissessionFields[1].Descriptor()
	// analysissession.DefaultReanalyse holds the default value on creation for the reanalyse field.
	analysissession.DefaultReanalyse = analysissessionDescReanalyse.Default.(bool)
	// analysissessionDescCreatedAt is the schema descriptor for created_at field.
	analysissessionDescCreatedAt := analysissessionFields[2].Descriptor()
	// analysissession.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysissession.DefaultCreatedAt = analysissessionDescCreatedAt.Default.(func() time.Time)
	// analysissessionDescUpdatedAt is the schema descriptor for updated_at field.
	analysissessionDescUpdatedAt := analysissessionFields[3].Descriptor()
	// analysissession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysissession.DefaultUpdatedAt = analysissessionDescUpdatedAt.Default.(func() time.Time)
	// analysissession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysissession.UpdateDefaultUpdatedAt = analysissessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	boardconfigFields := schema.BoardConfig{}.Fields()
	_ = boardconfigFields
	// boardconfigDescCreatedAt is the schema descriptor for created_at field.
	boardconfigDescCreatedAt := boardconfigFields[1].Descriptor()
	// boardconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	boardconfig.DefaultCreatedAt = boardconfigDescCreatedAt.Default.(func() time.Time)
	// boardconfigDescUpdatedAt is the schema descriptor for updated_at field.
	boardconfigDescUpdatedAt := boardconfigFields[2].Descriptor()
	// boardconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	boardconfig.DefaultUpdatedAt = boardconfigDescUpdatedAt.Default.(func() time.Time)
	// boardconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	boardconfig.UpdateDefaultUpdatedAt = boardconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	boardscopeFields := schema.BoardScope{}.Fields()
	_ = boardscopeFields
	// boardscopeDescPlatform is the schema descriptor for platform field.
	boardscopeDescPlatform := boardscopeFields[1].Descriptor()
	// boardscope.DefaultPlatform holds the default value on creation for the platform field.
	boardscope.DefaultPlatform = boardscopeDescPlatform.Default.(string)
	// boardscopeDescCreatedAt is the schema descriptor for created_at field.
	boardscopeDescCreatedAt := boardscopeFields[2].Descriptor()
	// boardscope.DefaultCreatedAt holds the default value on creation for the created_at field.
	boardscope.DefaultCreatedAt = boardscopeDescCreatedAt.Default.(func() time.Time)
	documentchunkFields := schema.DocumentChunk{}.Fields()
	_ = documentchunkFields
	// documentchunkDescCreatedAt is the schema descriptor for created_at field.
	documentchunkDescCreatedAt := documentchunkFields[6].Descriptor()
	// documentchunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentchunk.DefaultCreatedAt = documentchunkDescCreatedAt.Default.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[4].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[5].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
}
