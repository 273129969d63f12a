// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisHistory is the predicate function for analysishistory builders.
type AnalysisHistory func(*sql.Selector)

// AnalysisSession is the predicate function for analysissession builders.
type AnalysisSession func(*sql.Selector)

// BoardConfig is the predicate function for boardconfig builders.
type BoardConfig func(*sql.Selector)

// BoardScope is the predicate function for boardscope builders.
type BoardScope func(*sql.Selector)

// DocumentChunk is the predicate function for documentchunk builders.
type DocumentChunk func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)
