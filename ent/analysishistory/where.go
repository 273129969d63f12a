// Code generated by ent, DO NOT EDIT.

package analysishistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldLTE(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldTicketID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldSessionID, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldAnalyzedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotIn(FieldTicketID, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotIn(FieldSessionID, vs...))
}

// CriticalityEQ applies the EQ predicate on the "criticality" field.
func CriticalityEQ(v Criticality) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldCriticality, v))
}

// CriticalityNEQ applies the NEQ predicate on the "criticality" field.
func CriticalityNEQ(v Criticality) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNEQ(FieldCriticality, v))
}

// CriticalityIn applies the In predicate on the "criticality" field.
func CriticalityIn(vs ...Criticality) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIn(FieldCriticality, vs...))
}

// CriticalityNotIn applies the NotIn predicate on the "criticality" field.
func CriticalityNotIn(vs ...Criticality) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotIn(FieldCriticality, vs...))
}

// JustificationIsNil applies the IsNil predicate on the "justification" field.
func JustificationIsNil() predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIsNull(FieldJustification))
}

// JustificationNotNil applies the NotNil predicate on the "justification" field.
func JustificationNotNil() predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotNull(FieldJustification))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.FieldLTE(FieldAnalyzedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.AnalysisHistory {
	return predicate.AnalysisHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AnalysisHistory {
	return predicate.AnalysisHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AnalysisSession) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisHistory) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisHistory) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisHistory) predicate.AnalysisHistory {
	return predicate.AnalysisHistory(sql.NotPredicates(p))
}
