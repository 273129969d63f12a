// Code generated by ent, DO NOT EDIT.

package analysissession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldID, id))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldReference, v))
}

// Reanalyse applies equality check predicate on the "reanalyse" field. It's identical to ReanalyseEQ.
func Reanalyse(v bool) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldReanalyse, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContainsFold(FieldReference, v))
}

// ReanalyseEQ applies the EQ predicate on the "reanalyse" field.
func ReanalyseEQ(v bool) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldReanalyse, v))
}

// ReanalyseNEQ applies the NEQ predicate on the "reanalyse" field.
func ReanalyseNEQ(v bool) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldReanalyse, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasScopes applies the HasEdge predicate on the "scopes" edge.
func HasScopes() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScopesTable, ScopesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScopesWith applies the HasEdge predicate on the "scopes" edge with a given conditions (other predicates).
func HasScopesWith(preds ...predicate.BoardScope) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newScopesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHistories applies the HasEdge predicate on the "histories" edge.
func HasHistories() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HistoriesTable, HistoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoriesWith applies the HasEdge predicate on the "histories" edge with a given conditions (other predicates).
func HasHistoriesWith(preds ...predicate.AnalysisHistory) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newHistoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.NotPredicates(p))
}
