// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

// Package filter builds constraint trees for the Meridian query-filter
// grammar and serializes them to compact JSON.
//
// Each constraint maps a field name to a single operator and operand:
//
//	{"status": {"_eq": "published"}}
//
// The two emptiness operators are the exception; the field maps to the
// bare operator name with no operand:
//
//	{"tags": "_empty"}
//
// Constraints on distinct fields accumulate in one expression.  A
// second constraint on the same field replaces the first.  Expressions
// compose under the special "_and" and "_or" keys, whose operands are
// lists of nested constraint maps; repeated calls append to the list:
//
//	{"_or": [{"status": {"_eq": "draft"}}, {"status": {"_eq": "published"}}]}
//
// Only the outermost expression is ever rendered to text.  The
// rendering is canonical (object keys sorted) so that a given
// expression always serializes to the same bytes.
package filter

import (
	"errors"

	"github.com/ugorji/go/codec"
)

// Operator names exactly as they appear on the wire.
const (
	OpEq           = "_eq"
	OpNeq          = "_neq"
	OpLt           = "_lt"
	OpLte          = "_lte"
	OpGt           = "_gt"
	OpGte          = "_gte"
	OpIn           = "_in"
	OpNin          = "_nin"
	OpNull         = "_null"
	OpNNull        = "_nnull"
	OpContains     = "_contains"
	OpIContains    = "_icontains"
	OpNContains    = "_ncontains"
	OpStartsWith   = "_starts_with"
	OpIStartsWith  = "_istarts_with"
	OpNStartsWith  = "_nstarts_with"
	OpNIStartsWith = "_nistarts_with"
	OpEndsWith     = "_ends_with"
	OpIEndsWith    = "_iends_with"
	OpNEndsWith    = "_nends_with"
	OpNIEndsWith   = "_niends_with"
	OpBetween      = "_between"
	OpNBetween     = "_nbetween"
	OpEmpty        = "_empty"
	OpNEmpty       = "_nempty"
	OpAnd          = "_and"
	OpOr           = "_or"
)

// ErrEmptyField is recorded when a constraint names an empty field.
var ErrEmptyField = errors.New("Filter field name must not be empty")

// ErrNoValues is recorded when In or Nin is given an empty value list.
var ErrNoValues = errors.New("Filter operator requires at least one value")

// ErrEmptyRange is recorded when Between or NotBetween is missing one
// of its bounds.
var ErrEmptyRange = errors.New("Filter range requires both bounds")

// ErrNilExpression is recorded when And or Or is given a nil
// expression to compose with.
var ErrNilExpression = errors.New("Cannot compose with a nil filter expression")

// jsonHandle serializes expressions.  Canonical mode sorts object keys
// so rendering is deterministic.
var jsonHandle = newJSONHandle()

func newJSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.Canonical = true
	return h
}

// Expression is one filter constraint tree.  The zero value is an
// empty expression, though New() also renders it immediately so that
// Output holds "{}".  Every mutating call returns the expression so
// constraints can be chained:
//
//	f := filter.New().Eq("status", "published").Gte("year", "2017")
//
// A malformed operand (empty field name, empty value list, missing
// range bound, nil nested expression) records a sticky error in Err;
// later calls become no-ops, so the error surfaces at the call site
// that consumes the expression instead of as silently wrong JSON.
type Expression struct {
	clauses map[string]interface{}

	// Output always holds the current compact-JSON rendering of
	// the expression.  It is refreshed inside every mutating call,
	// so it can be read (for instance, logged) mid-chain.
	Output string

	// Err holds the first operand validation error, if any.
	Err error
}

// New creates an empty expression, which renders as "{}".
func New() *Expression {
	e := &Expression{clauses: make(map[string]interface{})}
	e.refresh()
	return e
}

// Get returns the current compact-JSON rendering of the expression.
// It is always equal to Output.
func (e *Expression) Get() string {
	return e.Output
}

// Len returns the number of top-level constraint clauses.
func (e *Expression) Len() int {
	return len(e.clauses)
}

func (e *Expression) refresh() {
	var out []byte
	encoder := codec.NewEncoderBytes(&out, jsonHandle)
	if err := encoder.Encode(e.clauses); err != nil {
		e.Err = err
		return
	}
	e.Output = string(out)
}

// set stores a valued constraint, replacing any prior constraint on
// the same field.
func (e *Expression) set(field, op string, value interface{}) *Expression {
	if e.Err != nil {
		return e
	}
	if field == "" {
		e.Err = ErrEmptyField
		return e
	}
	if e.clauses == nil {
		e.clauses = make(map[string]interface{})
	}
	e.clauses[field] = map[string]interface{}{op: value}
	e.refresh()
	return e
}

// setBare stores an operand-less constraint: the field maps directly
// to the operator name.  Only the emptiness operators have this shape.
func (e *Expression) setBare(field, op string) *Expression {
	if e.Err != nil {
		return e
	}
	if field == "" {
		e.Err = ErrEmptyField
		return e
	}
	if e.clauses == nil {
		e.clauses = make(map[string]interface{})
	}
	e.clauses[field] = op
	e.refresh()
	return e
}

// Eq constrains field to equal value.
func (e *Expression) Eq(field, value string) *Expression {
	return e.set(field, OpEq, value)
}

// Neq constrains field to not equal value.
func (e *Expression) Neq(field, value string) *Expression {
	return e.set(field, OpNeq, value)
}

// Lt constrains field to be less than value.
func (e *Expression) Lt(field, value string) *Expression {
	return e.set(field, OpLt, value)
}

// Lte constrains field to be less than or equal to value.
func (e *Expression) Lte(field, value string) *Expression {
	return e.set(field, OpLte, value)
}

// Gt constrains field to be greater than value.
func (e *Expression) Gt(field, value string) *Expression {
	return e.set(field, OpGt, value)
}

// Gte constrains field to be greater than or equal to value.
func (e *Expression) Gte(field, value string) *Expression {
	return e.set(field, OpGte, value)
}

// Contains constrains field to contain value, case sensitively.
func (e *Expression) Contains(field, value string) *Expression {
	return e.set(field, OpContains, value)
}

// IContains constrains field to contain value, ignoring case.
func (e *Expression) IContains(field, value string) *Expression {
	return e.set(field, OpIContains, value)
}

// NContains constrains field to not contain value.
func (e *Expression) NContains(field, value string) *Expression {
	return e.set(field, OpNContains, value)
}

// StartsWith constrains field to start with value.
func (e *Expression) StartsWith(field, value string) *Expression {
	return e.set(field, OpStartsWith, value)
}

// IStartsWith constrains field to start with value, ignoring case.
func (e *Expression) IStartsWith(field, value string) *Expression {
	return e.set(field, OpIStartsWith, value)
}

// NStartsWith constrains field to not start with value.
func (e *Expression) NStartsWith(field, value string) *Expression {
	return e.set(field, OpNStartsWith, value)
}

// NIStartsWith constrains field to not start with value, ignoring case.
func (e *Expression) NIStartsWith(field, value string) *Expression {
	return e.set(field, OpNIStartsWith, value)
}

// EndsWith constrains field to end with value.
func (e *Expression) EndsWith(field, value string) *Expression {
	return e.set(field, OpEndsWith, value)
}

// IEndsWith constrains field to end with value, ignoring case.
func (e *Expression) IEndsWith(field, value string) *Expression {
	return e.set(field, OpIEndsWith, value)
}

// NEndsWith constrains field to not end with value.
func (e *Expression) NEndsWith(field, value string) *Expression {
	return e.set(field, OpNEndsWith, value)
}

// NIEndsWith constrains field to not end with value, ignoring case.
func (e *Expression) NIEndsWith(field, value string) *Expression {
	return e.set(field, OpNIEndsWith, value)
}

// In constrains field to equal one of values.
func (e *Expression) In(field string, values []string) *Expression {
	if e.Err != nil {
		return e
	}
	if len(values) == 0 {
		e.Err = ErrNoValues
		return e
	}
	return e.set(field, OpIn, values)
}

// Nin constrains field to equal none of values.
func (e *Expression) Nin(field string, values []string) *Expression {
	if e.Err != nil {
		return e
	}
	if len(values) == 0 {
		e.Err = ErrNoValues
		return e
	}
	return e.set(field, OpNin, values)
}

// Null constrains field to be null.
func (e *Expression) Null(field string) *Expression {
	return e.set(field, OpNull, true)
}

// NotNull constrains field to not be null.
func (e *Expression) NotNull(field string) *Expression {
	return e.set(field, OpNNull, true)
}

// Between constrains field to the inclusive range [low, high].
func (e *Expression) Between(field, low, high string) *Expression {
	if e.Err != nil {
		return e
	}
	if low == "" || high == "" {
		e.Err = ErrEmptyRange
		return e
	}
	return e.set(field, OpBetween, []string{low, high})
}

// NotBetween constrains field to fall outside the range [low, high].
func (e *Expression) NotBetween(field, low, high string) *Expression {
	if e.Err != nil {
		return e
	}
	if low == "" || high == "" {
		e.Err = ErrEmptyRange
		return e
	}
	return e.set(field, OpNBetween, []string{low, high})
}

// Empty constrains field to be empty (empty string or empty list).
func (e *Expression) Empty(field string) *Expression {
	return e.setBare(field, OpEmpty)
}

// NotEmpty constrains field to not be empty.
func (e *Expression) NotEmpty(field string) *Expression {
	return e.setBare(field, OpNEmpty)
}

// compose appends other's clause map, still structured, to the list
// under op.  Unlike field constraints, repeated composition appends
// rather than replaces.
func (e *Expression) compose(op string, other *Expression) *Expression {
	if e.Err != nil {
		return e
	}
	if other == nil {
		e.Err = ErrNilExpression
		return e
	}
	if other.Err != nil {
		e.Err = other.Err
		return e
	}
	if e.clauses == nil {
		e.clauses = make(map[string]interface{})
	}
	list, _ := e.clauses[op].([]interface{})
	e.clauses[op] = append(list, other.clauses)
	e.refresh()
	return e
}

// And requires other to hold in addition to this expression's other
// clauses.  Repeated calls grow the "_and" list.
func (e *Expression) And(other *Expression) *Expression {
	return e.compose(OpAnd, other)
}

// Or requires other as an alternative.  Repeated calls grow the "_or"
// list.
func (e *Expression) Or(other *Expression) *Expression {
	return e.compose(OpOr, other)
}
