// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyExpression(t *testing.T) {
	e := New()
	assert.Equal(t, "{}", e.Get())
	assert.Equal(t, e.Get(), e.Output)
	assert.Equal(t, 0, e.Len())
	assert.NoError(t, e.Err)
}

// TestZeroValue checks that constraints can be added to a zero-value
// expression, not just one from New().
func TestZeroValue(t *testing.T) {
	var e Expression
	e.Eq("status", "published")
	assert.NoError(t, e.Err)
	assert.JSONEq(t, `{"status":{"_eq":"published"}}`, e.Get())

	var bare Expression
	bare.Empty("tags")
	assert.Equal(t, `{"tags":"_empty"}`, bare.Get())

	var composed Expression
	composed.Or(New().Eq("status", "draft"))
	assert.NoError(t, composed.Err)
	assert.JSONEq(t, `{"_or":[{"status":{"_eq":"draft"}}]}`, composed.Get())
}

func TestEquals(t *testing.T) {
	e := New().Eq("status", "published")
	assert.NoError(t, e.Err)
	assert.JSONEq(t, `{"status":{"_eq":"published"}}`, e.Get())
}

// TestValuedOperators checks the wire name and nesting shape of every
// operator that takes a single string operand.
func TestValuedOperators(t *testing.T) {
	tests := []struct {
		op    string
		build func(*Expression) *Expression
	}{
		{OpEq, func(e *Expression) *Expression { return e.Eq("f", "v") }},
		{OpNeq, func(e *Expression) *Expression { return e.Neq("f", "v") }},
		{OpLt, func(e *Expression) *Expression { return e.Lt("f", "v") }},
		{OpLte, func(e *Expression) *Expression { return e.Lte("f", "v") }},
		{OpGt, func(e *Expression) *Expression { return e.Gt("f", "v") }},
		{OpGte, func(e *Expression) *Expression { return e.Gte("f", "v") }},
		{OpContains, func(e *Expression) *Expression { return e.Contains("f", "v") }},
		{OpIContains, func(e *Expression) *Expression { return e.IContains("f", "v") }},
		{OpNContains, func(e *Expression) *Expression { return e.NContains("f", "v") }},
		{OpStartsWith, func(e *Expression) *Expression { return e.StartsWith("f", "v") }},
		{OpIStartsWith, func(e *Expression) *Expression { return e.IStartsWith("f", "v") }},
		{OpNStartsWith, func(e *Expression) *Expression { return e.NStartsWith("f", "v") }},
		{OpNIStartsWith, func(e *Expression) *Expression { return e.NIStartsWith("f", "v") }},
		{OpEndsWith, func(e *Expression) *Expression { return e.EndsWith("f", "v") }},
		{OpIEndsWith, func(e *Expression) *Expression { return e.IEndsWith("f", "v") }},
		{OpNEndsWith, func(e *Expression) *Expression { return e.NEndsWith("f", "v") }},
		{OpNIEndsWith, func(e *Expression) *Expression { return e.NIEndsWith("f", "v") }},
	}
	for _, test := range tests {
		e := test.build(New())
		if !assert.NoError(t, e.Err, test.op) {
			continue
		}
		assert.JSONEq(t, `{"f":{"`+test.op+`":"v"}}`, e.Get(), test.op)
	}
}

func TestIn(t *testing.T) {
	e := New().In("status", []string{"draft", "published"})
	assert.NoError(t, e.Err)
	assert.JSONEq(t, `{"status":{"_in":["draft","published"]}}`, e.Get())

	e = New().Nin("status", []string{"deleted"})
	assert.NoError(t, e.Err)
	assert.JSONEq(t, `{"status":{"_nin":["deleted"]}}`, e.Get())
}

func TestNull(t *testing.T) {
	e := New().Null("parent")
	assert.JSONEq(t, `{"parent":{"_null":true}}`, e.Get())

	e = New().NotNull("parent")
	assert.JSONEq(t, `{"parent":{"_nnull":true}}`, e.Get())
}

func TestBetween(t *testing.T) {
	e := New().Between("year", "2016", "2018")
	assert.NoError(t, e.Err)
	assert.JSONEq(t, `{"year":{"_between":["2016","2018"]}}`, e.Get())

	e = New().NotBetween("year", "2016", "2018")
	assert.JSONEq(t, `{"year":{"_nbetween":["2016","2018"]}}`, e.Get())
}

// TestEmptyShape checks the operand-less shape: the field maps to the
// bare operator name, not to a nested object.
func TestEmptyShape(t *testing.T) {
	e := New().Empty("tags")
	assert.Equal(t, `{"tags":"_empty"}`, e.Get())

	e = New().NotEmpty("tags")
	assert.Equal(t, `{"tags":"_nempty"}`, e.Get())
}

func TestAndAppends(t *testing.T) {
	a := New().Eq("status", "published")
	b := New().Gte("year", "2017")
	e := New().And(a).And(b)
	assert.NoError(t, e.Err)
	assert.JSONEq(t,
		`{"_and":[{"status":{"_eq":"published"}},{"year":{"_gte":"2017"}}]}`,
		e.Get())
}

func TestOrAppends(t *testing.T) {
	e := New().
		Or(New().Eq("status", "draft")).
		Or(New().Eq("status", "published"))
	assert.NoError(t, e.Err)
	assert.JSONEq(t,
		`{"_or":[{"status":{"_eq":"draft"}},{"status":{"_eq":"published"}}]}`,
		e.Get())
}

// TestNestedComposition checks that nested expressions stay structured
// rather than being embedded as serialized strings.
func TestNestedComposition(t *testing.T) {
	inner := New().Or(New().Empty("tags")).Or(New().Null("tags"))
	e := New().Eq("status", "published").And(inner)
	assert.NoError(t, e.Err)
	assert.JSONEq(t,
		`{"status":{"_eq":"published"},"_and":[{"_or":[{"tags":"_empty"},{"tags":{"_null":true}}]}]}`,
		e.Get())
}

func TestSameFieldOverwrites(t *testing.T) {
	e := New().Eq("status", "draft").Eq("status", "published")
	assert.JSONEq(t, `{"status":{"_eq":"published"}}`, e.Get())

	// A different operator on the same field also replaces.
	e = New().Eq("year", "2017").Gte("year", "2017")
	assert.JSONEq(t, `{"year":{"_gte":"2017"}}`, e.Get())
}

func TestOutputTracksGet(t *testing.T) {
	e := New()
	e.Eq("status", "published")
	assert.Equal(t, e.Get(), e.Output)

	e.Gte("year", "2017")
	assert.Equal(t, e.Get(), e.Output)
}

// TestCanonicalRendering pins the exact serialized bytes: keys sorted,
// no whitespace.
func TestCanonicalRendering(t *testing.T) {
	e := New().Eq("b", "2").Eq("a", "1")
	assert.Equal(t, `{"a":{"_eq":"1"},"b":{"_eq":"2"}}`, e.Get())
}

func TestEmptyFieldName(t *testing.T) {
	e := New().Eq("", "x")
	assert.Equal(t, ErrEmptyField, e.Err)
}

func TestInWithoutValues(t *testing.T) {
	e := New().In("status", nil)
	assert.Equal(t, ErrNoValues, e.Err)
}

func TestBetweenMissingBound(t *testing.T) {
	e := New().Between("year", "2016", "")
	assert.Equal(t, ErrEmptyRange, e.Err)
}

func TestComposeWithNil(t *testing.T) {
	e := New().And(nil)
	assert.Equal(t, ErrNilExpression, e.Err)
}

// TestErrorSticks checks that a validation error freezes the
// expression: later calls change nothing.
func TestErrorSticks(t *testing.T) {
	e := New().Eq("status", "published")
	before := e.Get()
	e.Eq("", "x").Gte("year", "2017")
	assert.Equal(t, ErrEmptyField, e.Err)
	assert.Equal(t, before, e.Get())
}

// TestComposeBadExpression checks that composing with an expression
// carrying an error propagates that error instead of serializing it.
func TestComposeBadExpression(t *testing.T) {
	bad := New().In("status", nil)
	e := New().And(bad)
	assert.Equal(t, ErrNoValues, e.Err)
}
