// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cellfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridutil/gridutil/filter"
)

type person struct {
	Name   string
	Age    float64
	Born   time.Time
	Active bool
}

var testPeople = []person{
	{Name: "alice", Age: 34, Born: time.Date(1990, time.March, 2, 10, 0, 0, 0, time.UTC), Active: true},
	{Name: "bob", Age: 5, Born: time.Date(2019, time.June, 20, 0, 0, 0, 0, time.UTC), Active: false},
	{Name: "carol", Age: 61, Born: time.Date(1963, time.January, 5, 23, 59, 59, 999*int(time.Millisecond), time.UTC), Active: true},
}

func newTestRegistry() (*Registry[person], *ListView[person]) {
	props := NewPropertySet[person]()
	props.Define("name", PropString, func(p person) interface{} { return p.Name })
	props.Define("age", PropNumber, func(p person) interface{} { return p.Age })
	props.Define("born", PropDate, func(p person) interface{} { return p.Born })
	props.Define("active", PropBool, func(p person) interface{} { return p.Active })

	view := NewListView(testPeople)
	return New[person](view, props), view
}

func names(items []person) []string {
	var result []string
	for _, p := range items {
		result = append(result, p.Name)
	}
	return result
}

func TestRegistrySetAndRemove(t *testing.T) {
	r, view := newTestRegistry()

	key, err := r.NewKey("name", "name")
	require.NoError(t, err)

	notified := 0
	r.RegisterListener(func() { notified++ })

	r.SetFilter(key, filter.StringMatch{Needle: "a"})
	assert.Equal(t, []string{"alice", "carol"}, names(view.Items()))
	assert.Equal(t, 1, notified)

	// Replacing the predicate under the same key keeps one entry.
	r.SetFilter(key, filter.StringMatch{Needle: "bob"})
	assert.Equal(t, []string{"bob"}, names(view.Items()))
	assert.Equal(t, []string{"name"}, r.ActiveColumnIDs())
	assert.Equal(t, 2, notified)

	r.RemoveFilter(key)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(view.Items()))
	assert.Equal(t, 3, notified)
}

func TestRegistryRemoveAbsentIsNoOp(t *testing.T) {
	r, _ := newTestRegistry()

	key, err := r.NewKey("age", "age")
	require.NoError(t, err)

	notified := 0
	r.RegisterListener(func() { notified++ })

	r.RemoveFilter(key)
	assert.Zero(t, notified)
	assert.Empty(t, r.ActiveColumnIDs())
}

func TestRegistryConjunction(t *testing.T) {
	r, view := newTestRegistry()

	nameKey, err := r.NewKey("name", "name")
	require.NoError(t, err)
	ageKey, err := r.NewKey("age", "age")
	require.NoError(t, err)

	r.SetFilter(nameKey, filter.StringMatch{Needle: "a"})
	r.SetFilter(ageKey, filter.Between{Low: 0, High: 40})

	assert.Equal(t, []string{"alice"}, names(view.Items()))
	assert.Equal(t, []string{"age", "name"}, r.ActiveColumnIDs())

	assert.True(t, r.Matches(testPeople[0]))
	assert.False(t, r.Matches(testPeople[1]))
	assert.False(t, r.Matches(testPeople[2]))
}

func TestRegistryMatchesWithNoFilters(t *testing.T) {
	r, _ := newTestRegistry()

	for _, p := range testPeople {
		assert.True(t, r.Matches(p))
	}
}

func TestRegistryNewKeyUnknownProperty(t *testing.T) {
	r, _ := newTestRegistry()

	_, err := r.NewKey("col", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "propertyId nope not available")
}

func TestRegistrySetFilterUnknownPropertyIgnored(t *testing.T) {
	r, view := newTestRegistry()

	// A hand-built key that bypassed NewKey must not poison the registry.
	r.SetFilter(Key{ColumnID: "col", PropertyID: "nope"}, filter.Equal{Value: 1})
	assert.Empty(t, r.ActiveColumnIDs())
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(view.Items()))
}

func TestRegistryClearAll(t *testing.T) {
	r, view := newTestRegistry()

	text, err := r.TextFilter("name", "name", false, false)
	require.NoError(t, err)
	number, err := r.NumberFilter("age", "age", NumberRangeConfig{Kind: FloatKind})
	require.NoError(t, err)

	text.SetValue("a")
	require.NoError(t, number.SetLow("10"))

	// A predicate set directly, without a component, is swept too.
	activeKey, err := r.NewKey("active", "active")
	require.NoError(t, err)
	r.SetFilter(activeKey, filter.Equal{Value: true})

	notified := 0
	r.RegisterListener(func() { notified++ })

	r.ClearAll()

	// One recompute, one notification, regardless of entry count.
	assert.Equal(t, 1, notified)
	assert.Empty(t, r.ActiveColumnIDs())
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(view.Items()))
	assert.Empty(t, text.Value())
	assert.Empty(t, number.Low())

	// Clearing an already-empty registry still notifies once.
	r.ClearAll()
	assert.Equal(t, 2, notified)
}

func TestRegistryActiveColumnIDsDedup(t *testing.T) {
	r, _ := newTestRegistry()

	k1, err := r.NewKey("person", "name")
	require.NoError(t, err)
	k2, err := r.NewKey("person", "age")
	require.NoError(t, err)

	r.SetFilter(k1, filter.StringMatch{Needle: "a"})
	r.SetFilter(k2, filter.Between{Low: 0, High: 100})

	assert.Equal(t, []string{"person"}, r.ActiveColumnIDs())
}

func TestRegistryListeners(t *testing.T) {
	r, _ := newTestRegistry()

	key, err := r.NewKey("name", "name")
	require.NoError(t, err)

	first, second := 0, 0
	id := r.RegisterListener(func() { first++ })
	r.RegisterListener(func() { second++ })

	r.SetFilter(key, filter.StringMatch{Needle: "a"})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	r.UnregisterListener(id)
	r.RemoveFilter(key)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	// Unknown handles are a no-op.
	r.UnregisterListener(999)
}

func TestRegistryListenerPanicIsolated(t *testing.T) {
	r, _ := newTestRegistry()

	key, err := r.NewKey("name", "name")
	require.NoError(t, err)

	called := false
	r.RegisterListener(func() { panic("listener boom") })
	r.RegisterListener(func() { called = true })

	assert.NotPanics(t, func() {
		r.SetFilter(key, filter.StringMatch{Needle: "a"})
	})
	assert.True(t, called)
}

func TestRegistryCustomFilter(t *testing.T) {
	r, view := newTestRegistry()

	key, err := r.NewKey("active", "active")
	require.NoError(t, err)

	c := &customComponent{}
	c.attach = func() { r.SetFilter(key, filter.Equal{Value: true}) }
	c.detach = func() { r.RemoveFilter(key) }
	r.CustomFilter(key, c)
	assert.Same(t, Component(c), r.Component(key))

	c.attach()
	assert.Equal(t, []string{"alice", "carol"}, names(view.Items()))

	r.ClearAll()
	assert.True(t, c.cleared)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(view.Items()))
}

type customComponent struct {
	attach  func()
	detach  func()
	cleared bool
}

func (c *customComponent) Clear() {
	c.cleared = true
	c.detach()
}
