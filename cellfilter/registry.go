// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import (
	"sort"

	"github.com/apex/log"

	"github.com/gridutil/gridutil/filter"
)

// Key identifies a filterable column: the grid-facing columnID plus the
// propertyID the predicate reads from each row. Two keys are the same filter
// slot when both strings match. Keys must be created through Registry.NewKey
// so the propertyID is validated up front.
type Key struct {
	ColumnID   string
	PropertyID string
}

type listener struct {
	id int
	fn func()
}

// Registry owns the set of active column predicates for one dataset view.
// It rebuilds the conjunctive row filter on every mutation and keeps the
// view and the registered change listeners in sync.
//
// A Registry is not safe for concurrent use. Drive it from the single
// goroutine that processes input events.
type Registry[T any] struct {
	props      *PropertySet[T]
	view       View[T]
	assigned   map[Key]filter.Predicate
	components map[Key]Component
	combined   func(T) bool
	listeners  []listener
	nextID     int

	// suppress holds back per-entry refresh/notify while ClearAll resets
	// every component, so the whole sweep costs one recompute and one
	// notification.
	suppress bool
}

// New returns a Registry bound to view and props. view may be nil when only
// Matches-based evaluation is wanted.
func New[T any](view View[T], props *PropertySet[T]) *Registry[T] {
	return &Registry[T]{
		props:      props,
		view:       view,
		assigned:   make(map[Key]filter.Predicate),
		components: make(map[Key]Component),
	}
}

// NewKey validates propertyID against the property set and returns the Key
// for (columnID, propertyID). An unknown propertyID is a configuration
// error.
func (r *Registry[T]) NewKey(columnID, propertyID string) (Key, error) {
	if _, err := r.props.Property(propertyID); err != nil {
		return Key{}, err
	}
	return Key{ColumnID: columnID, PropertyID: propertyID}, nil
}

// SetFilter inserts or replaces the predicate for key, then recomputes the
// combined filter, applies it to the view and notifies listeners. Keys not
// created through NewKey that name an unknown property are logged and
// ignored.
func (r *Registry[T]) SetFilter(key Key, pred filter.Predicate) {
	if _, err := r.props.Property(key.PropertyID); err != nil {
		log.Errorf("set filter: %v", err)
		return
	}

	r.assigned[key] = pred
	if r.suppress {
		return
	}
	r.refresh()
	r.notify()
}

// RemoveFilter drops key's predicate if present. Removing a key that holds
// no predicate is a no-op and dispatches no notification.
func (r *Registry[T]) RemoveFilter(key Key) {
	if _, ok := r.assigned[key]; !ok {
		return
	}

	delete(r.assigned, key)
	if r.suppress {
		return
	}
	r.refresh()
	r.notify()
}

// ClearAll resets every registered component to empty and removes every
// predicate. The combined filter is recomputed once and listeners are
// notified once, regardless of how many entries were active.
func (r *Registry[T]) ClearAll() {
	r.suppress = true
	for _, c := range r.components {
		c.Clear()
	}
	r.suppress = false

	// Components detach their own entries when cleared. Sweep whatever is
	// left so custom components can't strand a predicate.
	for key := range r.assigned {
		delete(r.assigned, key)
	}

	r.refresh()
	r.notify()
}

// ActiveColumnIDs returns the sorted, de-duplicated columnIDs that currently
// hold a predicate. Two keys sharing a columnID contribute one entry.
func (r *Registry[T]) ActiveColumnIDs() []string {
	seen := make(map[string]bool, len(r.assigned))
	for key := range r.assigned {
		seen[key.ColumnID] = true
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Matches reports whether row passes the combined predicate. With no active
// filters every row passes.
func (r *Registry[T]) Matches(row T) bool {
	if r.combined == nil {
		return true
	}
	return r.combined(row)
}

// RegisterListener adds a change listener invoked after every applied
// mutation, and returns the handle to unregister it with.
func (r *Registry[T]) RegisterListener(fn func()) int {
	r.nextID++
	r.listeners = append(r.listeners, listener{id: r.nextID, fn: fn})
	return r.nextID
}

// UnregisterListener removes the listener registered under id. Unknown ids
// are a no-op.
func (r *Registry[T]) UnregisterListener(id int) {
	for i, l := range r.listeners {
		if l.id == id {
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// CustomFilter attaches a caller-built component under key so that ClearAll
// resets it alongside the built-in components. The component drives
// SetFilter/RemoveFilter itself.
func (r *Registry[T]) CustomFilter(key Key, c Component) {
	r.components[key] = c
}

// Component returns the component registered for key, or nil.
func (r *Registry[T]) Component(key Key) Component {
	return r.components[key]
}

// bind wraps key into the replace/remove callbacks a component drives.
func (r *Registry[T]) bind(key Key) binding {
	return binding{
		replace: func(pred filter.Predicate) { r.SetFilter(key, pred) },
		remove:  func() { r.RemoveFilter(key) },
	}
}

// refresh rebuilds the combined predicate from scratch and pushes it into
// the view. An empty active set clears the view instead.
func (r *Registry[T]) refresh() {
	if len(r.assigned) == 0 {
		r.combined = nil
		if r.view != nil {
			r.view.ClearFilter()
		}
		return
	}

	r.combined = r.rowPredicate()
	if r.view != nil {
		r.view.SetFilter(r.combined)
	}
}

// rowPredicate builds the short-circuiting conjunction over all assigned
// column predicates, each paired with its property getter.
func (r *Registry[T]) rowPredicate() func(T) bool {
	type boundPredicate struct {
		get  Getter[T]
		pred filter.Predicate
	}

	bound := make([]boundPredicate, 0, len(r.assigned))
	for key, pred := range r.assigned {
		get, err := r.props.Getter(key.PropertyID)
		if err != nil {
			// Keys are validated on creation, so this only trips on
			// hand-built keys that bypassed NewKey.
			log.Errorf("combined filter: %v", err)
			continue
		}
		bound = append(bound, boundPredicate{get: get, pred: pred})
	}

	return func(row T) bool {
		for _, b := range bound {
			if !b.pred.Matches(b.get(row)) {
				return false
			}
		}
		return true
	}
}

// notify invokes listeners in registration order. A panicking listener is
// logged and must not prevent the remaining listeners from running.
func (r *Registry[T]) notify() {
	for _, l := range append([]listener(nil), r.listeners...) {
		func() {
			defer func() {
				if p := recover(); p != nil {
					log.Errorf("filter listener panic: %v", p)
				}
			}()
			l.fn()
		}()
	}
}
