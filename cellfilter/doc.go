// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cellfilter tracks per-column filter inputs for a dataset view and
// combines their predicates into a single conjunctive row filter.
//
// The Registry is the hub. Each filterable column is identified by a Key, a
// (columnID, propertyID) pair whose propertyID must resolve against the
// registry's PropertySet at key-creation time. Filter inputs are headless
// Components (text, combo, number range, date range) that push a predicate
// into the registry when their value changes and detach it when cleared.
//
// On every mutation the registry rebuilds the conjunction over all active
// column predicates, pushes it to the bound View, and notifies change
// listeners in registration order. With no active filters the view is reset
// to accept every row.
//
// All registry access is expected to happen on a single goroutine, the way a
// UI event loop delivers input events. The registry performs no locking.
//
// A minimal wiring looks like:
//
//	props := cellfilter.NewPropertySet[row]()
//	props.Define("name", cellfilter.PropString, func(r row) interface{} { return r.Name })
//
//	view := cellfilter.NewListView(rows)
//	reg := cellfilter.New(view, props)
//
//	name, _ := reg.TextFilter("name", "name", true, false)
//	name.SetValue("abc")
//	filtered := view.Items()
package cellfilter
