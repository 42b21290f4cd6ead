// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filter provides the predicate value objects used to test a single
// property value extracted from a dataset row.
//
// Three predicate kinds exist:
//
//   - Equal: null-safe value equality with numeric width normalization
//   - Between: inclusive range check using the value's natural ordering
//   - StringMatch: prefix or substring containment with optional case folding
//
// Predicates are immutable once constructed. They deliberately know nothing
// about rows or columns; the cellfilter registry pairs each predicate with a
// property getter and combines the results conjunctively.
package filter
