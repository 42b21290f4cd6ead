// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import "github.com/gridutil/gridutil/filter"

// Component is the capability every cell-filter input implements: reset the
// input to empty, which detaches the column's predicate. Any value holder
// satisfying it can plug into a Registry via CustomFilter.
type Component interface {
	Clear()
}

// binding carries the registry callbacks a component drives on value
// changes: replace the column's predicate or remove it entirely.
type binding struct {
	replace func(pred filter.Predicate)
	remove  func()
}
