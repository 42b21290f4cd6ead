// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

// View is the dataset collaborator a Registry pushes its combined predicate
// into. A grid component typically adapts its own data provider to this
// interface.
type View[T any] interface {
	// SetFilter replaces the view's row filter.
	SetFilter(pred func(T) bool)
	// ClearFilter resets the view to show every row.
	ClearFilter()
}

// ListView is the in-memory View backed by a slice of rows.
type ListView[T any] struct {
	items []T
	pred  func(T) bool
}

// NewListView wraps items in an unfiltered ListView. The slice is not
// copied; callers should not mutate it while the view is in use.
func NewListView[T any](items []T) *ListView[T] {
	return &ListView[T]{items: items}
}

// SetFilter implements View.
func (v *ListView[T]) SetFilter(pred func(T) bool) {
	v.pred = pred
}

// ClearFilter implements View.
func (v *ListView[T]) ClearFilter() {
	v.pred = nil
}

// Items returns the rows passing the current filter. With no filter set the
// full backing slice is returned.
func (v *ListView[T]) Items() []T {
	if v.pred == nil {
		return v.items
	}

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var result []T
	for _, item := range v.items {
		if v.pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// All returns the unfiltered backing slice.
func (v *ListView[T]) All() []T {
	return v.items
}
