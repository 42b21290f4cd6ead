// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import (
	"fmt"
	"reflect"

	"github.com/gridutil/gridutil/filter"
)

// ComboComponent is the headless single-select filter over a fixed option
// list. A selection attaches an Equal predicate; deselecting detaches it.
type ComboComponent struct {
	bind     binding
	options  []interface{}
	selected interface{}
}

// ComboFilter attaches a single-select filter input to the column. options
// is the fixed choice list presented to the user.
func (r *Registry[T]) ComboFilter(columnID, propertyID string, options []interface{}) (*ComboComponent, error) {
	key, err := r.NewKey(columnID, propertyID)
	if err != nil {
		return nil, err
	}

	c := &ComboComponent{
		bind:    r.bind(key),
		options: options,
	}
	r.components[key] = c
	return c, nil
}

// BoolFilter attaches a two-option true/false combo filter to the column.
func (r *Registry[T]) BoolFilter(columnID, propertyID string) (*ComboComponent, error) {
	return r.ComboFilter(columnID, propertyID, []interface{}{true, false})
}

// Select sets the current choice. A nil value deselects and detaches the
// predicate. Selecting a value not present in the option list is an input
// error and leaves the current filter untouched.
func (c *ComboComponent) Select(value interface{}) error {
	if value == nil {
		c.selected = nil
		c.bind.remove()
		return nil
	}

	found := false
	for _, option := range c.options {
		if reflect.DeepEqual(option, value) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%v is not among the configured options", value)
	}

	c.selected = value
	c.bind.replace(filter.Equal{Value: value})
	return nil
}

// Selected returns the current choice, or nil when unselected.
func (c *ComboComponent) Selected() interface{} {
	return c.selected
}

// Options returns the fixed choice list.
func (c *ComboComponent) Options() []interface{} {
	return c.options
}

// Clear implements Component.
func (c *ComboComponent) Clear() {
	_ = c.Select(nil)
}
