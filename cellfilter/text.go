// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import "github.com/gridutil/gridutil/filter"

// TextComponent is the headless text-input filter. A non-empty value
// attaches a StringMatch predicate; an empty value detaches it.
type TextComponent struct {
	bind       binding
	value      string
	ignoreCase bool
	prefixOnly bool
}

// TextFilter attaches a text filter input to the column. ignoreCase and
// prefixOnly carry through to the StringMatch predicates the component
// produces.
func (r *Registry[T]) TextFilter(columnID, propertyID string, ignoreCase, prefixOnly bool) (*TextComponent, error) {
	key, err := r.NewKey(columnID, propertyID)
	if err != nil {
		return nil, err
	}

	c := &TextComponent{
		bind:       r.bind(key),
		ignoreCase: ignoreCase,
		prefixOnly: prefixOnly,
	}
	r.components[key] = c
	return c, nil
}

// SetValue updates the input text and syncs the column's predicate.
func (c *TextComponent) SetValue(value string) {
	c.value = value
	if value == "" {
		c.bind.remove()
		return
	}
	c.bind.replace(filter.StringMatch{
		Needle:     value,
		IgnoreCase: c.ignoreCase,
		PrefixOnly: c.prefixOnly,
	})
}

// Value returns the current input text.
func (c *TextComponent) Value() string {
	return c.value
}

// Clear implements Component.
func (c *TextComponent) Clear() {
	c.SetValue("")
}
