// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gridutil/gridutil/filter"
)

// NumberKind selects the numeric type a range component parses its text
// sub-fields into.
type NumberKind int

const (
	IntKind NumberKind = iota
	FloatKind
)

// String returns the kind's name for error messages.
func (k NumberKind) String() string {
	if k == FloatKind {
		return "float64"
	}
	return "int64"
}

// NumberRangeConfig tunes a NumberRangeComponent.
type NumberRangeConfig struct {
	Kind NumberKind
	// ConvertError overrides the user-facing message returned when a
	// sub-field's text cannot be parsed.
	ConvertError string
}

// NumberRangeComponent is the headless two-field numeric range input. Low
// and high sub-fields are each optional text values:
//
//   - both empty: the column's predicate is detached
//   - both set and equal: degrades to an Equal predicate
//   - one set: the missing side closes with the kind's min or max value
//   - otherwise: an inclusive Between predicate over the parsed bounds
//
// Unparsable text is rejected with a validation error and the active
// predicate, whatever it is, stays untouched.
type NumberRangeComponent struct {
	bind binding
	cfg  NumberRangeConfig
	low  string
	high string
}

// NumberFilter attaches a numeric range filter input to the column. The
// property must be declared PropNumber; anything else is a configuration
// error.
func (r *Registry[T]) NumberFilter(columnID, propertyID string, cfg NumberRangeConfig) (*NumberRangeComponent, error) {
	key, err := r.NewKey(columnID, propertyID)
	if err != nil {
		return nil, err
	}

	prop, _ := r.props.Property(propertyID)
	if prop.Kind != PropNumber {
		return nil, fmt.Errorf("propertyId %s is not of type number (got %s)", propertyID, prop.Kind)
	}

	c := &NumberRangeComponent{bind: r.bind(key), cfg: cfg}
	r.components[key] = c
	return c, nil
}

// SetLow updates the low sub-field. An empty string leaves the range open
// at the bottom.
func (c *NumberRangeComponent) SetLow(text string) error {
	return c.set(&c.low, text)
}

// SetHigh updates the high sub-field. An empty string leaves the range open
// at the top.
func (c *NumberRangeComponent) SetHigh(text string) error {
	return c.set(&c.high, text)
}

// Low returns the low sub-field's current text.
func (c *NumberRangeComponent) Low() string {
	return c.low
}

// High returns the high sub-field's current text.
func (c *NumberRangeComponent) High() string {
	return c.high
}

// Clear implements Component.
func (c *NumberRangeComponent) Clear() {
	c.low, c.high = "", ""
	c.update()
}

func (c *NumberRangeComponent) set(field *string, text string) error {
	text = strings.TrimSpace(text)
	if text != "" {
		if _, err := c.parse(text); err != nil {
			return err
		}
	}

	*field = text
	c.update()
	return nil
}

// update syncs the column's predicate with the current sub-field pair.
func (c *NumberRangeComponent) update() {
	if c.low == "" && c.high == "" {
		c.bind.remove()
		return
	}

	var low, high interface{}
	if c.low != "" {
		low, _ = c.parse(c.low)
	}
	if c.high != "" {
		high, _ = c.parse(c.high)
	}

	// Equal bounds collapse into the simpler predicate kind. Compared by
	// parsed value, not by the raw text.
	if low != nil && high != nil && low == high {
		c.bind.replace(filter.Equal{Value: low})
		return
	}

	if low == nil {
		low = c.boundary(false)
	}
	if high == nil {
		high = c.boundary(true)
	}
	c.bind.replace(filter.Between{Low: low, High: high})
}

func (c *NumberRangeComponent) parse(text string) (interface{}, error) {
	switch c.cfg.Kind {
	case FloatKind:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, c.convertError(text)
		}
		return v, nil
	default:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, c.convertError(text)
		}
		return v, nil
	}
}

// boundary returns the kind's natural limit used to close an open-ended
// range.
func (c *NumberRangeComponent) boundary(upper bool) interface{} {
	switch c.cfg.Kind {
	case FloatKind:
		if upper {
			return math.MaxFloat64
		}
		return -math.MaxFloat64
	default:
		if upper {
			return int64(math.MaxInt64)
		}
		return int64(math.MinInt64)
	}
}

func (c *NumberRangeComponent) convertError(text string) error {
	if c.cfg.ConvertError != "" {
		return errors.New(c.cfg.ConvertError)
	}
	return fmt.Errorf("couldn't convert %q to %s", text, c.cfg.Kind)
}
