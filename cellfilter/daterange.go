// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import (
	"fmt"
	"time"

	"github.com/gridutil/gridutil/filter"
)

// Default sentinels closing open-ended date ranges. Callers with
// domain-specific horizons inject their own via DateRangeConfig.
var (
	DefaultDateFloor   = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultDateCeiling = time.Date(2999, time.December, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
)

// DateRangeConfig tunes a DateRangeComponent.
type DateRangeConfig struct {
	// Floor and Ceiling close open-ended ranges. Zero values fall back to
	// DefaultDateFloor and DefaultDateCeiling.
	Floor   time.Time
	Ceiling time.Time
	// ExcludeEndOfDay pins an explicit high bound to 00:00:00.000 of its
	// calendar day. The default includes the whole day by shifting the
	// bound to 23:59:59.999.
	ExcludeEndOfDay bool
}

// DateRangeComponent is the headless two-field date range input. Low and
// high are each optional calendar days:
//
//   - both unset: the column's predicate is detached
//   - both set and equal: degrades to an Equal predicate on the day's start
//   - one set: the missing side closes with the configured Floor or Ceiling
//   - otherwise: an inclusive Between predicate, the low bound pinned to the
//     start of its day and the high bound normalized per ExcludeEndOfDay
type DateRangeComponent struct {
	bind binding
	cfg  DateRangeConfig
	low  *time.Time
	high *time.Time
}

// DateFilter attaches a date range filter input to the column. The property
// must be declared PropDate; anything else is a configuration error.
func (r *Registry[T]) DateFilter(columnID, propertyID string, cfg DateRangeConfig) (*DateRangeComponent, error) {
	key, err := r.NewKey(columnID, propertyID)
	if err != nil {
		return nil, err
	}

	prop, _ := r.props.Property(propertyID)
	if prop.Kind != PropDate {
		return nil, fmt.Errorf("propertyId %s is not of type date (got %s)", propertyID, prop.Kind)
	}

	c := &DateRangeComponent{bind: r.bind(key), cfg: cfg}
	r.components[key] = c
	return c, nil
}

// SetLow sets the low day.
func (c *DateRangeComponent) SetLow(day time.Time) {
	d := day
	c.low = &d
	c.update()
}

// ClearLow unsets the low day, leaving the range open at the bottom.
func (c *DateRangeComponent) ClearLow() {
	c.low = nil
	c.update()
}

// SetHigh sets the high day.
func (c *DateRangeComponent) SetHigh(day time.Time) {
	d := day
	c.high = &d
	c.update()
}

// ClearHigh unsets the high day, leaving the range open at the top.
func (c *DateRangeComponent) ClearHigh() {
	c.high = nil
	c.update()
}

// Low returns the low day and whether it is set.
func (c *DateRangeComponent) Low() (time.Time, bool) {
	if c.low == nil {
		return time.Time{}, false
	}
	return *c.low, true
}

// High returns the high day and whether it is set.
func (c *DateRangeComponent) High() (time.Time, bool) {
	if c.high == nil {
		return time.Time{}, false
	}
	return *c.high, true
}

// Clear implements Component.
func (c *DateRangeComponent) Clear() {
	c.low, c.high = nil, nil
	c.update()
}

// update syncs the column's predicate with the current bound pair.
func (c *DateRangeComponent) update() {
	if c.low == nil && c.high == nil {
		c.bind.remove()
		return
	}

	// Equal bounds collapse into the simpler predicate kind. The parsed
	// values are compared, not the input widgets.
	if c.low != nil && c.high != nil && c.low.Equal(*c.high) {
		c.bind.replace(filter.Equal{Value: startOfDay(*c.low)})
		return
	}

	low := c.floor()
	if c.low != nil {
		low = startOfDay(*c.low)
	}
	high := c.ceiling()
	if c.high != nil {
		high = endOfDay(*c.high, c.cfg.ExcludeEndOfDay)
	}
	c.bind.replace(filter.Between{Low: low, High: high})
}

func (c *DateRangeComponent) floor() time.Time {
	if c.cfg.Floor.IsZero() {
		return DefaultDateFloor
	}
	return c.cfg.Floor
}

func (c *DateRangeComponent) ceiling() time.Time {
	if c.cfg.Ceiling.IsZero() {
		return DefaultDateCeiling
	}
	return c.cfg.Ceiling
}

// startOfDay pins t to 00:00:00.000 of its calendar day.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// endOfDay pins t to 23:59:59.999 of its calendar day, or to the day's
// start when the end of day is excluded.
func endOfDay(t time.Time, exclude bool) time.Time {
	if exclude {
		return startOfDay(t)
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999*int(time.Millisecond), t.Location())
}
