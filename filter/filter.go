// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Predicate is a boolean test over a single property value.
type Predicate interface {
	Matches(value interface{}) bool
}

// Equal matches when the property value equals Value. The comparison is
// null-safe and normalizes numeric widths, so int(5) and float64(5) compare
// equal.
type Equal struct {
	Value interface{}
}

// Matches implements Predicate.
func (f Equal) Matches(value interface{}) bool {
	if value == nil || f.Value == nil {
		return value == nil && f.Value == nil
	}

	if a, aOK := toFloat64(value); aOK {
		b, bOK := toFloat64(f.Value)
		return bOK && a == b
	}

	if a, aOK := value.(time.Time); aOK {
		b, bOK := f.Value.(time.Time)
		return bOK && a.Equal(b)
	}

	return reflect.DeepEqual(value, f.Value)
}

// Between matches when Low <= value <= High, inclusive on both ends, using
// the value's natural ordering. Numbers of any width, time.Time and string
// are ordered; values of any other type never match.
type Between struct {
	Low  interface{}
	High interface{}
}

// Matches implements Predicate.
func (f Between) Matches(value interface{}) bool {
	low, ok := compare(f.Low, value)
	if !ok || low > 0 {
		return false
	}

	high, ok := compare(value, f.High)
	return ok && high <= 0
}

// StringMatch matches string values against Needle. PrefixOnly selects
// starts-with semantics instead of substring containment. IgnoreCase folds
// both operands before comparison. Non-string values are matched against
// their default string rendering.
type StringMatch struct {
	Needle     string
	IgnoreCase bool
	PrefixOnly bool
}

// Matches implements Predicate.
func (f StringMatch) Matches(value interface{}) bool {
	if value == nil {
		return false
	}

	s, ok := value.(string)
	if !ok {
		s = fmt.Sprintf("%v", value)
	}

	needle := f.Needle
	if f.IgnoreCase {
		s = strings.ToLower(s)
		needle = strings.ToLower(needle)
	}

	if f.PrefixOnly {
		return strings.HasPrefix(s, needle)
	}
	return strings.Contains(s, needle)
}
