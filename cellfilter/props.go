// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import "fmt"

// Getter extracts a single property value from a row.
type Getter[T any] func(row T) interface{}

// PropertyKind declares the value type a property yields. Typed filter
// constructors validate against it so that, for example, a date-range filter
// cannot be attached to a string column.
type PropertyKind int

const (
	PropString PropertyKind = iota
	PropNumber
	PropDate
	PropBool
)

// String returns the kind's name for error messages.
func (k PropertyKind) String() string {
	switch k {
	case PropString:
		return "string"
	case PropNumber:
		return "number"
	case PropDate:
		return "date"
	case PropBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Property pairs a declared kind with its getter.
type Property[T any] struct {
	Kind PropertyKind
	Get  Getter[T]
}

// PropertySet resolves propertyIDs to typed getters on the row type. It is
// the fail-fast boundary for configuration errors: unknown propertyIDs are
// rejected when a Key is created, never deferred to filter time.
type PropertySet[T any] struct {
	props map[string]Property[T]
}

// NewPropertySet returns an empty PropertySet.
func NewPropertySet[T any]() *PropertySet[T] {
	return &PropertySet[T]{props: make(map[string]Property[T])}
}

// Define registers (or redefines) a property under propertyID.
func (ps *PropertySet[T]) Define(propertyID string, kind PropertyKind, get Getter[T]) {
	ps.props[propertyID] = Property[T]{Kind: kind, Get: get}
}

// Property resolves propertyID or reports a configuration error.
func (ps *PropertySet[T]) Property(propertyID string) (Property[T], error) {
	p, ok := ps.props[propertyID]
	if !ok {
		return Property[T]{}, fmt.Errorf("propertyId %s not available", propertyID)
	}
	return p, nil
}

// Getter resolves propertyID to its getter or reports a configuration error.
func (ps *PropertySet[T]) Getter(propertyID string) (Getter[T], error) {
	p, err := ps.Property(propertyID)
	if err != nil {
		return nil, err
	}
	return p.Get, nil
}
