// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters turns --filter expressions into cell-filter inputs bound
// to a registry over the candidate dataset.
//
// Filters are specified as key-operator-target expressions and can be
// combined using a configurable delimiter (default: comma). All expressions
// are conjunctive: a row survives only when every filter matches.
//
// Operators include:
//
//   - = : exact match, or an inclusive range when the target is "low..high"
//   - ^ : prefix match
//   - ~ : substring match, case folded
//   - @ : substring match, case sensitive
//
// Range targets may leave either side empty ("count=5.." or "count=..10")
// to keep that end open. Bounds that parse as YYYY-MM-DD days build a date
// range with end-of-day inclusion; anything else is treated numerically.
//
// Examples:
//
//   - "name=my-resource" : name equals "my-resource"
//   - "type^aws_" : type starts with "aws_"
//   - "name~ABC" : name contains "abc" in any case
//   - "count=1..10" : count between 1 and 10 inclusive
//   - "created=2024-01-01..2024-01-05" : created within the days, inclusive
//
// Filter keys are matched against the OutputKey of attributes (see attrs
// package).
//
// The BuildFilters function parses the specification string. Invalid
// expressions are logged and skipped, allowing partial filter sets to be
// processed. FilterDataset applies the parsed set through a
// cellfilter.Registry and projects the surviving rows onto the attribute
// list.
package filters
