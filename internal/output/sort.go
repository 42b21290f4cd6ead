// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortField is one parsed term of a --sort spec.
type sortField struct {
	key           string
	descending    bool
	caseSensitive bool
}

// parseSortSpec splits the comma separated --sort value into fields. A
// leading - means descending, a leading ! means case sensitive comparison.
func parseSortSpec(spec string) []sortField {
	parts := strings.Split(spec, ",")
	fields := make([]sortField, 0, len(parts))
	for _, part := range parts {
		f := sortField{key: part}
		if rest, ok := strings.CutPrefix(f.key, "-"); ok {
			f.key = rest
			f.descending = true
		}
		if rest, ok := strings.CutPrefix(f.key, "!"); ok {
			f.key = rest
			f.caseSensitive = true
		}
		fields = append(fields, f)
	}
	return fields
}

// orderValues orders two row values under a sort field. JSON numbers compare
// numerically on their integer part; everything else falls back to the string
// rendering, which also covers bools.
func orderValues(a, b interface{}, caseSensitive bool) int {
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	if aNum && bNum {
		switch {
		case int(af) < int(bf):
			return -1
		case int(af) > int(bf):
			return 1
		default:
			return 0
		}
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !caseSensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

// SortDataset sorts the result set in place per the --sort spec, applying
// each field in order until one differentiates the pair.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	fields := parseSortSpec(spec)

	sort.SliceStable(resultSet, func(one, two int) bool {
		for _, f := range fields {
			c := orderValues(resultSet[one][f.key], resultSet[two][f.key], f.caseSensitive)
			if c == 0 {
				continue
			}
			if f.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
