// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/gridutil/gridutil/cellfilter"
	"github.com/gridutil/gridutil/filter"
	"github.com/gridutil/gridutil/internal/attrs"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. Operators are one of = ^ ~ @. Examples:
// "name=value" (exact or range), "name^aws" (prefix), "name~abc"
// (substring, case folded), "name@abc" (substring, case sensitive).
var filterRegex = regexp.MustCompile(`^([^=^~@]+)([=^~@])(.*)$`)

// dateRegex recognizes a plain calendar-day literal.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Filter is a single parsed --filter expression. A Value containing ".."
// under the = operand is a range and is carried in Low/High instead.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
	IsRange bool   `yaml:"isRange" json:"IsRange"`
	Low     string `yaml:"low" json:"Low"`
	High    string `yaml:"high" json:"High"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported operand or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	// Don't prealloc because we don't know what len will be and performance is
	// not critical.
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override for situations where the value
	// contains commas.
	delim := ","
	if d, ok := os.LookupEnv("GRIDUTIL_FILTER_DELIM"); ok {
		delim = d
	}

	filterSpecs := strings.Split(spec, delim)
	for _, filterSpec := range filterSpecs {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[1] is the key
		// parts[2] is the operator
		// parts[3] is the target

		f := Filter{
			Key:     strings.TrimSpace(parts[1]),
			Operand: parts[2],
			Value:   parts[3],
		}

		if f.Key == "" {
			log.Error("invalid filter: empty key in " + filterSpec)
			continue
		}

		// A ".." target under = is a range. Either side may be empty to
		// leave the range open on that end.
		if f.Operand == "=" && strings.Contains(f.Value, "..") {
			bounds := strings.SplitN(f.Value, "..", 2)
			f.IsRange = true
			f.Low = strings.TrimSpace(bounds[0])
			f.High = strings.TrimSpace(bounds[1])
			if f.Low == "" && f.High == "" {
				log.Error("invalid filter: empty range in " + filterSpec)
				continue
			}
		}

		filters = append(filters, f)
	}

	return filters
}

// FilterDataset returns a result set filtered per the provided spec. It is
// the public entry point used by SliceDiceSpit. The filters are pushed
// through a cellfilter registry over the candidate rows, one filter input
// per expression, and the registry's combined predicate decides membership.
func FilterDataset(candidates gjson.Result, attrList attrs.AttrList, spec string) []map[string]interface{} {
	filters := BuildFilters(spec)
	rows := candidates.Array()

	view := cellfilter.NewListView(rows)
	props := cellfilter.NewPropertySet[gjson.Result]()
	registry := cellfilter.New[gjson.Result](view, props)

	for i, f := range filters {
		path, ok := resolveKey(f.Key, attrList)
		if !ok {
			log.Errorf("filter key not found: %s", f.Key)
			continue
		}
		// Each expression gets its own registry slot so repeats of the same
		// key stay conjunctive instead of replacing each other.
		slot := fmt.Sprintf("%s#%d", f.Key, i)
		bindFilter(registry, props, f, path, slot)
	}

	// Project the surviving rows onto the output attributes.
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filteredResults []map[string]interface{}
	for _, row := range view.Items() {
		result := make(map[string]interface{})
		for i := range attrList {
			attr := attrList[i]
			// Transform is intentionally deferred to the output phase.
			result[attr.OutputKey] = cellfilter.JSONGetter(attr.Key)(row)
		}
		filteredResults = append(filteredResults, result)
	}

	return filteredResults
}

// bindFilter defines the filter's property on props under slot and attaches
// the matching filter input to the registry. Failures are logged and the
// expression is skipped, which allows invalid filters to be reported without
// rejecting the entire dataset.
func bindFilter(registry *cellfilter.Registry[gjson.Result], props *cellfilter.PropertySet[gjson.Result],
	f Filter, path, slot string) {
	switch {
	case f.IsRange && isDateRange(f):
		props.Define(slot, cellfilter.PropDate, cellfilter.JSONDateGetter(path))
		c, err := registry.DateFilter(f.Key, slot, cellfilter.DateRangeConfig{})
		if err != nil {
			log.Errorf("date filter %s: %v", f.Key, err)
			return
		}
		if f.Low != "" {
			day, err := time.Parse("2006-01-02", f.Low)
			if err != nil {
				log.Errorf("date filter %s: %v", f.Key, err)
				return
			}
			c.SetLow(day)
		}
		if f.High != "" {
			day, err := time.Parse("2006-01-02", f.High)
			if err != nil {
				log.Errorf("date filter %s: %v", f.Key, err)
				return
			}
			c.SetHigh(day)
		}

	case f.IsRange:
		props.Define(slot, cellfilter.PropNumber, cellfilter.JSONGetter(path))
		c, err := registry.NumberFilter(f.Key, slot, cellfilter.NumberRangeConfig{Kind: cellfilter.FloatKind})
		if err != nil {
			log.Errorf("number filter %s: %v", f.Key, err)
			return
		}
		if err := c.SetLow(f.Low); err != nil {
			log.Errorf("number filter %s: %v", f.Key, err)
			return
		}
		if err := c.SetHigh(f.High); err != nil {
			log.Errorf("number filter %s: %v", f.Key, err)
			return
		}

	case f.Operand == "=":
		props.Define(slot, cellfilter.PropString, cellfilter.JSONGetter(path))
		key, err := registry.NewKey(f.Key, slot)
		if err != nil {
			log.Errorf("equal filter %s: %v", f.Key, err)
			return
		}
		registry.SetFilter(key, filter.Equal{Value: typedLiteral(f.Value)})

	default:
		props.Define(slot, cellfilter.PropString, cellfilter.JSONGetter(path))
		c, err := registry.TextFilter(f.Key, slot, f.Operand == "~", f.Operand == "^")
		if err != nil {
			log.Errorf("text filter %s: %v", f.Key, err)
			return
		}
		c.SetValue(f.Value)
	}
}

// resolveKey maps a filter key to the row extraction path via the attribute
// list, matching the attribute's OutputKey the way the output phase does.
func resolveKey(key string, attrList attrs.AttrList) (string, bool) {
	for _, attr := range attrList {
		if attr.OutputKey == key {
			return attr.Key, true
		}
	}
	return "", false
}

// isDateRange reports whether every present bound is a calendar-day
// literal.
func isDateRange(f Filter) bool {
	if f.Low != "" && !dateRegex.MatchString(f.Low) {
		return false
	}
	if f.High != "" && !dateRegex.MatchString(f.High) {
		return false
	}
	return true
}

// typedLiteral converts an = target into the value type JSON yields: number,
// bool, or string.
func typedLiteral(s string) interface{} {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	return s
}
