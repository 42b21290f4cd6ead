// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cellfilter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

// JSONGetter returns a Getter over gjson rows that drills into path. Path
// segments are dot separated and may carry an array index, e.g.
// "attributes.tags[0]". Numbers come back as float64, which is what the
// filter package's numeric normalization expects.
func JSONGetter(path string) Getter[gjson.Result] {
	return func(row gjson.Result) interface{} {
		return drill(row, path).Value()
	}
}

// JSONDateGetter returns a Getter that parses the drilled value as an
// RFC 3339 timestamp or a plain YYYY-MM-DD day, yielding time.Time for the
// date predicates. Unparsable or missing values yield nil.
func JSONDateGetter(path string) Getter[gjson.Result] {
	return func(row gjson.Result) interface{} {
		s := drill(row, path).String()
		if s == "" {
			return nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t
		}
		return nil
	}
}

// drill navigates JSON using a flexible dot path supporting arrays.
func drill(current gjson.Result, path string) gjson.Result {
	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		// matches[2] is the [], which we can throw away.

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise leave the whole list in place.
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
