// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gridutil/gridutil/internal/log"
)

// Attr represents each of the keys to be included in the output. These are
// typically identified by the JSON attributes key, thus the name.
type Attr struct {
	// The JSON key to extract from the dataset row.
	Key string `yaml:"key" json:"Key"`
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool `yaml:"include" json:"Include"`
	// The key to use in the output. This is also used as the column title when
	// output=text.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec to apply to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Only strings are transformed; any other type passes
// through untouched.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	result = a.applyTime(result)
	result = a.applyCase(result)
	result = a.applyLength(result)

	return result
}

// applyTime converts an RFC 3339 stamp to the local zone (t) or a relative
// "time ago" rendering (T). Values that don't parse pass through.
func (a *Attr) applyTime(result string) string {
	if !strings.ContainsAny(a.TransformSpec, "tT") {
		return result
	}

	tz, _ := time.Now().In(time.Local).Zone()
	if tz == "" {
		return result
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return result
	}

	stamp, err := time.Parse(time.RFC3339, result)
	if err != nil {
		return result
	}

	local := stamp.In(loc)
	if strings.Contains(a.TransformSpec, "T") {
		result = humanize.Time(local)
		log.Tracef("time ago: result=%s", result)
	} else {
		result = local.Format("2006-01-02T15:04:05MST")
		log.Tracef("time local: result=%s", result)
	}
	return result
}

// applyCase upper- or lower-cases the value. The last case letter in the
// spec wins, so a global spec prepended by SetGlobalTransformSpec can be
// overridden by the attr's own: --attrs '*::U,name::l' ends up lower case.
func (a *Attr) applyCase(result string) string {
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	switch {
	case lastL > lastU:
		result = strings.ToLower(result)
		log.Tracef("case lower: result=%s", result)
	case lastU > lastL:
		result = strings.ToUpper(result)
		log.Tracef("case upper: result=%s", result)
	}
	return result
}

// applyLength truncates to the spec's length, or chops the middle out when
// the length is negative. As with case, the last number in the spec wins.
func (a *Attr) applyLength(result string) string {
	if a.TransformSpec == "" {
		return result
	}

	match := lengthRe.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	if len(result) <= abs {
		return result
	}

	if l < 0 {
		lr := abs/2 - 1
		result = result[0:lr] + ".." + result[len(result)-lr:]
		log.Tracef("length middle: result=%s", result)
	} else {
		result = result[:l]
		log.Tracef("length trunc: result=%s", result)
	}
	return result
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// parseSpec builds an Attr from one colon-delimited spec. The first field is
// the key to extract from the row; a leading ! excludes it from output and a
// bare * marks the global transform carrier. The second field is the output
// key, defaulting to the last dotted segment of the key. The third is the
// transform spec.
func parseSpec(spec string) Attr {
	fields := strings.Split(spec, ":")

	attr := Attr{
		Include: true,
		Key:     strings.TrimSpace(fields[0]),
	}

	if rest, ok := strings.CutPrefix(attr.Key, "!"); ok {
		attr.Include = false
		attr.Key = rest
	}
	if attr.Key == "*" {
		attr.Include = false
	}
	log.Tracef("key parsed: key=%s, include=%v", attr.Key, attr.Include)

	switch {
	case len(fields) == 1:
		segments := strings.Split(attr.Key, ".")
		attr.OutputKey = segments[len(segments)-1]
	case fields[1] != "":
		attr.OutputKey = strings.TrimSpace(fields[1])
	default:
		attr.OutputKey = attr.Key
	}
	log.Tracef("output set: outputKey=%s", attr.OutputKey)

	if len(fields) > 2 {
		attr.TransformSpec = strings.TrimSpace(fields[2])
	}
	log.Tracef("transform set: spec=%s", attr.TransformSpec)

	return attr
}

// Set parses each spec from --attrs and adds it to the AttrList. A spec
// whose key (or output key) is already present updates the existing entry in
// place, which lets users override a command's defaults.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)

	for _, spec := range specs {
		attr := parseSpec(spec)

		if i := a.indexOf(attr.Key); i >= 0 {
			(*a)[i].Include = attr.Include
			(*a)[i].OutputKey = attr.OutputKey
			(*a)[i].TransformSpec = attr.TransformSpec
			log.Tracef("existing updated: i=%d", i)
			continue
		}

		*a = append(*a, attr)
		log.Tracef("attr appended: len=%d", len(*a))
	}

	return nil
}

// indexOf returns the position of the attr whose Key or OutputKey matches
// key, or -1.
func (a *AttrList) indexOf(key string) int {
	for i := range *a {
		if (*a)[i].Key == key || (*a)[i].OutputKey == key {
			return i
		}
	}
	return -1
}

// SetGlobalTransformSpec inserts a global transform spec at the front of all
// attrs in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	// Find the global transform spec. If there is more than one, take the first.
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}
	log.Debugf("global spec: spec=%s", spec)

	if spec == "" {
		log.Debugf("no global spec")
		return nil
	}

	// Prepend the global spec onto each attribute's spec.
	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("specs prepended")

	return nil
}

// String returns a string representation of the AttrList. This matches the
// format of the original --attrs flag.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}

	resultStr := strings.Join(result, ",")
	log.Debugf("string built: result=%s", resultStr)
	return resultStr
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
