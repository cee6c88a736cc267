// Package filter compiles the raw query-parameter bag of a unit search
// into a typed specification. Nothing downstream re-parses strings: the
// repository and the cache both consume the compiled Spec.
package filter

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/OMAR684257931/nawy-apartments/internal/modules/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Spec is a validated unit search. Optional filters are nil/empty when
// absent. Field order is fixed so CacheKey is canonical: identical filter
// combinations always serialize identically.
type Spec struct {
	MinPrice      *float64   `json:"min_price,omitempty"`
	MaxPrice      *float64   `json:"max_price,omitempty"`
	UnitAreaMin   *float64   `json:"unit_area_min,omitempty"`
	UnitAreaMax   *float64   `json:"unit_area_max,omitempty"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	PropertyTypes []string   `json:"property_types,omitempty"`
	Amenities     []string   `json:"amenities,omitempty"`
	CompoundID    *uuid.UUID `json:"compound_id,omitempty"`
	DeveloperID   *uuid.UUID `json:"developer_id,omitempty"`
	Area          string     `json:"area,omitempty"`
	Search        string     `json:"search,omitempty"`
	Page          int        `json:"page"`
	Limit         int        `json:"limit"`
}

// CacheKey returns the canonical cache key for this specification.
func (s *Spec) CacheKey() string {
	b, _ := sonic.Marshal(s)
	return "units:" + string(b)
}

// ValidationError reports every malformed field at once. A single bad
// value fails the whole compile; filters are never partially applied.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "invalid filter parameters: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

// Compile validates and coerces raw query parameters into a Spec.
// Absent and empty parameters mean "no filter". Returns a
// *ValidationError when any value cannot be coerced.
func Compile(values url.Values) (*Spec, error) {
	verr := &ValidationError{}
	spec := &Spec{Page: DefaultPage, Limit: DefaultLimit}

	spec.MinPrice = parseFloat(values, "min_price", verr)
	spec.MaxPrice = parseFloat(values, "max_price", verr)
	spec.UnitAreaMin = parseFloat(values, "unit_area_min", verr)
	spec.UnitAreaMax = parseFloat(values, "unit_area_max", verr)

	if raw := values.Get("bedrooms"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			verr.add("bedrooms", "must be an integer")
		case n < 0:
			verr.add("bedrooms", "must be non-negative")
		default:
			spec.Bedrooms = &n
		}
	}

	if raw := values.Get("property_types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if !model.ValidPropertyType(t) {
				verr.add("property_types", fmt.Sprintf("unrecognized property type %q", t))
				continue
			}
			spec.PropertyTypes = append(spec.PropertyTypes, t)
		}
	}

	if raw := values.Get("amenities"); raw != "" {
		spec.Amenities = strings.Split(raw, ",")
	}

	spec.CompoundID = parseUUID(values, "compound_id", verr)
	spec.DeveloperID = parseUUID(values, "developer_id", verr)

	spec.Area = values.Get("area")
	spec.Search = values.Get("search")

	// Out-of-range page/limit are clamped to their minimums rather than
	// rejected; only non-numeric input is an error.
	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("page", "must be an integer")
		} else if n >= 1 {
			spec.Page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("limit", "must be an integer")
		} else if n >= 1 {
			spec.Limit = n
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return spec, nil
}

func parseFloat(values url.Values, field string, verr *ValidationError) *float64 {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.add(field, "must be a number")
		return nil
	}
	return &f
}

func parseUUID(values url.Values, field string, verr *ValidationError) *uuid.UUID {
	raw := values.Get(field)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.add(field, "must be a valid UUID")
		return nil
	}
	return &id
}
