package filter

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Defaults(t *testing.T) {
	spec, err := Compile(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
	assert.Nil(t, spec.MinPrice)
	assert.Nil(t, spec.Bedrooms)
	assert.Empty(t, spec.PropertyTypes)
}

func TestCompile_RoundTrip(t *testing.T) {
	spec, err := Compile(url.Values{
		"min_price": {"1000000"},
		"max_price": {"2000000"},
		"bedrooms":  {"2"},
		"page":      {"1"},
		"limit":     {"10"},
	})
	require.NoError(t, err)

	require.NotNil(t, spec.MinPrice)
	require.NotNil(t, spec.MaxPrice)
	require.NotNil(t, spec.Bedrooms)
	assert.Equal(t, 1000000.0, *spec.MinPrice)
	assert.Equal(t, 2000000.0, *spec.MaxPrice)
	assert.Equal(t, 2, *spec.Bedrooms)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
}

func TestCompile_Coercions(t *testing.T) {
	compoundID := uuid.New()
	developerID := uuid.New()

	spec, err := Compile(url.Values{
		"unit_area_min":  {"65.5"},
		"unit_area_max":  {"250"},
		"property_types": {"Apartment,Villa"},
		"amenities":      {"Pool,Gym"},
		"compound_id":    {compoundID.String()},
		"developer_id":   {developerID.String()},
		"area":           {"Dubai Marina"},
		"search":         {"penthouse"},
	})
	require.NoError(t, err)

	assert.Equal(t, 65.5, *spec.UnitAreaMin)
	assert.Equal(t, 250.0, *spec.UnitAreaMax)
	assert.Equal(t, []string{"Apartment", "Villa"}, spec.PropertyTypes)
	assert.Equal(t, []string{"Pool", "Gym"}, spec.Amenities)
	assert.Equal(t, compoundID, *spec.CompoundID)
	assert.Equal(t, developerID, *spec.DeveloperID)
	assert.Equal(t, "Dubai Marina", spec.Area)
	assert.Equal(t, "penthouse", spec.Search)
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"non-numeric min_price", url.Values{"min_price": {"cheap"}}, "min_price"},
		{"non-numeric unit_area_max", url.Values{"unit_area_max": {"big"}}, "unit_area_max"},
		{"non-integer bedrooms", url.Values{"bedrooms": {"two"}}, "bedrooms"},
		{"negative bedrooms", url.Values{"bedrooms": {"-1"}}, "bedrooms"},
		{"unknown property type", url.Values{"property_types": {"Castle"}}, "property_types"},
		{"bad compound uuid", url.Values{"compound_id": {"not-a-uuid"}}, "compound_id"},
		{"bad developer uuid", url.Values{"developer_id": {"123"}}, "developer_id"},
		{"non-integer page", url.Values{"page": {"first"}}, "page"},
		{"non-integer limit", url.Values{"limit": {"all"}}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Compile(tt.values)
			assert.Nil(t, spec)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestCompile_CollectsAllFieldErrors(t *testing.T) {
	_, err := Compile(url.Values{
		"min_price": {"x"},
		"max_price": {"y"},
		"bedrooms":  {"z"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestCompile_TolerantPageAndLimit(t *testing.T) {
	// page=0 and limit=0 fall back to the defaults instead of erroring.
	spec, err := Compile(url.Values{"page": {"0"}, "limit": {"-5"}})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
}

func TestCacheKey_Canonical(t *testing.T) {
	a, err := Compile(url.Values{"bedrooms": {"2"}, "min_price": {"100"}})
	require.NoError(t, err)
	b, err := Compile(url.Values{"min_price": {"100"}, "bedrooms": {"2"}})
	require.NoError(t, err)

	// Same filter combination, same key, regardless of parameter order.
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c, err := Compile(url.Values{"min_price": {"100"}, "bedrooms": {"3"}})
	require.NoError(t, err)
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())

	assert.True(t, len(a.CacheKey()) > len("units:"))
	assert.Contains(t, a.CacheKey(), "units:")
}
