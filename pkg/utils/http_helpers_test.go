package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("search=ac unit&sort[due_date]=ASC&filter[status]=New&filter[category]=Machinery&limit=50&offset=10")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, "ac unit", filter.Search)
	assert.Equal(t, "asc", filter.Sort["due_date"])
	assert.Equal(t, "New", filter.Filter["status"])
	assert.Equal(t, "Machinery", filter.Filter["category"])
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 10, filter.Offset)
}

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Filter)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Zero(t, filter.Offset)
}

func TestParseFilterFromQueryClampsLimit(t *testing.T) {
	values, _ := url.ParseQuery("limit=9999")
	assert.Equal(t, MaxLimit, ParseFilterFromQuery(values).Limit)

	values, _ = url.ParseQuery("limit=-5")
	assert.Equal(t, DefaultLimit, ParseFilterFromQuery(values).Limit)
}

func TestParseFilterFromQueryIgnoresBadSortDirection(t *testing.T) {
	values, _ := url.ParseQuery("sort[name]=sideways")
	assert.Empty(t, ParseFilterFromQuery(values).Sort)
}
