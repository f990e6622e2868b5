// Package discovery is the headless client model for celebrity search:
// a filter/sort query value that serializes only non-default
// parameters, an input debouncer, and a stale-response gate. Handlers
// and any Go client of the listing endpoint share it.
package discovery

import (
	"net/url"
	"strconv"
)

// Sort keys accepted by the listing endpoint.
const (
	SortFeatured     = "featured"
	SortPriceAsc     = "price_asc"
	SortPriceDesc    = "price_desc"
	SortRating       = "rating"
	SortResponseTime = "response_time"
	SortPopular      = "popular"
)

// Defaults. A query whose fields all hold these values serializes to
// only page and limit, so default browsing hits the cacheable
// unfiltered endpoint.
const (
	DefaultCategory     = "All"
	DefaultAvailability = "All"
	DefaultSort         = SortFeatured
	DefaultMinPrice     = 0
	DefaultMaxPrice     = 2000
	DefaultLimit        = 12
)

// Query is an immutable filter/sort selection. Build one with
// NewQuery and derive new selections with the With* methods; every
// filter change resets the page to 1.
type Query struct {
	Category     string
	Search       string
	SortBy       string
	MinPrice     int
	MaxPrice     int
	Availability string
	Page         int
	Limit        int
}

// NewQuery returns the default (unfiltered, first page) selection.
func NewQuery() Query {
	return Query{
		Category:     DefaultCategory,
		Search:       "",
		SortBy:       DefaultSort,
		MinPrice:     DefaultMinPrice,
		MaxPrice:     DefaultMaxPrice,
		Availability: DefaultAvailability,
		Page:         1,
		Limit:        DefaultLimit,
	}
}

func (q Query) WithCategory(category string) Query {
	q.Category = category
	q.Page = 1
	return q
}

func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1
	return q
}

func (q Query) WithSort(sortBy string) Query {
	q.SortBy = sortBy
	q.Page = 1
	return q
}

func (q Query) WithPriceRange(min, max int) Query {
	q.MinPrice = min
	q.MaxPrice = max
	q.Page = 1
	return q
}

func (q Query) WithAvailability(availability string) Query {
	q.Availability = availability
	q.Page = 1
	return q
}

// WithPage is the one mutator that preserves the page offset: page
// navigation never changes filters, and filter changes never keep an
// unrelated offset.
func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// Values serializes the query. Filters holding their default values
// are omitted so the server can distinguish "no filter" from an
// explicit default; page and limit are always present.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))

	if q.Category != "" && q.Category != DefaultCategory {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" && q.SortBy != DefaultSort {
		v.Set("sortBy", q.SortBy)
	}
	if q.MinPrice != DefaultMinPrice {
		v.Set("minPrice", strconv.Itoa(q.MinPrice))
	}
	if q.MaxPrice != DefaultMaxPrice {
		v.Set("maxPrice", strconv.Itoa(q.MaxPrice))
	}
	if q.Availability != "" && q.Availability != DefaultAvailability {
		v.Set("availability", q.Availability)
	}
	return v
}

// Encode renders the query string form of Values.
func (q Query) Encode() string {
	return q.Values().Encode()
}
