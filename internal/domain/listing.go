package domain

import (
	"context"
	"encoding/json"
	"time"
)

// PropertyType selects which source tables participate in a unified
// listing query.
type PropertyType string

// Property type discriminators. PropertyTypeAll includes all three.
const (
	PropertyTypeAll       PropertyType = "all"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeLand      PropertyType = "land"
	PropertyTypeHouse     PropertyType = "house"
)

// Valid reports whether t is a recognized property type selector.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeAll, PropertyTypeApartment, PropertyTypeLand, PropertyTypeHouse:
		return true
	}
	return false
}

// ListingFilter is the generic cross-type filter. Each entity type maps
// these fields to different physical columns; the mapping lives in the
// property module's query compiler. Both price bounds are inclusive and
// are passed through independently; minPrice > maxPrice is not
// rejected, matching the upstream API behavior.
type ListingFilter struct {
	Location     string
	PropertyType PropertyType
	SellerID     string
	MinPrice     *float64
	MaxPrice     *float64
}

// IncludeApartments reports whether apartments participate in the query.
func (f ListingFilter) IncludeApartments() bool {
	return f.PropertyType == PropertyTypeAll || f.PropertyType == PropertyTypeApartment
}

// IncludeLand reports whether land parcels participate in the query.
func (f ListingFilter) IncludeLand() bool {
	return f.PropertyType == PropertyTypeAll || f.PropertyType == PropertyTypeLand
}

// IncludeHouses reports whether sale listings participate in the query.
func (f ListingFilter) IncludeHouses() bool {
	return f.PropertyType == PropertyTypeAll || f.PropertyType == PropertyTypeHouse
}

// ListingPage is the page window for unified listing queries.
type ListingPage struct {
	Page  int
	Limit int
}

// Offset returns the row offset of the page window.
func (p ListingPage) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListingSort is the requested ordering of the unified result set. The
// sort column is resolved against the unified projection's aliases, so
// per-type physical column differences are irrelevant by the time it
// applies.
type ListingSort struct {
	By    string
	Order string
}

// UnifiedListing is the request-scoped read model merging apartment,
// land, and sale rows into one comparable shape. It is never persisted.
type UnifiedListing struct {
	PropertyType string          `json:"property_type"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Price        *float64        `json:"price"`
	SellerID     string          `json:"seller_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Details      json.RawMessage `json:"details"`
}

// TypeCounts is the per-type breakdown of a unified result set.
type TypeCounts struct {
	Apartments int `json:"apartments"`
	Land       int `json:"land"`
	Houses     int `json:"houses"`
}

// UnifiedListingResult is one page of unified rows plus total counts.
// Rows and counts come from two independent queries with no shared
// snapshot, so they can diverge slightly under concurrent writes.
type UnifiedListingResult struct {
	Rows       []UnifiedListing
	Total      int
	TypeCounts TypeCounts
}

// StatsFilter restricts aggregate statistics to a location substring
// and/or a seller.
type StatsFilter struct {
	Location string
	SellerID string
}

// TypeStats holds SQL aggregates over one entity type's price column.
// All fields are zero (never null) when no rows match.
type TypeStats struct {
	Count      int     `json:"count"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// CombinedStats aggregates across all included types.
type CombinedStats struct {
	TotalProperties  int     `json:"totalProperties"`
	OverallAvgPrice  float64 `json:"overallAvgPrice"`
	TotalMarketValue float64 `json:"totalMarketValue"`
}

// MarketStats is the full statistics payload of the stats endpoint.
type MarketStats struct {
	Apartments TypeStats     `json:"apartments"`
	Land       TypeStats     `json:"land"`
	Houses     TypeStats     `json:"houses"`
	Combined   CombinedStats `json:"combined"`
}

// PropertyListingService is the unified multi-entity search and
// aggregation engine. Every call is a stateless, idempotent read.
type PropertyListingService interface {
	ListUnified(ctx context.Context, filter ListingFilter, page ListingPage, sort ListingSort) (*UnifiedListingResult, error)
	AggregateStats(ctx context.Context, filter ListingFilter) (*MarketStats, error)
}
