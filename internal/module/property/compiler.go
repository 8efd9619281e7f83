package property

import (
	"strings"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// The filter compiler translates the generic ListingFilter into
// entity-specific predicate fragments with PostgreSQL positional
// placeholders. All fragments of one composed statement share a single
// pkg.Binder so the parameter indices stay consistent across subqueries.
//
// The location mapping is intentionally asymmetric: apartments match a
// single column while land and sale listings match two columns ORed
// together. This mirrors the upstream API exactly and must not be
// normalized.

// apartmentPredicates returns the WHERE conditions for the apartments
// subquery. Soft-deleted rows are always excluded; the unified queries
// bypass GORM, so the deleted_at filter has to be explicit here.
func apartmentPredicates(f domain.ListingFilter, b *pkg.Binder) []string {
	where := []string{"a.deleted_at IS NULL"}
	if f.Location != "" {
		where = append(where, "a.apartment_address ILIKE "+b.Bind("%"+f.Location+"%"))
	}
	if f.SellerID != "" {
		where = append(where, "a.seller_id = "+b.Bind(f.SellerID)+"::uuid")
	}
	if f.MinPrice != nil {
		where = append(where, "a.rent_amount >= "+b.Bind(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "a.rent_amount <= "+b.Bind(*f.MaxPrice))
	}
	return where
}

// landPredicates returns the WHERE conditions for the land subquery.
// The location term is bound twice, once per column, matching the
// upstream parameter layout.
func landPredicates(f domain.ListingFilter, b *pkg.Binder) []string {
	var where []string
	if f.Location != "" {
		pattern := "%" + f.Location + "%"
		where = append(where, "(l.property_address ILIKE "+b.Bind(pattern)+" OR l.state_location ILIKE "+b.Bind(pattern)+")")
	}
	if f.SellerID != "" {
		where = append(where, "l.seller_id = "+b.Bind(f.SellerID)+"::uuid")
	}
	if f.MinPrice != nil {
		where = append(where, "l.price >= "+b.Bind(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "l.price <= "+b.Bind(*f.MaxPrice))
	}
	return where
}

// housePredicates returns the WHERE conditions for the sale listing
// subquery. The seller filter maps to owner_id on this table.
func housePredicates(f domain.ListingFilter, b *pkg.Binder) []string {
	var where []string
	if f.Location != "" {
		pattern := "%" + f.Location + "%"
		where = append(where, "(h.address ILIKE "+b.Bind(pattern)+" OR h.state ILIKE "+b.Bind(pattern)+")")
	}
	if f.SellerID != "" {
		where = append(where, "h.owner_id = "+b.Bind(f.SellerID)+"::uuid")
	}
	if f.MinPrice != nil {
		where = append(where, "h.asking_price >= "+b.Bind(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "h.asking_price <= "+b.Bind(*f.MaxPrice))
	}
	return where
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// apartmentSubquery projects apartments into the unified shape.
func apartmentSubquery(f domain.ListingFilter, b *pkg.Binder) string {
	return `SELECT
	'apartment'::text AS property_type,
	a.id AS id,
	COALESCE(NULLIF(a.house_name, ''), CONCAT('Apartment - ', COALESCE(a.apartment_address, 'Unknown'))) AS name,
	COALESCE(a.apartment_address, '') AS location,
	a.rent_amount::numeric AS price,
	a.seller_id AS seller_id,
	a.created_at,
	a.updated_at,
	jsonb_build_object(
		'houseId', a.house_id,
		'bedrooms', a.number_of_bedrooms,
		'description', a.description,
		'images', a.images,
		'furnishedStatus', a.furnished_status,
		'apartmentType', a.apartment_type
	) AS details
FROM apartments a
` + whereClause(apartmentPredicates(f, b))
}

// landSubquery projects land parcels into the unified shape.
func landSubquery(f domain.ListingFilter, b *pkg.Binder) string {
	return `SELECT
	'land'::text AS property_type,
	l.property_id AS id,
	l.property_name AS name,
	COALESCE(l.property_address, l.state_location, '') AS location,
	l.price::numeric AS price,
	l.seller_id AS seller_id,
	l.created_at,
	l.updated_at,
	jsonb_build_object(
		'state', l.state_location,
		'description', COALESCE(l.long_description, l.short_description),
		'images', l.gallery_images,
		'landSize', l.land_size,
		'landType', l.land_type
	) AS details
FROM land_properties l
` + whereClause(landPredicates(f, b))
}

// houseSubquery projects sale listings into the unified shape.
func houseSubquery(f domain.ListingFilter, b *pkg.Binder) string {
	return `SELECT
	'house'::text AS property_type,
	h.house_id AS id,
	CONCAT('House - ', h.address) AS name,
	h.address AS location,
	h.asking_price::numeric AS price,
	h.owner_id AS seller_id,
	h.created_at,
	h.updated_at,
	jsonb_build_object(
		'state', h.state,
		'lga', h.lga,
		'bedrooms', h.bedrooms,
		'description', h.description,
		'images', h.images,
		'status', h.status,
		'verificationStatus', h.verification_status
	) AS details
FROM houses_for_sale h
` + whereClause(housePredicates(f, b))
}

// buildUnion concatenates the included subqueries with UNION ALL.
// Duplicates are preserved. Returns an empty string when no type is
// included.
func buildUnion(f domain.ListingFilter, b *pkg.Binder) string {
	var subqueries []string
	if f.IncludeApartments() {
		subqueries = append(subqueries, apartmentSubquery(f, b))
	}
	if f.IncludeLand() {
		subqueries = append(subqueries, landSubquery(f, b))
	}
	if f.IncludeHouses() {
		subqueries = append(subqueries, houseSubquery(f, b))
	}
	return strings.Join(subqueries, "\nUNION ALL\n")
}

// resolveSort maps the requested sort to a column expression over the
// unified projection's aliases. Unknown fields fall back to created_at;
// any order other than asc means descending.
func resolveSort(sort domain.ListingSort) (column, direction string) {
	switch strings.ToLower(sort.By) {
	case "price":
		column = "price"
	case "name":
		column = "LOWER(name)"
	default:
		column = "created_at"
	}

	direction = "DESC"
	if strings.ToLower(sort.Order) == "asc" {
		direction = "ASC"
	}
	return column, direction
}
