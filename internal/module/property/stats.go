package property

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// buildApartmentStatsQuery aggregates over rent_amount for apartments
// matching the location and seller filters. Soft-deleted rows are
// excluded as everywhere else in the unified path.
func buildApartmentStatsQuery(f domain.ListingFilter) (string, []any) {
	b := &pkg.Binder{}
	where := apartmentPredicates(statsOnly(f), b)
	query := `SELECT
	COUNT(*)::int AS count,
	COALESCE(AVG(a.rent_amount), 0)::numeric AS avg_price,
	COALESCE(MIN(a.rent_amount), 0)::numeric AS min_price,
	COALESCE(MAX(a.rent_amount), 0)::numeric AS max_price,
	COALESCE(SUM(a.rent_amount), 0)::numeric AS total_price
FROM apartments a
` + whereClause(where)
	return query, b.Args()
}

func buildLandStatsQuery(f domain.ListingFilter) (string, []any) {
	b := &pkg.Binder{}
	where := landPredicates(statsOnly(f), b)
	query := `SELECT
	COUNT(*)::int AS count,
	COALESCE(AVG(l.price), 0)::numeric AS avg_price,
	COALESCE(MIN(l.price), 0)::numeric AS min_price,
	COALESCE(MAX(l.price), 0)::numeric AS max_price,
	COALESCE(SUM(l.price), 0)::numeric AS total_price
FROM land_properties l
` + whereClause(where)
	return query, b.Args()
}

func buildHouseStatsQuery(f domain.ListingFilter) (string, []any) {
	b := &pkg.Binder{}
	where := housePredicates(statsOnly(f), b)
	query := `SELECT
	COUNT(*)::int AS count,
	COALESCE(AVG(h.asking_price), 0)::numeric AS avg_price,
	COALESCE(MIN(h.asking_price), 0)::numeric AS min_price,
	COALESCE(MAX(h.asking_price), 0)::numeric AS max_price,
	COALESCE(SUM(h.asking_price), 0)::numeric AS total_price
FROM houses_for_sale h
` + whereClause(where)
	return query, b.Args()
}

// statsOnly strips the price bounds: the aggregate queries filter by
// location and seller only.
func statsOnly(f domain.ListingFilter) domain.ListingFilter {
	return domain.ListingFilter{Location: f.Location, SellerID: f.SellerID}
}

// AggregateStats computes per-type price aggregates plus combined
// totals. Types excluded by the filter get a zero-filled stub without a
// database round trip; the included aggregates run concurrently.
func (e *listingEngine) AggregateStats(ctx context.Context, filter domain.ListingFilter) (*domain.MarketStats, error) {
	var stats domain.MarketStats

	g, gctx := errgroup.WithContext(ctx)
	if filter.IncludeApartments() {
		query, args := buildApartmentStatsQuery(filter)
		g.Go(func() error {
			return e.queryTypeStats(gctx, query, args, &stats.Apartments)
		})
	}
	if filter.IncludeLand() {
		query, args := buildLandStatsQuery(filter)
		g.Go(func() error {
			return e.queryTypeStats(gctx, query, args, &stats.Land)
		})
	}
	if filter.IncludeHouses() {
		query, args := buildHouseStatsQuery(filter)
		g.Go(func() error {
			return e.queryTypeStats(gctx, query, args, &stats.Houses)
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error("aggregate stats query failed", "error", err)
		return nil, domain.NewAppError(domain.CodeInternal, "database error", err)
	}

	stats.Combined = combineStats(stats.Apartments, stats.Land, stats.Houses)
	return &stats, nil
}

func (e *listingEngine) queryTypeStats(ctx context.Context, query string, args []any, out *domain.TypeStats) error {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&out.Count, &out.AvgPrice, &out.MinPrice, &out.MaxPrice, &out.TotalPrice); err != nil {
			return err
		}
	}
	return rows.Err()
}

// combineStats folds the per-type aggregates into the combined block.
// The overall average weighs every property equally rather than
// averaging the per-type averages.
func combineStats(apartments, land, houses domain.TypeStats) domain.CombinedStats {
	total := apartments.Count + land.Count + houses.Count
	value := apartments.TotalPrice + land.TotalPrice + houses.TotalPrice

	avg := 0.0
	if total > 0 {
		avg = value / float64(total)
	}

	return domain.CombinedStats{
		TotalProperties:  total,
		OverallAvgPrice:  avg,
		TotalMarketValue: value,
	}
}
