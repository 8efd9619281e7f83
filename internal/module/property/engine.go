package property

import (
	"context"
	"database/sql"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// Querier is the database access capability the engine needs. It is
// satisfied by *sql.DB; the engine never manages the pool's lifecycle,
// it only borrows connections per query.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// listingEngine implements domain.PropertyListingService over raw
// PostgreSQL queries. The unified queries cross three heterogeneous
// tables, so they are composed by hand rather than through GORM.
//
// No transaction spans the engine's queries. The paginated rows and the
// grouped counts come from independent reads and can reflect different
// snapshots under concurrent writes; that staleness window is accepted
// for a listing view.
type listingEngine struct {
	db     Querier
	logger *slog.Logger
}

// NewEngine creates the unified listing engine with the given database
// capability and logger.
func NewEngine(db Querier, logger *slog.Logger) domain.PropertyListingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &listingEngine{db: db, logger: logger}
}

const unifiedColumns = `property_type,
	id,
	name,
	location,
	price,
	seller_id,
	created_at,
	updated_at,
	details`

// buildListQuery composes the paginated unified query. The returned
// argument list is the filter bindings followed by limit and offset.
func buildListQuery(f domain.ListingFilter, page domain.ListingPage, sort domain.ListingSort) (string, []any) {
	b := &pkg.Binder{}
	union := buildUnion(f, b)
	if union == "" {
		return "", nil
	}

	column, direction := resolveSort(sort)
	query := "WITH unified AS (\n" + union + "\n)\nSELECT\n\t" + unifiedColumns +
		",\n\tCOUNT(*) OVER()::int AS total_count" +
		"\nFROM unified" +
		"\nORDER BY " + column + " " + direction + ", created_at DESC" +
		"\nLIMIT " + b.Bind(page.Limit) +
		"\nOFFSET " + b.Bind(page.Offset())
	return query, b.Args()
}

// buildCountQuery composes the grouped per-type count query over the
// same union, without the page window.
func buildCountQuery(f domain.ListingFilter) (string, []any) {
	b := &pkg.Binder{}
	union := buildUnion(f, b)
	if union == "" {
		return "", nil
	}

	query := "WITH unified AS (\n" + union + "\n)\n" +
		"SELECT property_type, COUNT(*)::int AS count\nFROM unified\nGROUP BY property_type"
	return query, b.Args()
}

// ListUnified returns one page of cross-type rows plus total counts.
// The paginated query and the grouped-count query run concurrently; any
// failure fails the whole call with no partial results.
func (e *listingEngine) ListUnified(ctx context.Context, filter domain.ListingFilter, page domain.ListingPage, sort domain.ListingSort) (*domain.UnifiedListingResult, error) {
	listQuery, listArgs := buildListQuery(filter, page, sort)
	if listQuery == "" {
		return &domain.UnifiedListingResult{Rows: []domain.UnifiedListing{}}, nil
	}
	countQuery, countArgs := buildCountQuery(filter)

	var (
		rows   []domain.UnifiedListing
		total  int
		counts domain.TypeCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, total, err = e.queryUnifiedRows(gctx, listQuery, listArgs)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = e.queryTypeCounts(gctx, countQuery, countArgs)
		return err
	})
	if err := g.Wait(); err != nil {
		e.logger.Error("unified listing query failed", "error", err)
		return nil, domain.NewAppError(domain.CodeInternal, "database error", err)
	}

	return &domain.UnifiedListingResult{Rows: rows, Total: total, TypeCounts: counts}, nil
}

func (e *listingEngine) queryUnifiedRows(ctx context.Context, query string, args []any) ([]domain.UnifiedListing, int, error) {
	sqlRows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer sqlRows.Close()

	listings := []domain.UnifiedListing{}
	total := 0
	for sqlRows.Next() {
		var (
			row        domain.UnifiedListing
			price      sql.NullFloat64
			details    []byte
			totalCount int
		)
		if err := sqlRows.Scan(
			&row.PropertyType,
			&row.ID,
			&row.Name,
			&row.Location,
			&price,
			&row.SellerID,
			&row.CreatedAt,
			&row.UpdatedAt,
			&details,
			&totalCount,
		); err != nil {
			return nil, 0, err
		}
		if price.Valid {
			v := price.Float64
			row.Price = &v
		}
		row.Details = details
		total = totalCount
		listings = append(listings, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (e *listingEngine) queryTypeCounts(ctx context.Context, query string, args []any) (domain.TypeCounts, error) {
	var counts domain.TypeCounts

	sqlRows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return counts, err
	}
	defer sqlRows.Close()

	for sqlRows.Next() {
		var tag string
		var count int
		if err := sqlRows.Scan(&tag, &count); err != nil {
			return counts, err
		}
		switch tag {
		case "apartment":
			counts.Apartments = count
		case "land":
			counts.Land = count
		case "house":
			counts.Houses = count
		}
	}
	return counts, sqlRows.Err()
}
