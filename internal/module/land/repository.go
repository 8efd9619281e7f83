package land

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

var (
	allowedSortFields = []string{
		"property_id", "property_name", "price", "state_location",
		"land_type", "created_at", "updated_at",
	}
	allowedFilterFields = []string{
		"seller_id", "estate_id", "state_location", "land_type",
		"survey_status", "usage_status", "is_estate_land", "sold_out",
	}
)

// landRepository implements domain.LandRepository using GORM.
type landRepository struct {
	db *gorm.DB
}

// NewLandRepository creates a new LandRepository backed by the given GORM database.
func NewLandRepository(db *gorm.DB) domain.LandRepository {
	return &landRepository{db: db}
}

func (r *landRepository) Create(ctx context.Context, land *domain.LandProperty) error {
	if err := r.db.WithContext(ctx).Create(land).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *landRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LandProperty, error) {
	var land domain.LandProperty
	if err := r.db.WithContext(ctx).Where("property_id = ?", id).First(&land).Error; err != nil {
		return nil, mapError(err)
	}
	return &land, nil
}

func (r *landRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	base := r.db.WithContext(ctx).Model(&domain.LandProperty{}).Scopes(pkg.Filter(req, allowedFilterFields))
	return r.list(req, base)
}

func (r *landRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	return r.list(req, r.db.WithContext(ctx).Model(&domain.LandProperty{}).Where("seller_id = ?", sellerID))
}

func (r *landRepository) ListAvailable(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	base := r.db.WithContext(ctx).Model(&domain.LandProperty{}).
		Where("sold_out = ? AND available_quantity > 0", false)
	return r.list(req, base)
}

func (r *landRepository) Search(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.WithContext(ctx).Model(&domain.LandProperty{}).Where(
		"LOWER(property_name) LIKE ? OR LOWER(property_address) LIKE ? OR LOWER(state_location) LIKE ?",
		pattern, pattern, pattern,
	)
	return r.list(req, base)
}

func (r *landRepository) list(req domain.PageRequest, base *gorm.DB) (*domain.PageResult[domain.LandProperty], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var parcels []domain.LandProperty
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&parcels).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(parcels, total, req), nil
}

func (r *landRepository) Update(ctx context.Context, land *domain.LandProperty) error {
	if err := r.db.WithContext(ctx).Save(land).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *landRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("property_id = ?", id).Delete(&domain.LandProperty{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats computes price aggregates over the asking price column.
func (r *landRepository) Stats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	var stats domain.TypeStats
	q := r.db.WithContext(ctx).Model(&domain.LandProperty{}).Select(
		"COUNT(*) AS count, " +
			"COALESCE(AVG(price), 0) AS avg_price, " +
			"COALESCE(MIN(price), 0) AS min_price, " +
			"COALESCE(MAX(price), 0) AS max_price, " +
			"COALESCE(SUM(price), 0) AS total_price",
	)
	if filter.Location != "" {
		pattern := "%" + strings.ToLower(filter.Location) + "%"
		q = q.Where("LOWER(property_address) LIKE ? OR LOWER(state_location) LIKE ?", pattern, pattern)
	}
	if filter.SellerID != "" {
		q = q.Where("seller_id = ?", filter.SellerID)
	}
	if err := q.Scan(&stats).Error; err != nil {
		return nil, mapError(err)
	}
	return &stats, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
