package housesale

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
		"house_id", "asking_price", "bedrooms", "state", "status",
		"created_at", "updated_at",
	}
	allowedFilterFields = []string{
		"owner_id", "state", "lga", "house_type", "status",
		"verification_status", "bedrooms",
	}
)

// houseSaleRepository implements domain.HouseSaleRepository using GORM.
type houseSaleRepository struct {
	db *gorm.DB
}

// NewHouseSaleRepository creates a new HouseSaleRepository backed by the given GORM database.
func NewHouseSaleRepository(db *gorm.DB) domain.HouseSaleRepository {
	return &houseSaleRepository{db: db}
}

func (r *houseSaleRepository) Create(ctx context.Context, sale *domain.HouseSale) error {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *houseSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HouseSale, error) {
	var sale domain.HouseSale
	if err := r.db.WithContext(ctx).Where("house_id = ?", id).First(&sale).Error; err != nil {
		return nil, mapError(err)
	}
	return &sale, nil
}

func (r *houseSaleRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	base := r.db.WithContext(ctx).Model(&domain.HouseSale{}).Scopes(pkg.Filter(req, allowedFilterFields))
	return r.list(req, base)
}

func (r *houseSaleRepository) ListByStatus(ctx context.Context, status string, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	return r.list(req, r.db.WithContext(ctx).Model(&domain.HouseSale{}).Where("status = ?", status))
}

func (r *houseSaleRepository) Search(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.WithContext(ctx).Model(&domain.HouseSale{}).Where(
		"LOWER(address) LIKE ? OR LOWER(state) LIKE ? OR LOWER(landmark) LIKE ?",
		pattern, pattern, pattern,
	)
	return r.list(req, base)
}

func (r *houseSaleRepository) list(req domain.PageRequest, base *gorm.DB) (*domain.PageResult[domain.HouseSale], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var sales []domain.HouseSale
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&sales).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(sales, total, req), nil
}

func (r *houseSaleRepository) Update(ctx context.Context, sale *domain.HouseSale) error {
	if err := r.db.WithContext(ctx).Save(sale).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *houseSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("house_id = ?", id).Delete(&domain.HouseSale{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats computes price aggregates over asking_price.
func (r *houseSaleRepository) Stats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	var stats domain.TypeStats
	q := r.db.WithContext(ctx).Model(&domain.HouseSale{}).Select(
		"COUNT(*) AS count, " +
			"COALESCE(AVG(asking_price), 0) AS avg_price, " +
			"COALESCE(MIN(asking_price), 0) AS min_price, " +
			"COALESCE(MAX(asking_price), 0) AS max_price, " +
			"COALESCE(SUM(asking_price), 0) AS total_price",
	)
	if filter.Location != "" {
		pattern := "%" + strings.ToLower(filter.Location) + "%"
		q = q.Where("LOWER(address) LIKE ? OR LOWER(state) LIKE ?", pattern, pattern)
	}
	if filter.SellerID != "" {
		q = q.Where("owner_id = ?", filter.SellerID)
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
