package apartment

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
		"id", "rent_amount", "number_of_bedrooms", "apartment_status",
		"apartment_type", "created_at", "updated_at",
	}
	allowedFilterFields = []string{
		"seller_id", "house_id", "apartment_status", "apartment_type",
		"furnished_status", "number_of_bedrooms", "payment_duration",
	}
)

// apartmentRepository implements domain.ApartmentRepository using GORM.
type apartmentRepository struct {
	db *gorm.DB
}

// NewApartmentRepository creates a new ApartmentRepository backed by the given GORM database.
func NewApartmentRepository(db *gorm.DB) domain.ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) Create(ctx context.Context, apartment *domain.Apartment) error {
	if err := r.db.WithContext(ctx).Create(apartment).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *apartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	var apartment domain.Apartment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&apartment).Error; err != nil {
		return nil, mapError(err)
	}
	return &apartment, nil
}

func (r *apartmentRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	base := r.db.WithContext(ctx).Model(&domain.Apartment{}).Scopes(pkg.Filter(req, allowedFilterFields))
	return r.list(req, base)
}

func (r *apartmentRepository) ListByHouse(ctx context.Context, houseID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return r.list(req, r.db.WithContext(ctx).Model(&domain.Apartment{}).Where("house_id = ?", houseID))
}

func (r *apartmentRepository) Search(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.WithContext(ctx).Model(&domain.Apartment{}).Where(
		"LOWER(apartment_address) LIKE ? OR LOWER(house_name) LIKE ? OR LOWER(description) LIKE ?",
		pattern, pattern, pattern,
	)
	return r.list(req, base)
}

func (r *apartmentRepository) list(req domain.PageRequest, base *gorm.DB) (*domain.PageResult[domain.Apartment], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var apartments []domain.Apartment
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&apartments).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(apartments, total, req), nil
}

func (r *apartmentRepository) Update(ctx context.Context, apartment *domain.Apartment) error {
	if err := r.db.WithContext(ctx).Save(apartment).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// UpdateTenant sets or clears the tenant. Clearing does not touch any
// other column, so the apartment status transition stays in the service.
func (r *apartmentRepository) UpdateTenant(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&domain.Apartment{}).
		Where("id = ?", id).
		Update("tenant_id", tenantID)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Apartment{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats computes price aggregates over rent_amount. COALESCE keeps the
// aggregates at zero instead of NULL when no rows match.
func (r *apartmentRepository) Stats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	var stats domain.TypeStats
	q := r.db.WithContext(ctx).Model(&domain.Apartment{}).Select(
		"COUNT(*) AS count, " +
			"COALESCE(AVG(rent_amount), 0) AS avg_price, " +
			"COALESCE(MIN(rent_amount), 0) AS min_price, " +
			"COALESCE(MAX(rent_amount), 0) AS max_price, " +
			"COALESCE(SUM(rent_amount), 0) AS total_price",
	)
	if filter.Location != "" {
		q = q.Where("LOWER(apartment_address) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
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
