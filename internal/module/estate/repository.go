package estate

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

var allowedSortFields = []string{"id", "name", "state", "created_at", "updated_at"}

// estateRepository implements domain.EstateRepository using GORM.
type estateRepository struct {
	db *gorm.DB
}

// NewEstateRepository creates a new EstateRepository backed by the given GORM database.
func NewEstateRepository(db *gorm.DB) domain.EstateRepository {
	return &estateRepository{db: db}
}

func (r *estateRepository) Create(ctx context.Context, estate *domain.Estate) error {
	if err := r.db.WithContext(ctx).Create(estate).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *estateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Estate, error) {
	var estate domain.Estate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&estate).Error; err != nil {
		return nil, mapError(err)
	}
	return &estate, nil
}

func (r *estateRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return r.list(ctx, req, r.db.WithContext(ctx).Model(&domain.Estate{}).Where("seller_id = ?", sellerID))
}

func (r *estateRepository) ListResidential(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return r.list(ctx, req, r.db.WithContext(ctx).Model(&domain.Estate{}).Where("is_land_estate = ?", false))
}

func (r *estateRepository) ListLand(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return r.list(ctx, req, r.db.WithContext(ctx).Model(&domain.Estate{}).Where("is_land_estate = ?", true))
}

func (r *estateRepository) list(_ context.Context, req domain.PageRequest, base *gorm.DB) (*domain.PageResult[domain.Estate], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var estates []domain.Estate
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&estates).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(estates, total, req), nil
}

func (r *estateRepository) Update(ctx context.Context, estate *domain.Estate) error {
	if err := r.db.WithContext(ctx).Save(estate).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *estateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Estate{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
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
