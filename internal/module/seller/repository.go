package seller

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "business_name", "rating", "state", "created_at", "updated_at"}
	allowedFilterFields = []string{"seller_type", "state", "business_name", "is_verified"}
)

// sellerRepository implements domain.SellerRepository using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new SellerRepository backed by the given GORM database.
func NewSellerRepository(db *gorm.DB) domain.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&seller).Error; err != nil {
		return nil, mapError(err)
	}
	return &seller, nil
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID uint) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seller).Error; err != nil {
		return nil, mapError(err)
	}
	return &seller, nil
}

func (r *sellerRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Seller{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var sellers []domain.Seller
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&sellers).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(sellers, total, req), nil
}

// Search matches the term case-insensitively against the business name,
// specification, and state.
func (r *sellerRepository) Search(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	base := r.db.WithContext(ctx).Model(&domain.Seller{}).
		Where("LOWER(business_name) LIKE ? OR LOWER(business_specification) LIKE ? OR LOWER(state) LIKE ?",
			pattern, pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var sellers []domain.Seller
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&sellers).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(sellers, total, req), nil
}

func (r *sellerRepository) TopRated(ctx context.Context, minRating float64, limit int) ([]domain.Seller, error) {
	var sellers []domain.Seller
	if err := r.db.WithContext(ctx).
		Where("rating >= ? AND is_active = ?", minRating, true).
		Order("rating DESC").
		Limit(limit).
		Find(&sellers).Error; err != nil {
		return nil, mapError(err)
	}
	return sellers, nil
}

func (r *sellerRepository) Verified(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	base := r.db.WithContext(ctx).Model(&domain.Seller{}).
		Where("is_verified = ?", true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var sellers []domain.Seller
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&sellers).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(sellers, total, req), nil
}

func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	if err := r.db.WithContext(ctx).Save(seller).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Seller{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors.
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
