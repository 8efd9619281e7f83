package house

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
	allowedSortFields   = []string{"id", "name", "state", "type", "created_at", "updated_at"}
	allowedFilterFields = []string{"state", "lga", "type", "seller_id", "name"}
)

// houseRepository implements domain.HouseRepository using GORM.
// Houses carry a gorm.DeletedAt column, so deletes are soft and reads
// exclude deleted rows automatically.
type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository creates a new HouseRepository backed by the given GORM database.
func NewHouseRepository(db *gorm.DB) domain.HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Create(ctx context.Context, house *domain.House) error {
	if err := r.db.WithContext(ctx).Create(house).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *houseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.House, error) {
	var house domain.House
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&house).Error; err != nil {
		return nil, mapError(err)
	}
	return &house, nil
}

func (r *houseRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	base := r.db.WithContext(ctx).Model(&domain.House{}).Scopes(pkg.Filter(req, allowedFilterFields))
	return r.list(req, base)
}

func (r *houseRepository) ListByEstate(ctx context.Context, estateID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	return r.list(req, r.db.WithContext(ctx).Model(&domain.House{}).Where("estate_id = ?", estateID))
}

func (r *houseRepository) ListStandalone(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	return r.list(req, r.db.WithContext(ctx).Model(&domain.House{}).Where("is_single_house = ?", true))
}

func (r *houseRepository) list(req domain.PageRequest, base *gorm.DB) (*domain.PageResult[domain.House], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var houses []domain.House
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&houses).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(houses, total, req), nil
}

func (r *houseRepository) Update(ctx context.Context, house *domain.House) error {
	if err := r.db.WithContext(ctx).Save(house).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *houseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.House{})
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
