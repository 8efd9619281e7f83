package land

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// landService implements domain.LandService.
type landService struct {
	repo domain.LandRepository
}

// NewLandService creates a new LandService with the given repository.
func NewLandService(repo domain.LandRepository) domain.LandService {
	return &landService{repo: repo}
}

func (s *landService) CreateLand(ctx context.Context, land *domain.LandProperty) (*domain.LandProperty, error) {
	land.PropertyName = strings.TrimSpace(land.PropertyName)
	if land.PropertyName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "propertyName is required", nil)
	}
	if land.SellerID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "sellerId is required", nil)
	}
	if land.Price != nil && *land.Price < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "price cannot be negative", nil)
	}
	land.IsEstateLand = land.EstateID != nil

	if err := s.repo.Create(ctx, land); err != nil {
		return nil, err
	}
	return land, nil
}

func (s *landService) GetLand(ctx context.Context, id uuid.UUID) (*domain.LandProperty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *landService) ListLand(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	return s.repo.List(ctx, req)
}

func (s *landService) ListLandBySeller(ctx context.Context, sellerID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	return s.repo.ListBySeller(ctx, sellerID, req)
}

func (s *landService) ListAvailableLand(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	return s.repo.ListAvailable(ctx, req)
}

func (s *landService) SearchLand(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.LandProperty], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "search term is required", nil)
	}
	return s.repo.Search(ctx, term, req)
}

// UpdateLand applies the non-nil fields of the update. Setting the
// available quantity to zero marks the parcel sold out; raising it above
// zero clears the flag unless SoldOut is set explicitly.
func (s *landService) UpdateLand(ctx context.Context, id uuid.UUID, update domain.LandUpdate) (*domain.LandProperty, error) {
	land, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Price != nil && *update.Price < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "price cannot be negative", nil)
	}
	if update.AvailableQty != nil && *update.AvailableQty < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "availableQuantity cannot be negative", nil)
	}

	if update.PropertyName != nil {
		trimmed := strings.TrimSpace(*update.PropertyName)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "propertyName cannot be empty", nil)
		}
		land.PropertyName = trimmed
	}
	if update.PropertyAddress != nil {
		land.PropertyAddress = strings.TrimSpace(*update.PropertyAddress)
	}
	if update.StateLocation != nil {
		land.StateLocation = strings.TrimSpace(*update.StateLocation)
	}
	if update.ShortDescription != nil {
		land.ShortDescription = *update.ShortDescription
	}
	if update.LongDescription != nil {
		land.LongDescription = *update.LongDescription
	}
	if update.CoverImageURL != nil {
		land.CoverImageURL = *update.CoverImageURL
	}
	if update.GalleryImages != nil {
		land.GalleryImages = update.GalleryImages
	}
	if update.LandSize != nil {
		land.LandSize = *update.LandSize
	}
	if update.LandType != nil {
		land.LandType = *update.LandType
	}
	if update.Price != nil {
		land.Price = update.Price
	}
	if update.AvailableQty != nil {
		land.AvailableQty = *update.AvailableQty
		land.SoldOut = *update.AvailableQty == 0
	}
	if update.SoldOut != nil {
		land.SoldOut = *update.SoldOut
	}

	if err := s.repo.Update(ctx, land); err != nil {
		return nil, err
	}
	return land, nil
}

func (s *landService) DeleteLand(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *landService) LandStats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	return s.repo.Stats(ctx, filter)
}
