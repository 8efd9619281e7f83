package house

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// houseService implements domain.HouseService.
type houseService struct {
	repo domain.HouseRepository
}

// NewHouseService creates a new HouseService with the given repository.
func NewHouseService(repo domain.HouseRepository) domain.HouseService {
	return &houseService{repo: repo}
}

func (s *houseService) CreateHouse(ctx context.Context, house *domain.House) (*domain.House, error) {
	house.Name = strings.TrimSpace(house.Name)
	if house.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if house.SellerID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "sellerId is required", nil)
	}
	// A house belongs either to an estate or stands alone, never both.
	if house.EstateID != nil && house.IsSingleHouse {
		return nil, domain.NewAppError(domain.CodeValidation, "a single house cannot belong to an estate", nil)
	}
	if house.EstateID == nil {
		house.IsSingleHouse = true
	}

	if err := s.repo.Create(ctx, house); err != nil {
		return nil, err
	}
	return house, nil
}

func (s *houseService) GetHouse(ctx context.Context, id uuid.UUID) (*domain.House, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *houseService) ListHouses(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	return s.repo.List(ctx, req)
}

func (s *houseService) ListHousesByEstate(ctx context.Context, estateID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	return s.repo.ListByEstate(ctx, estateID, req)
}

func (s *houseService) ListStandaloneHouses(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.House], error) {
	return s.repo.ListStandalone(ctx, req)
}

// UpdateHouse applies the non-nil fields of the update to the house.
func (s *houseService) UpdateHouse(ctx context.Context, id uuid.UUID, update domain.HouseUpdate) (*domain.House, error) {
	house, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		house.Name = trimmed
	}
	if update.Type != nil {
		house.Type = strings.TrimSpace(*update.Type)
	}
	if update.Address != nil {
		house.Address = strings.TrimSpace(*update.Address)
	}
	if update.State != nil {
		house.State = strings.TrimSpace(*update.State)
	}
	if update.LGA != nil {
		house.LGA = strings.TrimSpace(*update.LGA)
	}
	if update.CoverImageURL != nil {
		house.CoverImageURL = *update.CoverImageURL
	}
	if update.LawyerID != nil {
		house.LawyerID = update.LawyerID
	}
	if update.CaretakerID != nil {
		house.CaretakerID = update.CaretakerID
	}

	if err := s.repo.Update(ctx, house); err != nil {
		return nil, err
	}
	return house, nil
}

func (s *houseService) DeleteHouse(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
