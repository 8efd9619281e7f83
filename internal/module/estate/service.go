package estate

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// estateService implements domain.EstateService.
type estateService struct {
	repo domain.EstateRepository
}

// NewEstateService creates a new EstateService with the given repository.
func NewEstateService(repo domain.EstateRepository) domain.EstateService {
	return &estateService{repo: repo}
}

func (s *estateService) CreateEstate(ctx context.Context, estate *domain.Estate) (*domain.Estate, error) {
	estate.Name = strings.TrimSpace(estate.Name)
	if estate.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if estate.SellerID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "sellerId is required", nil)
	}

	if err := s.repo.Create(ctx, estate); err != nil {
		return nil, err
	}
	return estate, nil
}

func (s *estateService) GetEstate(ctx context.Context, id uuid.UUID) (*domain.Estate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *estateService) ListEstatesBySeller(ctx context.Context, sellerID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return s.repo.ListBySeller(ctx, sellerID, req)
}

func (s *estateService) ListResidentialEstates(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return s.repo.ListResidential(ctx, req)
}

func (s *estateService) ListLandEstates(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Estate], error) {
	return s.repo.ListLand(ctx, req)
}

// UpdateEstateDetails applies the non-nil fields to the estate.
func (s *estateService) UpdateEstateDetails(ctx context.Context, id uuid.UUID, name, description, coverImageURL *string) (*domain.Estate, error) {
	estate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		estate.Name = trimmed
	}
	if description != nil {
		estate.Description = *description
	}
	if coverImageURL != nil {
		estate.CoverImageURL = *coverImageURL
	}

	if err := s.repo.Update(ctx, estate); err != nil {
		return nil, err
	}
	return estate, nil
}

func (s *estateService) DeleteEstate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
