package apartment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// apartmentService implements domain.ApartmentService.
type apartmentService struct {
	repo domain.ApartmentRepository
}

// NewApartmentService creates a new ApartmentService with the given repository.
func NewApartmentService(repo domain.ApartmentRepository) domain.ApartmentService {
	return &apartmentService{repo: repo}
}

func (s *apartmentService) CreateApartment(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	if apartment.SellerID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "sellerId is required", nil)
	}
	if apartment.RentAmount != nil && *apartment.RentAmount < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "rentAmount cannot be negative", nil)
	}
	if apartment.ApartmentStatus == "" {
		apartment.ApartmentStatus = "vacant"
	}

	if err := s.repo.Create(ctx, apartment); err != nil {
		return nil, err
	}
	return apartment, nil
}

func (s *apartmentService) GetApartment(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *apartmentService) ListApartments(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return s.repo.List(ctx, req)
}

func (s *apartmentService) ListApartmentsByHouse(ctx context.Context, houseID uuid.UUID, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	return s.repo.ListByHouse(ctx, houseID, req)
}

func (s *apartmentService) SearchApartments(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.Apartment], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "search term is required", nil)
	}
	return s.repo.Search(ctx, term, req)
}

// UpdateApartment applies the non-nil fields of the update.
func (s *apartmentService) UpdateApartment(ctx context.Context, id uuid.UUID, update domain.ApartmentUpdate) (*domain.Apartment, error) {
	apartment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.RentAmount != nil && *update.RentAmount < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "rentAmount cannot be negative", nil)
	}

	if update.ApartmentAddress != nil {
		apartment.ApartmentAddress = strings.TrimSpace(*update.ApartmentAddress)
	}
	if update.HouseName != nil {
		apartment.HouseName = strings.TrimSpace(*update.HouseName)
	}
	if update.UnitNumber != nil {
		apartment.UnitNumber = strings.TrimSpace(*update.UnitNumber)
	}
	if update.NumberOfBedrooms != nil {
		apartment.NumberOfBedrooms = *update.NumberOfBedrooms
	}
	if update.NumberOfToilets != nil {
		apartment.NumberOfToilets = *update.NumberOfToilets
	}
	if update.Description != nil {
		apartment.Description = *update.Description
	}
	if update.Images != nil {
		apartment.Images = update.Images
	}
	if update.CoverImageURL != nil {
		apartment.CoverImageURL = *update.CoverImageURL
	}
	if update.FurnishedStatus != nil {
		apartment.FurnishedStatus = *update.FurnishedStatus
	}
	if update.ApartmentType != nil {
		apartment.ApartmentType = *update.ApartmentType
	}
	if update.ApartmentStatus != nil {
		apartment.ApartmentStatus = *update.ApartmentStatus
	}
	if update.RentAmount != nil {
		apartment.RentAmount = update.RentAmount
	}
	if update.CautionFee != nil {
		apartment.CautionFee = update.CautionFee
	}
	if update.PaymentDuration != nil {
		apartment.PaymentDuration = *update.PaymentDuration
	}

	if err := s.repo.Update(ctx, apartment); err != nil {
		return nil, err
	}
	return apartment, nil
}

// UpdateApartmentTenant assigns a tenant to a vacant unit or vacates an
// occupied one. Assigning to an already occupied unit is a conflict.
func (s *apartmentService) UpdateApartmentTenant(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	apartment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tenantID != nil && apartment.TenantID != nil {
		return domain.NewAppError(domain.CodeAlreadyExists, "apartment already has a tenant", nil)
	}

	if err := s.repo.UpdateTenant(ctx, id, tenantID); err != nil {
		return err
	}

	// Keep the status column in sync with occupancy.
	status := "vacant"
	if tenantID != nil {
		status = "occupied"
	}
	if apartment.ApartmentStatus == status {
		return nil
	}
	apartment.TenantID = tenantID
	apartment.ApartmentStatus = status
	return s.repo.Update(ctx, apartment)
}

func (s *apartmentService) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *apartmentService) ApartmentStats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	return s.repo.Stats(ctx, filter)
}
