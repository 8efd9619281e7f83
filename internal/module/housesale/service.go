package housesale

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// houseSaleService implements domain.HouseSaleService.
//
// Listing status transitions:
//
//	listed      -> under_offer, sold, withdrawn
//	under_offer -> listed is not modeled; under_offer -> sold, withdrawn
//	sold        -> terminal
//	withdrawn   -> terminal
type houseSaleService struct {
	repo domain.HouseSaleRepository
}

// NewHouseSaleService creates a new HouseSaleService with the given repository.
func NewHouseSaleService(repo domain.HouseSaleRepository) domain.HouseSaleService {
	return &houseSaleService{repo: repo}
}

func (s *houseSaleService) CreateListing(ctx context.Context, sale *domain.HouseSale) (*domain.HouseSale, error) {
	sale.Address = strings.TrimSpace(sale.Address)
	if sale.Address == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "address is required", nil)
	}
	if sale.OwnerID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "ownerId is required", nil)
	}
	if sale.AskingPrice != nil && *sale.AskingPrice < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "askingPrice cannot be negative", nil)
	}
	sale.Status = domain.SaleStatusListed
	sale.VerificationStatus = domain.VerificationPending

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) GetListing(ctx context.Context, id uuid.UUID) (*domain.HouseSale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *houseSaleService) ListListings(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	return s.repo.List(ctx, req)
}

func (s *houseSaleService) ListByStatus(ctx context.Context, status string, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	switch status {
	case domain.SaleStatusListed, domain.SaleStatusUnderOffer, domain.SaleStatusSold, domain.SaleStatusWithdrawn:
	default:
		return nil, domain.NewAppError(domain.CodeValidation, "invalid status: "+status, nil)
	}
	return s.repo.ListByStatus(ctx, status, req)
}

func (s *houseSaleService) SearchListings(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.HouseSale], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "search term is required", nil)
	}
	return s.repo.Search(ctx, term, req)
}

func (s *houseSaleService) UpdatePrice(ctx context.Context, id uuid.UUID, askingPrice float64) (*domain.HouseSale, error) {
	if askingPrice <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "askingPrice must be positive", nil)
	}

	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusSold || sale.Status == domain.SaleStatusWithdrawn {
		return nil, domain.NewAppError(domain.CodeValidation, "cannot reprice a closed listing", nil)
	}

	sale.AskingPrice = &askingPrice
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) UpdateVerification(ctx context.Context, id uuid.UUID, status string) (*domain.HouseSale, error) {
	switch status {
	case domain.VerificationPending, domain.VerificationVerified, domain.VerificationRejected:
	default:
		return nil, domain.NewAppError(domain.CodeValidation, "invalid verification status: "+status, nil)
	}

	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.VerificationStatus = status
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) MarkUnderOffer(ctx context.Context, id uuid.UUID) (*domain.HouseSale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status != domain.SaleStatusListed {
		return nil, domain.NewAppError(domain.CodeValidation, "only a listed house can go under offer", nil)
	}

	sale.Status = domain.SaleStatusUnderOffer
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) MarkSold(ctx context.Context, id uuid.UUID, finalSalePrice float64) (*domain.HouseSale, error) {
	if finalSalePrice <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "finalSalePrice must be positive", nil)
	}

	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status != domain.SaleStatusListed && sale.Status != domain.SaleStatusUnderOffer {
		return nil, domain.NewAppError(domain.CodeValidation, "listing is not open for sale", nil)
	}

	now := time.Now().UTC()
	sale.Status = domain.SaleStatusSold
	sale.FinalSalePrice = &finalSalePrice
	sale.SoldAt = &now
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) Withdraw(ctx context.Context, id uuid.UUID) (*domain.HouseSale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusSold {
		return nil, domain.NewAppError(domain.CodeValidation, "a sold listing cannot be withdrawn", nil)
	}
	if sale.Status == domain.SaleStatusWithdrawn {
		return sale, nil
	}

	sale.Status = domain.SaleStatusWithdrawn
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *houseSaleService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *houseSaleService) ListingStats(ctx context.Context, filter domain.StatsFilter) (*domain.TypeStats, error) {
	return s.repo.Stats(ctx, filter)
}
