package seller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
)

// sellerService implements domain.SellerService.
type sellerService struct {
	repo domain.SellerRepository
}

// NewSellerService creates a new SellerService with the given repository.
func NewSellerService(repo domain.SellerRepository) domain.SellerService {
	return &sellerService{repo: repo}
}

// RegisterSeller validates and persists a new seller profile. Company sellers
// must carry a business name and a CAC registration number.
func (s *sellerService) RegisterSeller(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	seller.SellerType = strings.TrimSpace(seller.SellerType)
	seller.BusinessName = strings.TrimSpace(seller.BusinessName)

	switch seller.SellerType {
	case domain.SellerTypeIndividual, domain.SellerTypeCompany:
	default:
		return nil, domain.NewAppError(domain.CodeValidation, "sellerType must be individual or company", nil)
	}

	if seller.SellerType == domain.SellerTypeCompany {
		if seller.BusinessName == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "businessName is required for company sellers", nil)
		}
		if strings.TrimSpace(seller.CACNumber) == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "cacNumber is required for company sellers", nil)
		}
	}

	if _, err := s.repo.GetByUserID(ctx, seller.UserID); err == nil {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "seller profile already exists for this user", nil)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	seller.IsActive = true
	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *sellerService) GetSeller(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sellerService) GetSellerByUser(ctx context.Context, userID uint) (*domain.Seller, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *sellerService) ListSellers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	return s.repo.List(ctx, req)
}

func (s *sellerService) SearchSellers(ctx context.Context, term string, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "search term is required", nil)
	}
	return s.repo.Search(ctx, term, req)
}

func (s *sellerService) TopRatedSellers(ctx context.Context, minRating float64, limit int) ([]domain.Seller, error) {
	if minRating < 0 || minRating > 5 {
		return nil, domain.NewAppError(domain.CodeValidation, "minRating must be between 0 and 5", nil)
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.repo.TopRated(ctx, minRating, limit)
}

func (s *sellerService) VerifiedSellers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Seller], error) {
	return s.repo.Verified(ctx, req)
}

// UpdateBusinessProfile applies the non-nil fields of the update to the seller.
func (s *sellerService) UpdateBusinessProfile(ctx context.Context, id uuid.UUID, update domain.SellerProfileUpdate) (*domain.Seller, error) {
	seller, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.BusinessName != nil {
		seller.BusinessName = strings.TrimSpace(*update.BusinessName)
	}
	if update.BusinessAddress != nil {
		seller.BusinessAddress = strings.TrimSpace(*update.BusinessAddress)
	}
	if update.BusinessEmail != nil {
		seller.BusinessEmail = strings.TrimSpace(*update.BusinessEmail)
	}
	if update.BusinessPhone != nil {
		seller.BusinessPhone = strings.TrimSpace(*update.BusinessPhone)
	}
	if update.BusinessSpecification != nil {
		seller.BusinessSpecification = strings.TrimSpace(*update.BusinessSpecification)
	}
	if update.State != nil {
		seller.State = strings.TrimSpace(*update.State)
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *sellerService) DeleteSeller(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
