package domain

import (
	"context"

	"github.com/google/uuid"
)

// Estate is a named development containing houses or land parcels.
type Estate struct {
	UUIDModel
	SellerID      uuid.UUID `gorm:"type:uuid;column:seller_id;index;not null" json:"sellerId"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"size:255" json:"address"`
	State         string    `gorm:"size:100" json:"state"`
	LGA           string    `gorm:"column:lga;size:100" json:"lga"`
	Description   string    `gorm:"type:text" json:"description"`
	CoverImageURL string    `gorm:"column:cover_image_url;size:512" json:"coverImageUrl"`
	IsLandEstate  bool      `gorm:"column:is_land_estate;default:false" json:"isLandEstate"`
}

// TableName maps Estate to the estates table.
func (Estate) TableName() string { return "estates" }

// EstateRepository defines the data access interface for estates.
type EstateRepository interface {
	Create(ctx context.Context, estate *Estate) error
	GetByID(ctx context.Context, id uuid.UUID) (*Estate, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, req PageRequest) (*PageResult[Estate], error)
	ListResidential(ctx context.Context, req PageRequest) (*PageResult[Estate], error)
	ListLand(ctx context.Context, req PageRequest) (*PageResult[Estate], error)
	Update(ctx context.Context, estate *Estate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EstateService defines the business logic interface for estates.
type EstateService interface {
	CreateEstate(ctx context.Context, estate *Estate) (*Estate, error)
	GetEstate(ctx context.Context, id uuid.UUID) (*Estate, error)
	ListEstatesBySeller(ctx context.Context, sellerID uuid.UUID, req PageRequest) (*PageResult[Estate], error)
	ListResidentialEstates(ctx context.Context, req PageRequest) (*PageResult[Estate], error)
	ListLandEstates(ctx context.Context, req PageRequest) (*PageResult[Estate], error)
	UpdateEstateDetails(ctx context.Context, id uuid.UUID, name, description, coverImageURL *string) (*Estate, error)
	DeleteEstate(ctx context.Context, id uuid.UUID) error
}
