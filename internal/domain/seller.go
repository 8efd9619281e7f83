package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seller types.
const (
	SellerTypeIndividual = "individual"
	SellerTypeCompany    = "company"
)

// Seller is a marketplace seller profile, either an individual or a
// registered company, linked to an account User.
type Seller struct {
	UUIDModel
	UserID                uint           `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	SellerType            string         `gorm:"column:seller_type;size:20;not null" json:"sellerType"`
	BusinessName          string         `gorm:"column:business_name;size:255" json:"businessName"`
	BusinessAddress       string         `gorm:"column:business_address;size:255" json:"businessAddress"`
	BusinessEmail         string         `gorm:"column:business_email;size:255" json:"businessEmail"`
	BusinessPhone         string         `gorm:"column:business_phone;size:32" json:"businessPhone"`
	BusinessSpecification string         `gorm:"column:business_specification;size:255" json:"businessSpecification"`
	CACNumber             string         `gorm:"column:cac_number;size:64" json:"cacNumber"`
	TINNumber             string         `gorm:"column:tin_number;size:64" json:"tinNumber"`
	State                 string         `gorm:"size:100" json:"state"`
	Rating                float64        `gorm:"default:0" json:"rating"`
	IsVerified            bool           `gorm:"column:is_verified;default:false" json:"isVerified"`
	IsActive              bool           `gorm:"column:is_active;default:true" json:"isActive"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

// TableName maps Seller to the sellers table.
func (Seller) TableName() string { return "sellers" }

// SellerRepository defines the data access interface for sellers.
type SellerRepository interface {
	Create(ctx context.Context, seller *Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*Seller, error)
	GetByUserID(ctx context.Context, userID uint) (*Seller, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Seller], error)
	Search(ctx context.Context, term string, req PageRequest) (*PageResult[Seller], error)
	TopRated(ctx context.Context, minRating float64, limit int) ([]Seller, error)
	Verified(ctx context.Context, req PageRequest) (*PageResult[Seller], error)
	Update(ctx context.Context, seller *Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SellerService defines the business logic interface for sellers.
type SellerService interface {
	RegisterSeller(ctx context.Context, seller *Seller) (*Seller, error)
	GetSeller(ctx context.Context, id uuid.UUID) (*Seller, error)
	GetSellerByUser(ctx context.Context, userID uint) (*Seller, error)
	ListSellers(ctx context.Context, req PageRequest) (*PageResult[Seller], error)
	SearchSellers(ctx context.Context, term string, req PageRequest) (*PageResult[Seller], error)
	TopRatedSellers(ctx context.Context, minRating float64, limit int) ([]Seller, error)
	VerifiedSellers(ctx context.Context, req PageRequest) (*PageResult[Seller], error)
	UpdateBusinessProfile(ctx context.Context, id uuid.UUID, update SellerProfileUpdate) (*Seller, error)
	DeleteSeller(ctx context.Context, id uuid.UUID) error
}

// SellerProfileUpdate carries the mutable business profile fields.
// Nil fields are left unchanged.
type SellerProfileUpdate struct {
	BusinessName          *string
	BusinessAddress       *string
	BusinessEmail         *string
	BusinessPhone         *string
	BusinessSpecification *string
	State                 *string
}
