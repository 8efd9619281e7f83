package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// House is a rental building, either standalone or part of an estate.
// Its units are listed separately as Apartments.
type House struct {
	UUIDModel
	EstateID      *uuid.UUID     `gorm:"type:uuid;column:estate_id;index" json:"estateId"`
	SellerID      uuid.UUID      `gorm:"type:uuid;column:seller_id;index;not null" json:"sellerId"`
	LawyerID      *uuid.UUID     `gorm:"type:uuid;column:lawyer_id" json:"lawyerId"`
	CaretakerID   *uuid.UUID     `gorm:"type:uuid;column:caretaker_id" json:"caretakerId"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Type          string         `gorm:"size:50" json:"type"`
	Address       string         `gorm:"size:255" json:"address"`
	State         string         `gorm:"size:100" json:"state"`
	LGA           string         `gorm:"column:lga;size:100" json:"lga"`
	CoverImageURL string         `gorm:"column:cover_image_url;size:512" json:"coverImageUrl"`
	IsSingleHouse bool           `gorm:"column:is_single_house;default:false" json:"isSingleHouse"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

// TableName maps House to the houses table.
func (House) TableName() string { return "houses" }

// HouseRepository defines the data access interface for rental houses.
type HouseRepository interface {
	Create(ctx context.Context, house *House) error
	GetByID(ctx context.Context, id uuid.UUID) (*House, error)
	List(ctx context.Context, req PageRequest) (*PageResult[House], error)
	ListByEstate(ctx context.Context, estateID uuid.UUID, req PageRequest) (*PageResult[House], error)
	ListStandalone(ctx context.Context, req PageRequest) (*PageResult[House], error)
	Update(ctx context.Context, house *House) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HouseService defines the business logic interface for rental houses.
type HouseService interface {
	CreateHouse(ctx context.Context, house *House) (*House, error)
	GetHouse(ctx context.Context, id uuid.UUID) (*House, error)
	ListHouses(ctx context.Context, req PageRequest) (*PageResult[House], error)
	ListHousesByEstate(ctx context.Context, estateID uuid.UUID, req PageRequest) (*PageResult[House], error)
	ListStandaloneHouses(ctx context.Context, req PageRequest) (*PageResult[House], error)
	UpdateHouse(ctx context.Context, id uuid.UUID, update HouseUpdate) (*House, error)
	DeleteHouse(ctx context.Context, id uuid.UUID) error
}

// HouseUpdate carries the mutable house fields. Nil fields are left unchanged.
type HouseUpdate struct {
	Name          *string
	Type          *string
	Address       *string
	State         *string
	LGA           *string
	CoverImageURL *string
	LawyerID      *uuid.UUID
	CaretakerID   *uuid.UUID
}
