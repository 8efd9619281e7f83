package domain

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apartment is a rental unit inside a house. Rows are soft deleted:
// queries must exclude deleted_at, including the raw unified listing
// queries that bypass GORM.
type Apartment struct {
	UUIDModel
	HouseID            *uuid.UUID      `gorm:"type:uuid;column:house_id;index" json:"houseId"`
	SellerID           uuid.UUID       `gorm:"type:uuid;column:seller_id;index;not null" json:"sellerId"`
	TenantID           *uuid.UUID      `gorm:"type:uuid;column:tenant_id" json:"tenantId"`
	ApartmentAddress   string          `gorm:"column:apartment_address;size:255" json:"apartmentAddress"`
	HouseName          string          `gorm:"column:house_name;size:255" json:"houseName"`
	UnitNumber         string          `gorm:"column:unit_number;size:32" json:"unitNumber"`
	NumberOfBedrooms   int             `gorm:"column:number_of_bedrooms" json:"numberOfBedrooms"`
	NumberOfToilets    int             `gorm:"column:number_of_toilets" json:"numberOfToilets"`
	RoomSize           *float64        `gorm:"column:room_size" json:"roomSize"`
	Description        string          `gorm:"type:text" json:"description"`
	Images             json.RawMessage `gorm:"type:jsonb" json:"images"`
	CoverImageURL      string          `gorm:"column:cover_image_url;size:512" json:"coverImageUrl"`
	ApartmentCondition string          `gorm:"column:apartment_condition;size:50" json:"apartmentCondition"`
	FurnishedStatus    string          `gorm:"column:furnished_status;size:50" json:"furnishedStatus"`
	ApartmentType      string          `gorm:"column:apartment_type;size:50" json:"apartmentType"`
	ApartmentStatus    string          `gorm:"column:apartment_status;size:50" json:"apartmentStatus"`
	RentAmount         *float64        `gorm:"column:rent_amount" json:"rentAmount"`
	CautionFee         *float64        `gorm:"column:caution_fee" json:"cautionFee"`
	PaymentDuration    string          `gorm:"column:payment_duration;size:32" json:"paymentDuration"`
	DeletedAt          gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

// TableName maps Apartment to the apartments table.
func (Apartment) TableName() string { return "apartments" }

// ApartmentRepository defines the data access interface for apartments.
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *Apartment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Apartment, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Apartment], error)
	ListByHouse(ctx context.Context, houseID uuid.UUID, req PageRequest) (*PageResult[Apartment], error)
	Search(ctx context.Context, term string, req PageRequest) (*PageResult[Apartment], error)
	Update(ctx context.Context, apartment *Apartment) error
	UpdateTenant(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}

// ApartmentService defines the business logic interface for apartments.
type ApartmentService interface {
	CreateApartment(ctx context.Context, apartment *Apartment) (*Apartment, error)
	GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	ListApartments(ctx context.Context, req PageRequest) (*PageResult[Apartment], error)
	ListApartmentsByHouse(ctx context.Context, houseID uuid.UUID, req PageRequest) (*PageResult[Apartment], error)
	SearchApartments(ctx context.Context, term string, req PageRequest) (*PageResult[Apartment], error)
	UpdateApartment(ctx context.Context, id uuid.UUID, update ApartmentUpdate) (*Apartment, error)
	UpdateApartmentTenant(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	DeleteApartment(ctx context.Context, id uuid.UUID) error
	ApartmentStats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}

// ApartmentUpdate carries the mutable apartment fields. Nil fields are
// left unchanged.
type ApartmentUpdate struct {
	ApartmentAddress *string
	HouseName        *string
	UnitNumber       *string
	NumberOfBedrooms *int
	NumberOfToilets  *int
	Description      *string
	Images           json.RawMessage
	CoverImageURL    *string
	FurnishedStatus  *string
	ApartmentType    *string
	ApartmentStatus  *string
	RentAmount       *float64
	CautionFee       *float64
	PaymentDuration  *string
}
