package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LandProperty is a land parcel offered for sale. The table has no soft
// delete column; deletes are hard deletes.
type LandProperty struct {
	PropertyID       uuid.UUID       `gorm:"type:uuid;column:property_id;primaryKey" json:"propertyId"`
	EstateID         *uuid.UUID      `gorm:"type:uuid;column:estate_id;index" json:"estateId"`
	SellerID         uuid.UUID       `gorm:"type:uuid;column:seller_id;index;not null" json:"sellerId"`
	PropertyName     string          `gorm:"column:property_name;size:255;not null" json:"propertyName"`
	PropertyAddress  string          `gorm:"column:property_address;size:255" json:"propertyAddress"`
	StateLocation    string          `gorm:"column:state_location;size:100" json:"stateLocation"`
	ShortDescription string          `gorm:"column:short_description;size:512" json:"shortDescription"`
	LongDescription  string          `gorm:"column:long_description;type:text" json:"longDescription"`
	CoverImageURL    string          `gorm:"column:cover_image_url;size:512" json:"coverImageUrl"`
	GalleryImages    json.RawMessage `gorm:"column:gallery_images;type:jsonb" json:"galleryImages"`
	LandSize         string          `gorm:"column:land_size;size:50" json:"landSize"`
	LandType         string          `gorm:"column:land_type;size:50" json:"landType"`
	Price            *float64        `gorm:"column:price" json:"price"`
	BookingFee       *float64        `gorm:"column:booking_fee" json:"bookingFee"`
	SurveyStatus     string          `gorm:"column:survey_status;size:50" json:"surveyStatus"`
	UsageStatus      string          `gorm:"column:usage_status;size:50" json:"usageStatus"`
	IsEstateLand     bool            `gorm:"column:is_estate_land;default:false" json:"isEstateLand"`
	SoldOut          bool            `gorm:"column:sold_out;default:false" json:"soldOut"`
	AvailableQty     int             `gorm:"column:available_quantity;default:0" json:"availableQuantity"`
	CreatedAt        time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName maps LandProperty to the land_properties table.
func (LandProperty) TableName() string { return "land_properties" }

// BeforeCreate assigns a fresh property ID when none was provided.
// LandProperty cannot embed UUIDModel because its key column is
// property_id rather than id.
func (l *LandProperty) BeforeCreate(*gorm.DB) error {
	if l.PropertyID == uuid.Nil {
		l.PropertyID = uuid.New()
	}
	return nil
}

// LandRepository defines the data access interface for land parcels.
type LandRepository interface {
	Create(ctx context.Context, land *LandProperty) error
	GetByID(ctx context.Context, id uuid.UUID) (*LandProperty, error)
	List(ctx context.Context, req PageRequest) (*PageResult[LandProperty], error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, req PageRequest) (*PageResult[LandProperty], error)
	ListAvailable(ctx context.Context, req PageRequest) (*PageResult[LandProperty], error)
	Search(ctx context.Context, term string, req PageRequest) (*PageResult[LandProperty], error)
	Update(ctx context.Context, land *LandProperty) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}

// LandService defines the business logic interface for land parcels.
type LandService interface {
	CreateLand(ctx context.Context, land *LandProperty) (*LandProperty, error)
	GetLand(ctx context.Context, id uuid.UUID) (*LandProperty, error)
	ListLand(ctx context.Context, req PageRequest) (*PageResult[LandProperty], error)
	ListLandBySeller(ctx context.Context, sellerID uuid.UUID, req PageRequest) (*PageResult[LandProperty], error)
	ListAvailableLand(ctx context.Context, req PageRequest) (*PageResult[LandProperty], error)
	SearchLand(ctx context.Context, term string, req PageRequest) (*PageResult[LandProperty], error)
	UpdateLand(ctx context.Context, id uuid.UUID, update LandUpdate) (*LandProperty, error)
	DeleteLand(ctx context.Context, id uuid.UUID) error
	LandStats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}

// LandUpdate carries the mutable land parcel fields. Nil fields are left
// unchanged.
type LandUpdate struct {
	PropertyName     *string
	PropertyAddress  *string
	StateLocation    *string
	ShortDescription *string
	LongDescription  *string
	CoverImageURL    *string
	GalleryImages    json.RawMessage
	LandSize         *string
	LandType         *string
	Price            *float64
	SoldOut          *bool
	AvailableQty     *int
}
