package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale listing statuses.
const (
	SaleStatusListed     = "listed"
	SaleStatusUnderOffer = "under_offer"
	SaleStatusSold       = "sold"
	SaleStatusWithdrawn  = "withdrawn"
)

// Verification statuses for sale listings.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// HouseSale is a house offered for outright sale. Unlike apartments,
// the table has no soft delete column.
type HouseSale struct {
	HouseID            uuid.UUID       `gorm:"type:uuid;column:house_id;primaryKey" json:"houseId"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;column:owner_id;index;not null" json:"ownerId"`
	AgentID            *uuid.UUID      `gorm:"type:uuid;column:agent_id" json:"agentId"`
	LawyerID           *uuid.UUID      `gorm:"type:uuid;column:lawyer_id" json:"lawyerId"`
	BuyerID            *uuid.UUID      `gorm:"type:uuid;column:buyer_id" json:"buyerId"`
	Address            string          `gorm:"size:255;not null" json:"address"`
	State              string          `gorm:"size:100" json:"state"`
	LGA                string          `gorm:"column:lga;size:100" json:"lga"`
	Landmark           string          `gorm:"size:255" json:"landmark"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	HouseType          string          `gorm:"column:house_type;size:50" json:"houseType"`
	LandSize           string          `gorm:"column:land_size;size:50" json:"landSize"`
	Description        string          `gorm:"type:text" json:"description"`
	Images             json.RawMessage `gorm:"type:jsonb" json:"images"`
	Features           json.RawMessage `gorm:"type:jsonb" json:"features"`
	AskingPrice        *float64        `gorm:"column:asking_price" json:"askingPrice"`
	FinalSalePrice     *float64        `gorm:"column:final_sale_price" json:"finalSalePrice"`
	Status             string          `gorm:"size:32;default:listed" json:"status"`
	VerificationStatus string          `gorm:"column:verification_status;size:32;default:pending" json:"verificationStatus"`
	TitleDocument      string          `gorm:"column:title_document;size:512" json:"titleDocument"`
	HasSurveyPlan      bool            `gorm:"column:has_survey_plan;default:false" json:"hasSurveyPlan"`
	SoldAt             *time.Time      `gorm:"column:sold_at" json:"soldAt"`
	CreatedAt          time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName maps HouseSale to the houses_for_sale table.
func (HouseSale) TableName() string { return "houses_for_sale" }

// BeforeCreate assigns a fresh house ID when none was provided.
func (h *HouseSale) BeforeCreate(*gorm.DB) error {
	if h.HouseID == uuid.Nil {
		h.HouseID = uuid.New()
	}
	return nil
}

// HouseSaleRepository defines the data access interface for sale listings.
type HouseSaleRepository interface {
	Create(ctx context.Context, sale *HouseSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*HouseSale, error)
	List(ctx context.Context, req PageRequest) (*PageResult[HouseSale], error)
	ListByStatus(ctx context.Context, status string, req PageRequest) (*PageResult[HouseSale], error)
	Search(ctx context.Context, term string, req PageRequest) (*PageResult[HouseSale], error)
	Update(ctx context.Context, sale *HouseSale) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}

// HouseSaleService defines the business logic interface for sale listings.
type HouseSaleService interface {
	CreateListing(ctx context.Context, sale *HouseSale) (*HouseSale, error)
	GetListing(ctx context.Context, id uuid.UUID) (*HouseSale, error)
	ListListings(ctx context.Context, req PageRequest) (*PageResult[HouseSale], error)
	ListByStatus(ctx context.Context, status string, req PageRequest) (*PageResult[HouseSale], error)
	SearchListings(ctx context.Context, term string, req PageRequest) (*PageResult[HouseSale], error)
	UpdatePrice(ctx context.Context, id uuid.UUID, askingPrice float64) (*HouseSale, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status string) (*HouseSale, error)
	MarkUnderOffer(ctx context.Context, id uuid.UUID) (*HouseSale, error)
	MarkSold(ctx context.Context, id uuid.UUID, finalSalePrice float64) (*HouseSale, error)
	Withdraw(ctx context.Context, id uuid.UUID) (*HouseSale, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
	ListingStats(ctx context.Context, filter StatsFilter) (*TypeStats, error)
}
