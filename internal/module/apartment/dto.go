package apartment

import "encoding/json"

// CreateApartmentRequest is the request payload for creating an apartment.
type CreateApartmentRequest struct {
	SellerID           string          `json:"sellerId" binding:"required,uuid"`
	HouseID            string          `json:"houseId" binding:"omitempty,uuid"`
	ApartmentAddress   string          `json:"apartmentAddress" binding:"omitempty,max=255"`
	HouseName          string          `json:"houseName" binding:"omitempty,max=255"`
	UnitNumber         string          `json:"unitNumber" binding:"omitempty,max=32"`
	NumberOfBedrooms   int             `json:"numberOfBedrooms" binding:"omitempty,min=0,max=50"`
	NumberOfToilets    int             `json:"numberOfToilets" binding:"omitempty,min=0,max=50"`
	RoomSize           *float64        `json:"roomSize" binding:"omitempty,gt=0"`
	Description        string          `json:"description"`
	Images             json.RawMessage `json:"images"`
	CoverImageURL      string          `json:"coverImageUrl" binding:"omitempty,url"`
	ApartmentCondition string          `json:"apartmentCondition" binding:"omitempty,max=50"`
	FurnishedStatus    string          `json:"furnishedStatus" binding:"omitempty,oneof=furnished semi_furnished unfurnished"`
	ApartmentType      string          `json:"apartmentType" binding:"omitempty,max=50"`
	ApartmentStatus    string          `json:"apartmentStatus" binding:"omitempty,oneof=vacant occupied under_maintenance"`
	RentAmount         *float64        `json:"rentAmount" binding:"omitempty,gte=0"`
	CautionFee         *float64        `json:"cautionFee" binding:"omitempty,gte=0"`
	PaymentDuration    string          `json:"paymentDuration" binding:"omitempty,max=32"`
}

// UpdateApartmentRequest is the request payload for updating an apartment.
// Only non-nil fields are applied.
type UpdateApartmentRequest struct {
	ApartmentAddress *string         `json:"apartmentAddress" binding:"omitempty,max=255"`
	HouseName        *string         `json:"houseName" binding:"omitempty,max=255"`
	UnitNumber       *string         `json:"unitNumber" binding:"omitempty,max=32"`
	NumberOfBedrooms *int            `json:"numberOfBedrooms" binding:"omitempty,min=0,max=50"`
	NumberOfToilets  *int            `json:"numberOfToilets" binding:"omitempty,min=0,max=50"`
	Description      *string         `json:"description"`
	Images           json.RawMessage `json:"images"`
	CoverImageURL    *string         `json:"coverImageUrl" binding:"omitempty,url"`
	FurnishedStatus  *string         `json:"furnishedStatus" binding:"omitempty,oneof=furnished semi_furnished unfurnished"`
	ApartmentType    *string         `json:"apartmentType" binding:"omitempty,max=50"`
	ApartmentStatus  *string         `json:"apartmentStatus" binding:"omitempty,oneof=vacant occupied under_maintenance"`
	RentAmount       *float64        `json:"rentAmount" binding:"omitempty,gte=0"`
	CautionFee       *float64        `json:"cautionFee" binding:"omitempty,gte=0"`
	PaymentDuration  *string         `json:"paymentDuration" binding:"omitempty,max=32"`
}

// AssignTenantRequest sets or clears the tenant of an apartment.
// A nil tenantId vacates the unit.
type AssignTenantRequest struct {
	TenantID *string `json:"tenantId" binding:"omitempty,uuid"`
}
