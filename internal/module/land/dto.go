package land

import "encoding/json"

// CreateLandRequest is the request payload for creating a land parcel.
type CreateLandRequest struct {
	SellerID         string          `json:"sellerId" binding:"required,uuid"`
	EstateID         string          `json:"estateId" binding:"omitempty,uuid"`
	PropertyName     string          `json:"propertyName" binding:"required,min=2,max=255"`
	PropertyAddress  string          `json:"propertyAddress" binding:"omitempty,max=255"`
	StateLocation    string          `json:"stateLocation" binding:"omitempty,max=100"`
	ShortDescription string          `json:"shortDescription" binding:"omitempty,max=512"`
	LongDescription  string          `json:"longDescription"`
	CoverImageURL    string          `json:"coverImageUrl" binding:"omitempty,url"`
	GalleryImages    json.RawMessage `json:"galleryImages"`
	LandSize         string          `json:"landSize" binding:"omitempty,max=50"`
	LandType         string          `json:"landType" binding:"omitempty,max=50"`
	Price            *float64        `json:"price" binding:"omitempty,gte=0"`
	BookingFee       *float64        `json:"bookingFee" binding:"omitempty,gte=0"`
	SurveyStatus     string          `json:"surveyStatus" binding:"omitempty,max=50"`
	UsageStatus      string          `json:"usageStatus" binding:"omitempty,max=50"`
	AvailableQty     int             `json:"availableQuantity" binding:"omitempty,min=0"`
}

// UpdateLandRequest is the request payload for updating a land parcel.
// Only non-nil fields are applied.
type UpdateLandRequest struct {
	PropertyName     *string         `json:"propertyName" binding:"omitempty,min=2,max=255"`
	PropertyAddress  *string         `json:"propertyAddress" binding:"omitempty,max=255"`
	StateLocation    *string         `json:"stateLocation" binding:"omitempty,max=100"`
	ShortDescription *string         `json:"shortDescription" binding:"omitempty,max=512"`
	LongDescription  *string         `json:"longDescription"`
	CoverImageURL    *string         `json:"coverImageUrl" binding:"omitempty,url"`
	GalleryImages    json.RawMessage `json:"galleryImages"`
	LandSize         *string         `json:"landSize" binding:"omitempty,max=50"`
	LandType         *string         `json:"landType" binding:"omitempty,max=50"`
	Price            *float64        `json:"price" binding:"omitempty,gte=0"`
	SoldOut          *bool           `json:"soldOut"`
	AvailableQty     *int            `json:"availableQuantity" binding:"omitempty,min=0"`
}
