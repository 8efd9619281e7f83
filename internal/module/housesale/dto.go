package housesale

import "encoding/json"

// CreateListingRequest is the request payload for listing a house for sale.
type CreateListingRequest struct {
	OwnerID       string          `json:"ownerId" binding:"required,uuid"`
	AgentID       string          `json:"agentId" binding:"omitempty,uuid"`
	LawyerID      string          `json:"lawyerId" binding:"omitempty,uuid"`
	Address       string          `json:"address" binding:"required,min=3,max=255"`
	State         string          `json:"state" binding:"omitempty,max=100"`
	LGA           string          `json:"lga" binding:"omitempty,max=100"`
	Landmark      string          `json:"landmark" binding:"omitempty,max=255"`
	Bedrooms      int             `json:"bedrooms" binding:"omitempty,min=0,max=50"`
	Bathrooms     int             `json:"bathrooms" binding:"omitempty,min=0,max=50"`
	HouseType     string          `json:"houseType" binding:"omitempty,max=50"`
	LandSize      string          `json:"landSize" binding:"omitempty,max=50"`
	Description   string          `json:"description"`
	Images        json.RawMessage `json:"images"`
	Features      json.RawMessage `json:"features"`
	AskingPrice   *float64        `json:"askingPrice" binding:"omitempty,gte=0"`
	TitleDocument string          `json:"titleDocument" binding:"omitempty,max=512"`
	HasSurveyPlan bool            `json:"hasSurveyPlan"`
}

// UpdatePriceRequest changes the asking price of a listing.
type UpdatePriceRequest struct {
	AskingPrice float64 `json:"askingPrice" binding:"required,gt=0"`
}

// UpdateVerificationRequest moves a listing through the verification workflow.
type UpdateVerificationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}

// MarkSoldRequest closes a sale at the final negotiated price.
type MarkSoldRequest struct {
	FinalSalePrice float64 `json:"finalSalePrice" binding:"required,gt=0"`
}
