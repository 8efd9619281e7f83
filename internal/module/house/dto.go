package house

// CreateHouseRequest is the request payload for creating a rental house.
type CreateHouseRequest struct {
	SellerID      string `json:"sellerId" binding:"required,uuid"`
	EstateID      string `json:"estateId" binding:"omitempty,uuid"`
	LawyerID      string `json:"lawyerId" binding:"omitempty,uuid"`
	CaretakerID   string `json:"caretakerId" binding:"omitempty,uuid"`
	Name          string `json:"name" binding:"required,min=2,max=255"`
	Type          string `json:"type" binding:"omitempty,max=50"`
	Address       string `json:"address" binding:"omitempty,max=255"`
	State         string `json:"state" binding:"omitempty,max=100"`
	LGA           string `json:"lga" binding:"omitempty,max=100"`
	CoverImageURL string `json:"coverImageUrl" binding:"omitempty,url"`
	IsSingleHouse bool   `json:"isSingleHouse"`
}

// UpdateHouseRequest is the request payload for updating a rental house.
// Only non-nil fields are applied.
type UpdateHouseRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Type          *string `json:"type" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	LGA           *string `json:"lga" binding:"omitempty,max=100"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,url"`
	LawyerID      *string `json:"lawyerId" binding:"omitempty,uuid"`
	CaretakerID   *string `json:"caretakerId" binding:"omitempty,uuid"`
}
