package estate

// CreateEstateRequest represents the input for creating an estate.
type CreateEstateRequest struct {
	SellerID      string `json:"sellerId" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,min=2,max=255"`
	Address       string `json:"address" binding:"omitempty,max=255"`
	State         string `json:"state" binding:"omitempty,max=100"`
	LGA           string `json:"lga" binding:"omitempty,max=100"`
	Description   string `json:"description" binding:"omitempty"`
	CoverImageURL string `json:"coverImageUrl" binding:"omitempty,url"`
	IsLandEstate  bool   `json:"isLandEstate"`
}

// UpdateEstateRequest represents the input for updating estate details.
// Omitted fields are left unchanged.
type UpdateEstateRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string `json:"description" binding:"omitempty"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,url"`
}
