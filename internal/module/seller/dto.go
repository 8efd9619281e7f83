package seller

// RegisterSellerRequest represents the input for registering a seller profile.
type RegisterSellerRequest struct {
	UserID                uint   `json:"userId" binding:"required"`
	SellerType            string `json:"sellerType" binding:"required,oneof=individual company"`
	BusinessName          string `json:"businessName" binding:"omitempty,max=255"`
	BusinessAddress       string `json:"businessAddress" binding:"omitempty,max=255"`
	BusinessEmail         string `json:"businessEmail" binding:"omitempty,email"`
	BusinessPhone         string `json:"businessPhone" binding:"omitempty,max=32"`
	BusinessSpecification string `json:"businessSpecification" binding:"omitempty,max=255"`
	CACNumber             string `json:"cacNumber" binding:"omitempty,max=64"`
	TINNumber             string `json:"tinNumber" binding:"omitempty,max=64"`
	State                 string `json:"state" binding:"omitempty,max=100"`
}

// UpdateSellerRequest represents the input for updating a seller's business
// profile. Omitted fields are left unchanged.
type UpdateSellerRequest struct {
	BusinessName          *string `json:"businessName" binding:"omitempty,max=255"`
	BusinessAddress       *string `json:"businessAddress" binding:"omitempty,max=255"`
	BusinessEmail         *string `json:"businessEmail" binding:"omitempty,email"`
	BusinessPhone         *string `json:"businessPhone" binding:"omitempty,max=32"`
	BusinessSpecification *string `json:"businessSpecification" binding:"omitempty,max=255"`
	State                 *string `json:"state" binding:"omitempty,max=100"`
}
