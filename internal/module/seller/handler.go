package seller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// SellerHandler handles REST API requests for the seller resource.
type SellerHandler struct {
	svc domain.SellerService
}

// NewSellerHandler creates a new SellerHandler with the given service.
func NewSellerHandler(svc domain.SellerService) *SellerHandler {
	return &SellerHandler{svc: svc}
}

// Register handles POST /api/v1/sellers.
func (h *SellerHandler) Register(c *gin.Context) {
	var req RegisterSellerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	seller := &domain.Seller{
		UserID:                req.UserID,
		SellerType:            req.SellerType,
		BusinessName:          req.BusinessName,
		BusinessAddress:       req.BusinessAddress,
		BusinessEmail:         req.BusinessEmail,
		BusinessPhone:         req.BusinessPhone,
		BusinessSpecification: req.BusinessSpecification,
		CACNumber:             req.CACNumber,
		TINNumber:             req.TINNumber,
		State:                 req.State,
	}

	created, err := h.svc.RegisterSeller(c.Request.Context(), seller)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "Seller registered successfully")
}

// Get handles GET /api/v1/sellers/:id.
func (h *SellerHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	seller, err := h.svc.GetSeller(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, seller)
}

// GetByUser handles GET /api/v1/sellers/user/:userId.
func (h *SellerHandler) GetByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid userId: "+c.Param("userId"), nil))
		return
	}

	seller, err := h.svc.GetSellerByUser(c.Request.Context(), uint(userID))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, seller)
}

// List handles GET /api/v1/sellers.
func (h *SellerHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListSellers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Sellers retrieved successfully")
}

// Search handles GET /api/v1/sellers/search?q=term.
func (h *SellerHandler) Search(c *gin.Context) {
	term := c.Query("q")
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.SearchSellers(c.Request.Context(), term, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Sellers retrieved successfully")
}

// TopRated handles GET /api/v1/sellers/top-rated?minRating=4&limit=10.
func (h *SellerHandler) TopRated(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.DefaultQuery("minRating", "4"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sellers, err := h.svc.TopRatedSellers(c.Request.Context(), minRating, limit)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sellers)
}

// Verified handles GET /api/v1/sellers/verified.
func (h *SellerHandler) Verified(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.VerifiedSellers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Sellers retrieved successfully")
}

// Update handles PATCH /api/v1/sellers/:id.
func (h *SellerHandler) Update(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateSellerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	seller, err := h.svc.UpdateBusinessProfile(c.Request.Context(), id, domain.SellerProfileUpdate{
		BusinessName:          req.BusinessName,
		BusinessAddress:       req.BusinessAddress,
		BusinessEmail:         req.BusinessEmail,
		BusinessPhone:         req.BusinessPhone,
		BusinessSpecification: req.BusinessSpecification,
		State:                 req.State,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, seller)
}

// Delete handles DELETE /api/v1/sellers/:id.
func (h *SellerHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteSeller(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Seller deleted successfully")
}

// parseUUID extracts and validates a UUID URL parameter.
func parseUUID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}
