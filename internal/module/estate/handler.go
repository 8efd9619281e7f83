package estate

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// EstateHandler handles REST API requests for the estate resource.
type EstateHandler struct {
	svc domain.EstateService
}

// NewEstateHandler creates a new EstateHandler with the given service.
func NewEstateHandler(svc domain.EstateService) *EstateHandler {
	return &EstateHandler{svc: svc}
}

// Create handles POST /api/v1/estates.
func (h *EstateHandler) Create(c *gin.Context) {
	var req CreateEstateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid sellerId", nil))
		return
	}

	estate := &domain.Estate{
		SellerID:      sellerID,
		Name:          req.Name,
		Address:       req.Address,
		State:         req.State,
		LGA:           req.LGA,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		IsLandEstate:  req.IsLandEstate,
	}

	created, err := h.svc.CreateEstate(c.Request.Context(), estate)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "Estate created successfully")
}

// Get handles GET /api/v1/estates/:id.
func (h *EstateHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	estate, err := h.svc.GetEstate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, estate)
}

// ListBySeller handles GET /api/v1/estates/seller/:sellerId.
func (h *EstateHandler) ListBySeller(c *gin.Context) {
	sellerID, err := parseUUID(c, "sellerId")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListEstatesBySeller(c.Request.Context(), sellerID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Estates retrieved successfully")
}

// ListResidential handles GET /api/v1/estates/residential.
func (h *EstateHandler) ListResidential(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListResidentialEstates(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Estates retrieved successfully")
}

// ListLand handles GET /api/v1/estates/land.
func (h *EstateHandler) ListLand(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListLandEstates(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Estates retrieved successfully")
}

// Update handles PATCH /api/v1/estates/:id.
func (h *EstateHandler) Update(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateEstateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	estate, err := h.svc.UpdateEstateDetails(c.Request.Context(), id, req.Name, req.Description, req.CoverImageURL)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, estate)
}

// Delete handles DELETE /api/v1/estates/:id.
func (h *EstateHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteEstate(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Estate deleted successfully")
}

func parseUUID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}
