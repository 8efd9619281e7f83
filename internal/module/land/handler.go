package land

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// LandHandler handles REST API requests for the land parcel resource.
type LandHandler struct {
	svc domain.LandService
}

// NewLandHandler creates a new LandHandler with the given service.
func NewLandHandler(svc domain.LandService) *LandHandler {
	return &LandHandler{svc: svc}
}

// Create handles POST /api/v1/land.
func (h *LandHandler) Create(c *gin.Context) {
	var req CreateLandRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid sellerId", nil))
		return
	}

	land := &domain.LandProperty{
		SellerID:         sellerID,
		PropertyName:     req.PropertyName,
		PropertyAddress:  req.PropertyAddress,
		StateLocation:    req.StateLocation,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		CoverImageURL:    req.CoverImageURL,
		GalleryImages:    req.GalleryImages,
		LandSize:         req.LandSize,
		LandType:         req.LandType,
		Price:            req.Price,
		BookingFee:       req.BookingFee,
		SurveyStatus:     req.SurveyStatus,
		UsageStatus:      req.UsageStatus,
		AvailableQty:     req.AvailableQty,
	}
	if req.EstateID != "" {
		estateID, err := uuid.Parse(req.EstateID)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid estateId", nil))
			return
		}
		land.EstateID = &estateID
	}

	created, err := h.svc.CreateLand(c.Request.Context(), land)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "Land property created successfully")
}

// Get handles GET /api/v1/land/:id.
func (h *LandHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	land, err := h.svc.GetLand(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, land)
}

// List handles GET /api/v1/land.
func (h *LandHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListLand(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Land properties retrieved successfully")
}

// ListBySeller handles GET /api/v1/land/seller/:sellerId.
func (h *LandHandler) ListBySeller(c *gin.Context) {
	sellerID, err := parseUUID(c, "sellerId")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListLandBySeller(c.Request.Context(), sellerID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Land properties retrieved successfully")
}

// ListAvailable handles GET /api/v1/land/available.
func (h *LandHandler) ListAvailable(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListAvailableLand(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Land properties retrieved successfully")
}

// Search handles GET /api/v1/land/search?q=term.
func (h *LandHandler) Search(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.SearchLand(c.Request.Context(), c.Query("q"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Land properties retrieved successfully")
}

// Update handles PATCH /api/v1/land/:id.
func (h *LandHandler) Update(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateLandRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	update := domain.LandUpdate{
		PropertyName:     req.PropertyName,
		PropertyAddress:  req.PropertyAddress,
		StateLocation:    req.StateLocation,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		CoverImageURL:    req.CoverImageURL,
		GalleryImages:    req.GalleryImages,
		LandSize:         req.LandSize,
		LandType:         req.LandType,
		Price:            req.Price,
		SoldOut:          req.SoldOut,
		AvailableQty:     req.AvailableQty,
	}

	land, err := h.svc.UpdateLand(c.Request.Context(), id, update)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, land)
}

// Delete handles DELETE /api/v1/land/:id.
func (h *LandHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteLand(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Land property deleted successfully")
}

// Stats handles GET /api/v1/land/stats.
func (h *LandHandler) Stats(c *gin.Context) {
	filter := domain.StatsFilter{
		Location: c.Query("location"),
		SellerID: c.Query("sellerId"),
	}

	stats, err := h.svc.LandStats(c.Request.Context(), filter)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, stats)
}

func parseUUID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}
