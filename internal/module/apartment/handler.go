package apartment

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// ApartmentHandler handles REST API requests for the apartment resource.
type ApartmentHandler struct {
	svc domain.ApartmentService
}

// NewApartmentHandler creates a new ApartmentHandler with the given service.
func NewApartmentHandler(svc domain.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{svc: svc}
}

// Create handles POST /api/v1/apartments.
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req CreateApartmentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid sellerId", nil))
		return
	}

	apartment := &domain.Apartment{
		SellerID:           sellerID,
		ApartmentAddress:   req.ApartmentAddress,
		HouseName:          req.HouseName,
		UnitNumber:         req.UnitNumber,
		NumberOfBedrooms:   req.NumberOfBedrooms,
		NumberOfToilets:    req.NumberOfToilets,
		RoomSize:           req.RoomSize,
		Description:        req.Description,
		Images:             req.Images,
		CoverImageURL:      req.CoverImageURL,
		ApartmentCondition: req.ApartmentCondition,
		FurnishedStatus:    req.FurnishedStatus,
		ApartmentType:      req.ApartmentType,
		ApartmentStatus:    req.ApartmentStatus,
		RentAmount:         req.RentAmount,
		CautionFee:         req.CautionFee,
		PaymentDuration:    req.PaymentDuration,
	}
	if req.HouseID != "" {
		houseID, err := uuid.Parse(req.HouseID)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid houseId", nil))
			return
		}
		apartment.HouseID = &houseID
	}

	created, err := h.svc.CreateApartment(c.Request.Context(), apartment)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "Apartment created successfully")
}

// Get handles GET /api/v1/apartments/:id.
func (h *ApartmentHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	apartment, err := h.svc.GetApartment(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, apartment)
}

// List handles GET /api/v1/apartments.
func (h *ApartmentHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListApartments(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Apartments retrieved successfully")
}

// ListByHouse handles GET /api/v1/apartments/house/:houseId.
func (h *ApartmentHandler) ListByHouse(c *gin.Context) {
	houseID, err := parseUUID(c, "houseId")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListApartmentsByHouse(c.Request.Context(), houseID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Apartments retrieved successfully")
}

// Search handles GET /api/v1/apartments/search?q=term.
func (h *ApartmentHandler) Search(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.SearchApartments(c.Request.Context(), c.Query("q"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Apartments retrieved successfully")
}

// Update handles PATCH /api/v1/apartments/:id.
func (h *ApartmentHandler) Update(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateApartmentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	update := domain.ApartmentUpdate{
		ApartmentAddress: req.ApartmentAddress,
		HouseName:        req.HouseName,
		UnitNumber:       req.UnitNumber,
		NumberOfBedrooms: req.NumberOfBedrooms,
		NumberOfToilets:  req.NumberOfToilets,
		Description:      req.Description,
		Images:           req.Images,
		CoverImageURL:    req.CoverImageURL,
		FurnishedStatus:  req.FurnishedStatus,
		ApartmentType:    req.ApartmentType,
		ApartmentStatus:  req.ApartmentStatus,
		RentAmount:       req.RentAmount,
		CautionFee:       req.CautionFee,
		PaymentDuration:  req.PaymentDuration,
	}

	apartment, err := h.svc.UpdateApartment(c.Request.Context(), id, update)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, apartment)
}

// AssignTenant handles PUT /api/v1/apartments/:id/tenant.
func (h *ApartmentHandler) AssignTenant(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req AssignTenantRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	var tenantID *uuid.UUID
	if req.TenantID != nil {
		parsed, err := uuid.Parse(*req.TenantID)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid tenantId", nil))
			return
		}
		tenantID = &parsed
	}

	if err := h.svc.UpdateApartmentTenant(c.Request.Context(), id, tenantID); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Tenant updated successfully")
}

// Delete handles DELETE /api/v1/apartments/:id.
func (h *ApartmentHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteApartment(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Apartment deleted successfully")
}

// Stats handles GET /api/v1/apartments/stats.
func (h *ApartmentHandler) Stats(c *gin.Context) {
	filter := domain.StatsFilter{
		Location: c.Query("location"),
		SellerID: c.Query("sellerId"),
	}

	stats, err := h.svc.ApartmentStats(c.Request.Context(), filter)
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
