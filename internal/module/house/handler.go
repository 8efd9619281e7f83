package house

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// HouseHandler handles REST API requests for the rental house resource.
type HouseHandler struct {
	svc domain.HouseService
}

// NewHouseHandler creates a new HouseHandler with the given service.
func NewHouseHandler(svc domain.HouseService) *HouseHandler {
	return &HouseHandler{svc: svc}
}

// Create handles POST /api/v1/houses.
func (h *HouseHandler) Create(c *gin.Context) {
	var req CreateHouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid sellerId", nil))
		return
	}

	house := &domain.House{
		SellerID:      sellerID,
		Name:          req.Name,
		Type:          req.Type,
		Address:       req.Address,
		State:         req.State,
		LGA:           req.LGA,
		CoverImageURL: req.CoverImageURL,
		IsSingleHouse: req.IsSingleHouse,
	}
	if house.EstateID, err = parseOptionalUUID(req.EstateID, "estateId"); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}
	if house.LawyerID, err = parseOptionalUUID(req.LawyerID, "lawyerId"); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}
	if house.CaretakerID, err = parseOptionalUUID(req.CaretakerID, "caretakerId"); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	created, err := h.svc.CreateHouse(c.Request.Context(), house)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "House created successfully")
}

// Get handles GET /api/v1/houses/:id.
func (h *HouseHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	house, err := h.svc.GetHouse(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, house)
}

// List handles GET /api/v1/houses.
func (h *HouseHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListHouses(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Houses retrieved successfully")
}

// ListByEstate handles GET /api/v1/houses/estate/:estateId.
func (h *HouseHandler) ListByEstate(c *gin.Context) {
	estateID, err := parseUUID(c, "estateId")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListHousesByEstate(c.Request.Context(), estateID, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Houses retrieved successfully")
}

// ListStandalone handles GET /api/v1/houses/standalone.
func (h *HouseHandler) ListStandalone(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.ListStandaloneHouses(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Houses retrieved successfully")
}

// Update handles PATCH /api/v1/houses/:id.
func (h *HouseHandler) Update(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateHouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	update := domain.HouseUpdate{
		Name:          req.Name,
		Type:          req.Type,
		Address:       req.Address,
		State:         req.State,
		LGA:           req.LGA,
		CoverImageURL: req.CoverImageURL,
	}
	if update.LawyerID, err = parseOptionalUUIDPtr(req.LawyerID, "lawyerId"); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}
	if update.CaretakerID, err = parseOptionalUUIDPtr(req.CaretakerID, "caretakerId"); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	house, err := h.svc.UpdateHouse(c.Request.Context(), id, update)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, house)
}

// Delete handles DELETE /api/v1/houses/:id.
func (h *HouseHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteHouse(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "House deleted successfully")
}

func parseUUID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return id, nil
}

func parseOptionalUUID(raw, name string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return &id, nil
}

func parseOptionalUUIDPtr(raw *string, name string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	return parseOptionalUUID(*raw, name)
}
