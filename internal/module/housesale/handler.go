package housesale

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

// HouseSaleHandler handles REST API requests for the sale listing resource.
type HouseSaleHandler struct {
	svc domain.HouseSaleService
}

// NewHouseSaleHandler creates a new HouseSaleHandler with the given service.
func NewHouseSaleHandler(svc domain.HouseSaleService) *HouseSaleHandler {
	return &HouseSaleHandler{svc: svc}
}

// Create handles POST /api/v1/sales.
func (h *HouseSaleHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid ownerId", nil))
		return
	}

	sale := &domain.HouseSale{
		OwnerID:       ownerID,
		Address:       req.Address,
		State:         req.State,
		LGA:           req.LGA,
		Landmark:      req.Landmark,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		HouseType:     req.HouseType,
		LandSize:      req.LandSize,
		Description:   req.Description,
		Images:        req.Images,
		Features:      req.Features,
		AskingPrice:   req.AskingPrice,
		TitleDocument: req.TitleDocument,
		HasSurveyPlan: req.HasSurveyPlan,
	}
	if req.AgentID != "" {
		agentID, err := uuid.Parse(req.AgentID)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid agentId", nil))
			return
		}
		sale.AgentID = &agentID
	}
	if req.LawyerID != "" {
		lawyerID, err := uuid.Parse(req.LawyerID)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid lawyerId", nil))
			return
		}
		sale.LawyerID = &lawyerID
	}

	created, err := h.svc.CreateListing(c.Request.Context(), sale)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, created, "Listing created successfully")
}

// Get handles GET /api/v1/sales/:id.
func (h *HouseSaleHandler) Get(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	sale, err := h.svc.GetListing(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sale)
}

// List handles GET /api/v1/sales. An optional status query parameter
// narrows the result to one lifecycle state.
func (h *HouseSaleHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	var result *domain.PageResult[domain.HouseSale]
	var err error
	if status := c.Query("status"); status != "" {
		delete(req.Filter, "status")
		result, err = h.svc.ListByStatus(c.Request.Context(), status, req)
	} else {
		result, err = h.svc.ListListings(c.Request.Context(), req)
	}
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Listings retrieved successfully")
}

// Search handles GET /api/v1/sales/search?q=term.
func (h *HouseSaleHandler) Search(c *gin.Context) {
	req := pkg.ParsePageRequest(c)
	result, err := h.svc.SearchListings(c.Request.Context(), c.Query("q"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result.Items, pkg.PageMeta(result), "Listings retrieved successfully")
}

// UpdatePrice handles PUT /api/v1/sales/:id/price.
func (h *HouseSaleHandler) UpdatePrice(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdatePriceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sale, err := h.svc.UpdatePrice(c.Request.Context(), id, req.AskingPrice)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, sale, "Price updated successfully")
}

// UpdateVerification handles PUT /api/v1/sales/:id/verification.
func (h *HouseSaleHandler) UpdateVerification(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateVerificationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sale, err := h.svc.UpdateVerification(c.Request.Context(), id, req.Status)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, sale, "Verification status updated successfully")
}

// MarkUnderOffer handles POST /api/v1/sales/:id/under-offer.
func (h *HouseSaleHandler) MarkUnderOffer(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	sale, err := h.svc.MarkUnderOffer(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, sale, "Listing marked under offer")
}

// MarkSold handles POST /api/v1/sales/:id/sold.
func (h *HouseSaleHandler) MarkSold(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req MarkSoldRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sale, err := h.svc.MarkSold(c.Request.Context(), id, req.FinalSalePrice)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, sale, "Listing marked sold")
}

// Withdraw handles POST /api/v1/sales/:id/withdraw.
func (h *HouseSaleHandler) Withdraw(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	sale, err := h.svc.Withdraw(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, sale, "Listing withdrawn")
}

// Delete handles DELETE /api/v1/sales/:id.
func (h *HouseSaleHandler) Delete(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteListing(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, nil, "Listing deleted successfully")
}

// Stats handles GET /api/v1/sales/stats.
func (h *HouseSaleHandler) Stats(c *gin.Context) {
	filter := domain.StatsFilter{
		Location: c.Query("location"),
		SellerID: c.Query("sellerId"),
	}

	stats, err := h.svc.ListingStats(c.Request.Context(), filter)
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
