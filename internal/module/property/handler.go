package property

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/pkg"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// PropertyHandler serves the unified cross-type listing endpoints.
type PropertyHandler struct {
	svc domain.PropertyListingService
}

// NewPropertyHandler creates a new PropertyHandler with the given service.
func NewPropertyHandler(svc domain.PropertyListingService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// listingMeta extends the standard pagination block with the per-type
// breakdown of the unified result set.
type listingMeta struct {
	Page          int               `json:"page"`
	Limit         int               `json:"limit"`
	Total         int               `json:"total"`
	TotalPages    int               `json:"totalPages"`
	PropertyTypes domain.TypeCounts `json:"propertyTypes"`
}

// parseFilter reads the cross-type filter from query parameters. The
// seller id may instead come from the route parameter on the
// seller-scoped endpoint.
func parseFilter(c *gin.Context) (domain.ListingFilter, error) {
	filter := domain.ListingFilter{
		Location:     c.Query("location"),
		PropertyType: domain.PropertyType(c.DefaultQuery("propertyType", "all")),
		SellerID:     c.Query("sellerId"),
	}
	if sellerID := c.Param("sellerId"); sellerID != "" {
		filter.SellerID = sellerID
	}

	if !filter.PropertyType.Valid() {
		return filter, fmt.Errorf("invalid propertyType: %s", filter.PropertyType)
	}
	if filter.SellerID != "" {
		if _, err := uuid.Parse(filter.SellerID); err != nil {
			return filter, fmt.Errorf("invalid sellerId: %s", filter.SellerID)
		}
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid minPrice: %s", raw)
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid maxPrice: %s", raw)
		}
		filter.MaxPrice = &v
	}

	return filter, nil
}

// parsePage reads page/limit with the unified endpoints' defaults:
// page >= 1, limit clamped to [1,100].
func parsePage(c *gin.Context) domain.ListingPage {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return domain.ListingPage{Page: page, Limit: limit}
}

func parseSort(c *gin.Context) domain.ListingSort {
	return domain.ListingSort{
		By:    c.DefaultQuery("sortBy", "created_at"),
		Order: c.DefaultQuery("sortOrder", "desc"),
	}
}

func buildMeta(page domain.ListingPage, result *domain.UnifiedListingResult) listingMeta {
	totalPages := int(math.Ceil(float64(result.Total) / float64(page.Limit)))
	if totalPages == 0 {
		totalPages = 1
	}
	return listingMeta{
		Page:          page.Page,
		Limit:         page.Limit,
		Total:         result.Total,
		TotalPages:    totalPages,
		PropertyTypes: result.TypeCounts,
	}
}

// ListByLocation handles GET /api/v1/properties.
func (h *PropertyHandler) ListByLocation(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}
	if filter.Location == "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "location query parameter is required", nil))
		return
	}

	page := parsePage(c)
	result, err := h.svc.ListUnified(c.Request.Context(), filter, page, parseSort(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	message := fmt.Sprintf("Found %d properties in %s", result.Total, filter.Location)
	pkg.List(c, result.Rows, buildMeta(page, result), message)
}

// ListBySeller handles GET /api/v1/properties/seller/:sellerId. A
// seller with zero listings across all three types is reported as not
// found rather than as an empty page.
func (h *PropertyHandler) ListBySeller(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	page := parsePage(c)
	result, err := h.svc.ListUnified(c.Request.Context(), filter, page, parseSort(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if result.Total == 0 {
		pkg.Fail(c, http.StatusNotFound, "NOT_FOUND", "No properties found for this seller")
		return
	}

	message := fmt.Sprintf("Found %d properties for seller %s", result.Total, filter.SellerID)
	pkg.List(c, result.Rows, buildMeta(page, result), message)
}

// Stats handles GET /api/v1/properties/stats.
func (h *PropertyHandler) Stats(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	stats, err := h.svc.AggregateStats(c.Request.Context(), filter)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.SuccessMsg(c, stats, "Statistics calculated successfully")
}
