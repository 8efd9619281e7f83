package housesale

import "github.com/gin-gonic/gin"

// HouseSaleModule implements the app.Module interface for the sale listing domain.
type HouseSaleModule struct {
	handler *HouseSaleHandler
}

// NewModule creates a new HouseSaleModule with the given handler.
// Panics if h is nil.
func NewModule(h *HouseSaleHandler) *HouseSaleModule {
	if h == nil {
		panic("housesale.NewModule: handler must not be nil")
	}
	return &HouseSaleModule{handler: h}
}

// RegisterRoutes registers sale listing API routes.
func (m *HouseSaleModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sales", m.handler.Create)
	api.GET("/sales", m.handler.List)
	api.GET("/sales/search", m.handler.Search)
	api.GET("/sales/stats", m.handler.Stats)
	api.GET("/sales/:id", m.handler.Get)
	api.PUT("/sales/:id/price", m.handler.UpdatePrice)
	api.PUT("/sales/:id/verification", m.handler.UpdateVerification)
	api.POST("/sales/:id/under-offer", m.handler.MarkUnderOffer)
	api.POST("/sales/:id/sold", m.handler.MarkSold)
	api.POST("/sales/:id/withdraw", m.handler.Withdraw)
	api.DELETE("/sales/:id", m.handler.Delete)
}
