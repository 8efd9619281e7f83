package seller

import "github.com/gin-gonic/gin"

// SellerModule implements the app.Module interface for the seller domain.
type SellerModule struct {
	handler *SellerHandler
}

// NewModule creates a new SellerModule with the given handler.
// Panics if h is nil.
func NewModule(h *SellerHandler) *SellerModule {
	if h == nil {
		panic("seller.NewModule: handler must not be nil")
	}
	return &SellerModule{handler: h}
}

// RegisterRoutes registers seller API routes. Static segments are registered
// before the :id route so gin resolves them first.
func (m *SellerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sellers", m.handler.Register)
	api.GET("/sellers", m.handler.List)
	api.GET("/sellers/search", m.handler.Search)
	api.GET("/sellers/top-rated", m.handler.TopRated)
	api.GET("/sellers/verified", m.handler.Verified)
	api.GET("/sellers/user/:userId", m.handler.GetByUser)
	api.GET("/sellers/:id", m.handler.Get)
	api.PATCH("/sellers/:id", m.handler.Update)
	api.DELETE("/sellers/:id", m.handler.Delete)
}
