package estate

import "github.com/gin-gonic/gin"

// EstateModule implements the app.Module interface for the estate domain.
type EstateModule struct {
	handler *EstateHandler
}

// NewModule creates a new EstateModule with the given handler.
// Panics if h is nil.
func NewModule(h *EstateHandler) *EstateModule {
	if h == nil {
		panic("estate.NewModule: handler must not be nil")
	}
	return &EstateModule{handler: h}
}

// RegisterRoutes registers estate API routes.
func (m *EstateModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/estates", m.handler.Create)
	api.GET("/estates/residential", m.handler.ListResidential)
	api.GET("/estates/land", m.handler.ListLand)
	api.GET("/estates/seller/:sellerId", m.handler.ListBySeller)
	api.GET("/estates/:id", m.handler.Get)
	api.PATCH("/estates/:id", m.handler.Update)
	api.DELETE("/estates/:id", m.handler.Delete)
}
