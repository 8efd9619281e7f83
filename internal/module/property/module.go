package property

import "github.com/gin-gonic/gin"

// PropertyModule implements the app.Module interface for the unified
// listing endpoints.
type PropertyModule struct {
	handler *PropertyHandler
}

// NewModule creates a new PropertyModule with the given handler.
// Panics if h is nil.
func NewModule(h *PropertyHandler) *PropertyModule {
	if h == nil {
		panic("property.NewModule: handler must not be nil")
	}
	return &PropertyModule{handler: h}
}

// RegisterRoutes registers the unified property API routes.
func (m *PropertyModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/properties", m.handler.ListByLocation)
	api.GET("/properties/stats", m.handler.Stats)
	api.GET("/properties/seller/:sellerId", m.handler.ListBySeller)
}
