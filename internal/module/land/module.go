package land

import "github.com/gin-gonic/gin"

// LandModule implements the app.Module interface for the land parcel domain.
type LandModule struct {
	handler *LandHandler
}

// NewModule creates a new LandModule with the given handler.
// Panics if h is nil.
func NewModule(h *LandHandler) *LandModule {
	if h == nil {
		panic("land.NewModule: handler must not be nil")
	}
	return &LandModule{handler: h}
}

// RegisterRoutes registers land API routes.
func (m *LandModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/land", m.handler.Create)
	api.GET("/land", m.handler.List)
	api.GET("/land/available", m.handler.ListAvailable)
	api.GET("/land/search", m.handler.Search)
	api.GET("/land/stats", m.handler.Stats)
	api.GET("/land/seller/:sellerId", m.handler.ListBySeller)
	api.GET("/land/:id", m.handler.Get)
	api.PATCH("/land/:id", m.handler.Update)
	api.DELETE("/land/:id", m.handler.Delete)
}
