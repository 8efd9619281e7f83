package apartment

import "github.com/gin-gonic/gin"

// ApartmentModule implements the app.Module interface for the apartment domain.
type ApartmentModule struct {
	handler *ApartmentHandler
}

// NewModule creates a new ApartmentModule with the given handler.
// Panics if h is nil.
func NewModule(h *ApartmentHandler) *ApartmentModule {
	if h == nil {
		panic("apartment.NewModule: handler must not be nil")
	}
	return &ApartmentModule{handler: h}
}

// RegisterRoutes registers apartment API routes.
func (m *ApartmentModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/apartments", m.handler.Create)
	api.GET("/apartments", m.handler.List)
	api.GET("/apartments/search", m.handler.Search)
	api.GET("/apartments/stats", m.handler.Stats)
	api.GET("/apartments/house/:houseId", m.handler.ListByHouse)
	api.GET("/apartments/:id", m.handler.Get)
	api.PATCH("/apartments/:id", m.handler.Update)
	api.PUT("/apartments/:id/tenant", m.handler.AssignTenant)
	api.DELETE("/apartments/:id", m.handler.Delete)
}
