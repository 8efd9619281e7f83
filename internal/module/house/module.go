package house

import "github.com/gin-gonic/gin"

// HouseModule implements the app.Module interface for the rental house domain.
type HouseModule struct {
	handler *HouseHandler
}

// NewModule creates a new HouseModule with the given handler.
// Panics if h is nil.
func NewModule(h *HouseHandler) *HouseModule {
	if h == nil {
		panic("house.NewModule: handler must not be nil")
	}
	return &HouseModule{handler: h}
}

// RegisterRoutes registers house API routes.
func (m *HouseModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/houses", m.handler.Create)
	api.GET("/houses", m.handler.List)
	api.GET("/houses/standalone", m.handler.ListStandalone)
	api.GET("/houses/estate/:estateId", m.handler.ListByEstate)
	api.GET("/houses/:id", m.handler.Get)
	api.PATCH("/houses/:id", m.handler.Update)
	api.DELETE("/houses/:id", m.handler.Delete)
}
