package user

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestUserModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")

	mod := NewModule(&UserHandler{})
	mod.RegisterRoutes(api)

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/:id"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPut, "/api/v1/users/:id"},
		{http.MethodDelete, "/api/v1/users/:id"},
	}

	routes := r.Routes()
	registered := make(map[string]bool)
	for _, ri := range routes {
		registered[ri.Method+":"+ri.Path] = true
	}

	for _, exp := range expected {
		key := exp.method + ":" + exp.path
		if !registered[key] {
			t.Errorf("expected route %s %s to be registered", exp.method, exp.path)
		}
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil)
}
