package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/estatehub/estatehub/internal/config"
)

type fakeHTTPServer struct {
	listenErr      error
	stopCh         chan struct{}
	mu             sync.Mutex
	shutdownCalled bool
}

func (f *fakeHTTPServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	if f.stopCh != nil {
		<-f.stopCh
	}
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.mu.Lock()
	f.shutdownCalled = true
	f.mu.Unlock()
	if f.stopCh != nil {
		close(f.stopCh)
	}
	return nil
}

func (f *fakeHTTPServer) wasShutdownCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdownCalled
}

func testConfig(mode string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Mode: mode,
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: "file::memory:?cache=shared"},
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestResolveCORSConfig(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		corsCfg     *config.CORSConfig
		wantOrigins []string
	}{
		{
			name:        "debug mode uses permissive default when not configured",
			mode:        gin.DebugMode,
			corsCfg:     &config.CORSConfig{},
			wantOrigins: []string{"*"},
		},
		{
			name:        "release mode denies cross-origin when not configured",
			mode:        gin.ReleaseMode,
			corsCfg:     &config.CORSConfig{},
			wantOrigins: []string{},
		},
		{
			name: "release mode uses explicit allowlist",
			mode: gin.ReleaseMode,
			corsCfg: &config.CORSConfig{
				AllowOrigins: []string{"https://admin.example.com"},
			},
			wantOrigins: []string{"https://admin.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCORSConfig(tt.mode, tt.corsCfg)
			if len(got.AllowOrigins) != len(tt.wantOrigins) {
				t.Fatalf("AllowOrigins=%v; want %v", got.AllowOrigins, tt.wantOrigins)
			}
			for i := range tt.wantOrigins {
				if got.AllowOrigins[i] != tt.wantOrigins[i] {
					t.Fatalf("AllowOrigins=%v; want %v", got.AllowOrigins, tt.wantOrigins)
				}
			}
		})
	}
}

func TestResolveCORSConfig_Overrides(t *testing.T) {
	got := resolveCORSConfig(gin.DebugMode, &config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           "3600",
	})

	if len(got.AllowMethods) != 2 || got.AllowMethods[0] != "GET" {
		t.Errorf("AllowMethods=%v", got.AllowMethods)
	}
	if len(got.AllowHeaders) != 1 || got.AllowHeaders[0] != "Authorization" {
		t.Errorf("AllowHeaders=%v", got.AllowHeaders)
	}
	if !got.AllowCredentials {
		t.Error("AllowCredentials not applied")
	}
	if got.MaxAge != "3600" {
		t.Errorf("MaxAge=%v", got.MaxAge)
	}
}

func TestValidateGinMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{gin.DebugMode, false},
		{gin.ReleaseMode, false},
		{gin.TestMode, false},
		{"staging", true},
	}
	for _, tt := range tests {
		if err := validateGinMode(tt.mode); (err != nil) != tt.wantErr {
			t.Errorf("validateGinMode(%q) error=%v, wantErr=%v", tt.mode, err, tt.wantErr)
		}
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_ReturnsError_WhenDatabaseSetupFails(t *testing.T) {
	cfg := testConfig(gin.TestMode)
	cfg.Database.Driver = "unsupported"

	app, err := New(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if app != nil {
		t.Fatalf("app=%#v; want nil", app)
	}
	if !strings.Contains(err.Error(), "setup database") {
		t.Fatalf("error=%q; want database setup failure", err)
	}
}

func TestNew_FullWiring(t *testing.T) {
	app, err := New(testConfig(gin.DebugMode))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Health endpoint is up and the pool pings.
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d body=%s", w.Code, w.Body.String())
	}

	// Migrated CRUD routes answer; an empty table lists as an empty page.
	w = httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("users status=%d body=%s", w.Code, w.Body.String())
	}

	// The unified listing endpoint rejects a missing location up front.
	w = httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("properties status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestNew_AuthDisabled_NoLoginRoute(t *testing.T) {
	app, err := New(testConfig(gin.TestMode))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	app.engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("login status=%d; want 404 with auth disabled", w.Code)
	}
}

func TestNew_AuthEnabled_ProtectsWriteModules(t *testing.T) {
	cfg := testConfig(gin.DebugMode)
	cfg.Auth = config.AuthConfig{
		Enabled:     true,
		JWTSecret:   "0123456789abcdef0123456789abcdef",
		TokenExpiry: "24h",
	}

	app, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Write modules demand a token.
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("users status=%d; want 401", w.Code)
	}

	// Listing discovery stays open.
	w = httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("properties status=%d; want 400, not an auth failure", w.Code)
	}

	// The login route exists.
	w = httptest.NewRecorder()
	app.engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	if w.Code == http.StatusNotFound {
		t.Fatal("login route missing with auth enabled")
	}
}

func TestRun_ReturnsError_WhenListenFails(t *testing.T) {
	origServer := newHTTPServer
	defer func() { newHTTPServer = origServer }()

	fake := &fakeHTTPServer{listenErr: os.ErrPermission}
	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return fake
	}

	app, err := New(testConfig(gin.TestMode))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := app.Run(); err == nil {
		t.Fatal("expected error when listen fails")
	}
}

func TestRun_ShutdownSignal_StopsServer(t *testing.T) {
	origServer := newHTTPServer
	origNotify := notifyContext
	defer func() {
		newHTTPServer = origServer
		notifyContext = origNotify
	}()

	fake := &fakeHTTPServer{stopCh: make(chan struct{})}
	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return fake
	}

	ctx, cancel := context.WithCancel(context.Background())
	notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		return ctx, cancel
	}

	app, err := New(testConfig(gin.TestMode))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !fake.wasShutdownCalled() {
		t.Fatal("server shutdown was not called")
	}
}
