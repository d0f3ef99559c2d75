package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/api/dto"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/api/middleware"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/service"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/infrastructure/sqlite"
	"github.com/gin-gonic/gin"
)

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	router      *gin.Engine
	authService *service.AuthService
	userService *service.UserService
}

// setupTestEnv creates a test environment with in-memory SQLite database
// and the same route layout as the real server, gate included.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Use in-memory SQLite database
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	userService := service.NewUserService(sqlite.NewUserRepository(db))
	authService := service.NewAuthService(userService, "test-secret-key", "HS256", time.Hour)

	authHandler := NewAuthHandler(authService, userService)
	userHandler := NewUserHandler(userService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/v1")
	v1.Use(middleware.AuthMiddleware(authService,
		"/v1/auth/login",
		"/v1/auth/register",
	))

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/validate-token", authHandler.ValidateToken)
	}

	user := v1.Group("/user")
	{
		user.GET("/:username", userHandler.GetUser)
		user.PATCH("/:username/status", userHandler.UpdateStatus)
	}

	return &testEnv{
		db:          db,
		router:      router,
		authService: authService,
		userService: userService,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body and bearer token
func (env *testEnv) makeRequest(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// register creates a user over the API and fails the test on any non-201
func (env *testEnv) register(t *testing.T, username, password string) {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/v1/auth/register",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d\nBody: %s", username, w.Code, w.Body.String())
	}
}

// login authenticates over the API and returns the issued token
func (env *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/v1/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("failed to login %s: status %d\nBody: %s", username, w.Code, w.Body.String())
	}

	resp := parseTokenResponse(t, w)
	if resp.AccessToken == "" {
		t.Fatalf("expected a non-empty access_token\nBody: %s", w.Body.String())
	}
	return resp.AccessToken
}

// parseUserResponse parses the response body into UserResponse
func parseUserResponse(t *testing.T, w *httptest.ResponseRecorder) dto.UserResponse {
	t.Helper()

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseTokenResponse parses the response body into TokenResponse
func parseTokenResponse(t *testing.T, w *httptest.ResponseRecorder) dto.TokenResponse {
	t.Helper()

	var resp dto.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseRawBody parses the response body into a generic map so tests can
// assert on the presence or absence of individual keys
func parseRawBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return body
}
