package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/pkg/jwt"
)

type stubAuthService struct {
	authResp *entities.AuthResponse
	authErr  error
	pair     *jwt.TokenPair
	pairErr  error
	user     *entities.User
	userErr  error
}

func (s *stubAuthService) Register(_ context.Context, _ *entities.RegisterInput) (*entities.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubAuthService) Login(_ context.Context, _ *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubAuthService) RefreshToken(_ context.Context, _ string) (*jwt.TokenPair, error) {
	return s.pair, s.pairErr
}

func (s *stubAuthService) ChangePassword(_ context.Context, _ uuid.UUID, _ *entities.ChangePasswordInput) error {
	return s.authErr
}

func (s *stubAuthService) GetUserByID(_ context.Context, _ uuid.UUID) (*entities.User, error) {
	return s.user, s.userErr
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubAuthService{})

	r := gin.New()
	r.POST("/auth/register", h.Register)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Asha Rao","password":"longenough"}`},
		{"bad email", `{"email":"nope","name":"Asha Rao","password":"longenough"}`},
		{"short password", `{"email":"asha@example.com","name":"Asha Rao","password":"short"}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{
		authResp: &entities.AuthResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &entities.User{ID: uuid.New(), Email: "asha@example.com"},
		},
	}
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/auth/register", h.Register)

	body := `{"email":"asha@example.com","name":"Asha Rao","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "accessToken") {
		t.Fatalf("expected token pair in body, got %s", w.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{authErr: domainerrors.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := `{"email":"asha@example.com","password":"wrongpassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{})
		r := gin.New()
		r.POST("/auth/refresh", h.Refresh)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{pairErr: domainerrors.ErrUnauthorized})
		r := gin.New()
		r.POST("/auth/refresh", h.Refresh)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"stale"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubAuthService{})

	r := gin.New()
	r.GET("/auth/me", h.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubAuthService{authErr: domainerrors.ErrInvalidCredentials})

	r := gin.New()
	r.POST("/auth/change-password", authAs(uuid.New(), entities.UserRoleDonor), h.ChangePassword)

	body := `{"currentPassword":"oldpassword","newPassword":"newpassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Current password is incorrect") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
