package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/interfaces/http/middleware"
)

type stubDonationService struct {
	createOrderResp *entities.CreateOrderResponse
	createOrderErr  error
	verifyResp      *entities.VerifyPaymentResponse
	verifyErr       error
	donation        *entities.Donation
	getErr          error
}

func (s *stubDonationService) CreateOrder(_ context.Context, _ uuid.UUID, _ *entities.CreateOrderInput) (*entities.CreateOrderResponse, error) {
	return s.createOrderResp, s.createOrderErr
}

func (s *stubDonationService) VerifyPayment(_ context.Context, _ uuid.UUID, _ *entities.VerifyPaymentInput) (*entities.VerifyPaymentResponse, error) {
	return s.verifyResp, s.verifyErr
}

func (s *stubDonationService) Refund(_ context.Context, _ uuid.UUID) (*entities.Donation, error) {
	return s.donation, s.getErr
}

func (s *stubDonationService) GetByID(_ context.Context, _ uuid.UUID, _ bool, _ uuid.UUID) (*entities.Donation, error) {
	return s.donation, s.getErr
}

func (s *stubDonationService) ListByDonor(_ context.Context, _ uuid.UUID, _, _ int) ([]*entities.Donation, int, error) {
	return nil, 0, nil
}

func (s *stubDonationService) ListByCampaign(_ context.Context, _ uuid.UUID, _, _ int) ([]*entities.Donation, int, error) {
	return nil, 0, nil
}

func (s *stubDonationService) List(_ context.Context, _, _ int) ([]*entities.Donation, int, error) {
	return nil, 0, nil
}

func authAs(userID uuid.UUID, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, string(role))
		c.Next()
	}
}

func TestDonationHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubDonationService{
		createOrderResp: &entities.CreateOrderResponse{OrderID: "order_123", Amount: 50000, Currency: "INR", KeyID: "rzp_test"},
	}
	h := NewDonationHandler(svc)

	r := gin.New()
	r.POST("/donations/create-order", authAs(uuid.New(), entities.UserRoleDonor), h.CreateOrder)

	req := httptest.NewRequest(http.MethodPost, "/donations/create-order", strings.NewReader(`{"amount":50000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp entities.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.OrderID != "order_123" {
		t.Fatalf("expected order_123, got %s", resp.OrderID)
	}
}

func TestDonationHandler_CreateOrder_ValidationAndAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDonationHandler(&stubDonationService{})

	r := gin.New()
	r.POST("/auth/donations/create-order", authAs(uuid.New(), entities.UserRoleDonor), h.CreateOrder)
	r.POST("/donations/create-order", h.CreateOrder)

	// Malformed payload.
	req := httptest.NewRequest(http.MethodPost, "/auth/donations/create-order", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", w.Code)
	}

	// No authenticated user.
	req = httptest.NewRequest(http.MethodPost, "/donations/create-order", strings.NewReader(`{"amount":50000}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated create, got %d", w.Code)
	}
}

func TestDonationHandler_VerifyPayment_SignatureMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubDonationService{verifyErr: domainerrors.BadRequest("payment signature mismatch")}
	h := NewDonationHandler(svc)

	r := gin.New()
	r.POST("/donations/verify", authAs(uuid.New(), entities.UserRoleDonor), h.VerifyPayment)

	body := `{"orderId":"order_123","paymentId":"pay_456","signature":"forged"}`
	req := httptest.NewRequest(http.MethodPost, "/donations/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for signature mismatch, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ERR_VALIDATION") {
		t.Fatalf("expected error code in body, got %s", w.Body.String())
	}
}

func TestDonationHandler_GetDonation_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubDonationService{getErr: domainerrors.ErrNotFound}
	h := NewDonationHandler(svc)

	r := gin.New()
	r.GET("/donations/:id", authAs(uuid.New(), entities.UserRoleDonor), h.GetDonation)

	req := httptest.NewRequest(http.MethodGet, "/donations/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/donations/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", w.Code)
	}
}
