package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"sahaaya.backend/internal/interfaces/http/handlers"
)

func testRouteDeps() routeDeps {
	return routeDeps{
		authHandler:         &handlers.AuthHandler{},
		campaignHandler:     &handlers.CampaignHandler{},
		donationHandler:     &handlers.DonationHandler{},
		subscriptionHandler: &handlers.SubscriptionHandler{},
		eventHandler:        &handlers.EventHandler{},
		volunteerHandler:    &handlers.VolunteerHandler{},
		contactHandler:      &handlers.ContactHandler{},
		blogHandler:         &handlers.BlogHandler{},
		notificationHandler: &handlers.NotificationHandler{},
		fileHandler:         &handlers.FileHandler{},
		settingsHandler:     &handlers.SettingsHandler{},
		adminHandler:        &handlers.AdminHandler{},
		authMiddleware:      func(c *gin.Context) { c.Next() },
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, testRouteDeps())

	routes := r.Routes()
	if len(routes) < 40 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/v1/auth/me"},
		{"GET", "/api/v1/campaigns"},
		{"POST", "/api/v1/campaigns/:id/updates"},
		{"POST", "/api/v1/donations/create-order"},
		{"POST", "/api/v1/donations/verify"},
		{"POST", "/api/v1/donations/create-subscription"},
		{"POST", "/api/v1/subscriptions/:id/cancel"},
		{"POST", "/api/v1/events/:id/register"},
		{"POST", "/api/v1/volunteers/apply"},
		{"POST", "/api/v1/contact"},
		{"GET", "/api/v1/blog/:slug"},
		{"GET", "/api/v1/admin/stats"},
		{"POST", "/api/v1/admin/donations/:id/refund"},
		{"POST", "/api/v1/admin/volunteers/:id/review"},
		{"POST", "/api/v1/admin/notifications/:id/send"},
		{"PUT", "/api/v1/admin/settings"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, testRouteDeps())

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
