package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		BaseURL:   srv.URL,
	})
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.Equal(t, "rzp_test_secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 50000, body["amount"])
		require.Equal(t, "INR", body["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test1",
			"amount":   50000,
			"currency": "INR",
			"status":   "created",
		})
	})

	order, err := client.CreateOrder(context.Background(), 50000, "INR", "donation", nil)
	require.NoError(t, err)
	require.Equal(t, "order_test1", order.ID)
	require.Equal(t, int64(50000), order.Amount)
}

func TestClient_CreateOrder_GatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"description":"upstream down"}}`))
	})

	_, err := client.CreateOrder(context.Background(), 50000, "INR", "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "gateway returned 502")
}

func TestClient_CreateSubscription(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/plans":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "monthly", body["period"])
			require.EqualValues(t, 3, body["interval"])
			json.NewEncoder(w).Encode(map[string]string{"id": "plan_q1"})
		case "/v1/subscriptions":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "plan_q1", body["plan_id"])
			json.NewEncoder(w).Encode(map[string]string{
				"id":        "sub_q1",
				"plan_id":   "plan_q1",
				"status":    "created",
				"short_url": "https://rzp.io/i/sub_q1",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	sub, err := client.CreateSubscription(context.Background(), 10000, "INR", entities.SubscriptionFrequencyQuarterly)
	require.NoError(t, err)
	require.Equal(t, "sub_q1", sub.ID)
	require.Equal(t, "https://rzp.io/i/sub_q1", sub.ShortURL)
}

func TestClient_CreateRefund(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments/pay_77/refund", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "rfnd_77", "status": "processed"})
	})

	refund, err := client.CreateRefund(context.Background(), "pay_77", 0)
	require.NoError(t, err)
	require.Equal(t, "rfnd_77", refund.ID)
}

func TestPlanCadence(t *testing.T) {
	period, interval, _ := planCadence(entities.SubscriptionFrequencyMonthly)
	require.Equal(t, "monthly", period)
	require.Equal(t, 1, interval)

	period, interval, _ = planCadence(entities.SubscriptionFrequencyQuarterly)
	require.Equal(t, "monthly", period)
	require.Equal(t, 3, interval)

	period, interval, _ = planCadence(entities.SubscriptionFrequencyYearly)
	require.Equal(t, "yearly", period)
	require.Equal(t, 1, interval)
}
