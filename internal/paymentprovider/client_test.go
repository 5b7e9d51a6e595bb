package paymentprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePayment(t *testing.T) {
	var gotReq CreatePaymentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("Idempotence-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "shop", user)
		assert.Equal(t, "secret", pass)

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": "2d9b1c3e-000f-5000-8000-1a2b3c4d5e6f",
			"status": "pending",
			"paid": false,
			"amount": {"value": "990.00", "currency": "RUB"},
			"confirmation": {"type": "redirect", "confirmation_url": "https://yoomoney.ru/checkout/x"}
		}`))
	}))
	defer server.Close()

	client := NewClient("shop", "secret", server.URL)
	payment, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		Amount:            Amount{Value: "990.00", Currency: "RUB"},
		PaymentMethodData: &PaymentMethodData{Type: "bank_card"},
		Confirmation:      &Confirmation{Type: "redirect", ReturnURL: "https://app/payment-result"},
		Capture:           true,
		Description:       "Subscription payment",
		Metadata:          map[string]string{"userId": "u1"},
	}, "key-1")
	require.NoError(t, err)

	assert.Equal(t, "2d9b1c3e-000f-5000-8000-1a2b3c4d5e6f", payment.ID)
	assert.Equal(t, StatusPending, payment.Status)
	assert.Equal(t, "https://yoomoney.ru/checkout/x", payment.ConfirmationURL())

	assert.Equal(t, "990.00", gotReq.Amount.Value)
	assert.Equal(t, "bank_card", gotReq.PaymentMethodData.Type)
	assert.Equal(t, "https://app/payment-result", gotReq.Confirmation.ReturnURL)
	assert.Equal(t, "u1", gotReq.Metadata["userId"])
}

func TestClient_GetPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payments/pay-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pay-1","status":"succeeded","paid":true}`))
	}))
	defer server.Close()

	payment, err := NewClient("shop", "secret", server.URL+"/").GetPayment(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, payment.Status)
	assert.True(t, payment.Paid)
	assert.Empty(t, payment.ConfirmationURL())
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non 2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"type":"error","code":"invalid_credentials"}`))
			},
			wantErr: "invalid_credentials",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not-json`))
			},
			wantErr: "paymentprovider.GetPayment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			payment, err := NewClient("shop", "secret", server.URL).GetPayment(context.Background(), "pay-1")
			require.Error(t, err)
			assert.Nil(t, payment)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient("shop", "secret", server.URL).CreatePayment(ctx, CreatePaymentRequest{}, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient("shop", "secret", "")
	assert.Equal(t, DefaultAPIURL, c.apiURL)
}
