package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *StripeProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(ts.URL),
		HTTPClient:        ts.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripe("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestCreateIntent(t *testing.T) {
	var keys []string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "20000" {
			t.Errorf("expected amount 20000, got %q", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("expected currency usd, got %q", got)
		}
		if got := r.PostForm.Get("payment_method_types[0]"); got != "card" {
			t.Errorf("expected card payment method, got %q", got)
		}
		if got := r.PostForm.Get("metadata[email]"); got != "a@x.com" {
			t.Errorf("expected email metadata, got %q", got)
		}
		keys = append(keys, r.Header.Get("Idempotency-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_456"}`))
	})

	for i := 0; i < 2; i++ {
		secret, err := provider.CreateIntent(context.Background(), 20000, "usd", "a@x.com")
		if err != nil {
			t.Fatalf("create intent: %v", err)
		}
		if secret != "pi_123_secret_456" {
			t.Errorf("unexpected client secret %q", secret)
		}
	}

	if len(keys) != 2 || keys[0] == "" || keys[0] == keys[1] {
		t.Errorf("expected two distinct idempotency keys, got %v", keys)
	}
}

func TestCreateIntentProviderError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`))
	})

	if _, err := provider.CreateIntent(context.Background(), 20000, "usd", ""); err == nil {
		t.Fatal("expected error from provider")
	}
}
