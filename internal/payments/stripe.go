// Package payments talks to the Stripe API.
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	api *client.API
}

// NewStripe builds a provider for the secret key. backends may be nil to use
// the public Stripe endpoints.
func NewStripe(secretKey string, backends *stripe.Backends) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProvider{api: api}
}

// CreateIntent opens a card payment intent and returns its client secret.
// Every call carries a fresh idempotency key so network retries never charge
// twice.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency, email string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	if email != "" {
		params.AddMetadata("email", email)
		params.ReceiptEmail = stripe.String(email)
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
