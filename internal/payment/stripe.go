package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// IntentCreator creates a client-confirmable charge from an amount. The
// returned secret is handed to the browser to confirm the payment.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

// StripeClient implements IntentCreator against the Stripe payment intents API.
type StripeClient struct {
	api      *client.API
	currency string
}

// NewStripeClient builds a gateway client bound to one secret key and currency.
func NewStripeClient(secretKey, currency string) (*StripeClient, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key must not be empty")
	}
	if currency == "" {
		currency = "usd"
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeClient{api: api, currency: currency}, nil
}

// CreateIntent creates a payment intent for the given amount and returns its
// client secret. Amounts are converted to the smallest currency unit.
func (c *StripeClient) CreateIntent(ctx context.Context, amount float64) (string, error) {
	cents := int64(math.Round(amount * 100))
	if cents <= 0 {
		return "", errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

var _ IntentCreator = (*StripeClient)(nil)
