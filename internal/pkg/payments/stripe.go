package payments

import (
	"context"
	"errors"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"math"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const PaymentProviderErrorCode = "LOANLINK_PAYMENT_PROVIDER_ERROR"

// intentCreator is the one Stripe call the gateway makes; *client.API's
// PaymentIntents satisfies it, and tests substitute a stub.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates card-only payment intents for the application fee.
type StripeGateway struct {
	intents  intentCreator
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{intents: api.PaymentIntents, currency: currency}
}

// MinorUnits converts a major-unit price to the provider's integer amount,
// rounding to the nearest cent.
func MinorUnits(priceMajor float64) int64 {
	return int64(math.Round(priceMajor * 100))
}

// CreatePaymentIntent returns the client secret the frontend confirms the
// payment with. Non-positive amounts are rejected before the provider is
// called; Stripe refuses sub-minimum charges anyway.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, priceMajor float64) (string, error) {
	amount := MinorUnits(priceMajor)
	if amount <= 0 {
		return "", consts.ErrInvalidPaymentAmount
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.intents.New(params)
	if err != nil {
		logger.Error(ctx, "Stripe payment intent creation failed: %v", err)
		return "", &models.CustomError{
			Code:    PaymentProviderErrorCode,
			Message: providerMessage(err),
		}
	}

	return intent.ClientSecret, nil
}

// providerMessage keeps the upstream message as-is; the route contract passes
// it through to the caller.
func providerMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
