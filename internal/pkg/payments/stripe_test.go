package payments

import (
	"context"
	"testing"

	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v81"
)

type MockIntentCreator struct{ mock.Mock }

func (m *MockIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	if res := args.Get(0); res != nil {
		return res.(*stripe.PaymentIntent), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMinorUnits(t *testing.T) {
	assert.EqualValues(t, 1999, MinorUnits(19.99))
	assert.EqualValues(t, 100, MinorUnits(1))
	assert.EqualValues(t, 10, MinorUnits(0.1))
	assert.EqualValues(t, 0, MinorUnits(0))
	// 0.29*100 is 28.999... in floating point; rounding keeps the cent.
	assert.EqualValues(t, 29, MinorUnits(0.29))
}

func TestCreatePaymentIntentChargesRoundedCard(t *testing.T) {
	intents := new(MockIntentCreator)
	intents.On("New", mock.MatchedBy(func(params *stripe.PaymentIntentParams) bool {
		return *params.Amount == 1999 &&
			*params.Currency == "usd" &&
			len(params.PaymentMethodTypes) == 1 &&
			*params.PaymentMethodTypes[0] == "card"
	})).Return(&stripe.PaymentIntent{ClientSecret: "pi_123_secret_456"}, nil)

	gateway := &StripeGateway{intents: intents, currency: "usd"}

	secret, err := gateway.CreatePaymentIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	intents.AssertExpectations(t)
}

func TestCreatePaymentIntentRejectsNonPositiveAmounts(t *testing.T) {
	intents := new(MockIntentCreator)
	gateway := &StripeGateway{intents: intents, currency: "usd"}

	_, err := gateway.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, consts.ErrInvalidPaymentAmount)

	_, err = gateway.CreatePaymentIntent(context.Background(), -5)
	assert.ErrorIs(t, err, consts.ErrInvalidPaymentAmount)

	intents.AssertNotCalled(t, "New", mock.Anything)
}

func TestCreatePaymentIntentPassesProviderMessageThrough(t *testing.T) {
	intents := new(MockIntentCreator)
	intents.On("New", mock.Anything).Return(nil, &stripe.Error{Msg: "Your card was declined."})

	gateway := &StripeGateway{intents: intents, currency: "usd"}

	_, err := gateway.CreatePaymentIntent(context.Background(), 25)
	require.Error(t, err)

	var customErr *models.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, PaymentProviderErrorCode, customErr.Code)
	assert.Equal(t, "Your card was declined.", customErr.Message)
}
