package consts

// SensitiveKeys are masked before request headers are logged.
var SensitiveKeys = []string{
	"Authorization",
	"Cookie",
	"X-Api-Key",
	"Stripe-Signature",
}
