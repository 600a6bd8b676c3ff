package models

type Provider string

const (
	ProviderStripe  Provider = "stripe"
	ProviderPayPal  Provider = "paypal"
	ProviderInvoice Provider = "invoice"
)

var Providers = []Provider{ProviderStripe, ProviderPayPal, ProviderInvoice}

// ParseProvider falls back to stripe, the preselected provider.
func ParseProvider(s string) Provider {
	for _, p := range Providers {
		if string(p) == s {
			return p
		}
	}
	return ProviderStripe
}

type SubscribeRequest struct {
	Email    string   `json:"email"`
	Provider Provider `json:"provider"`
}

type SubscribeResult struct {
	Message     string `json:"message"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}
