package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"reelcamp/config"

	"github.com/go-resty/resty/v2"
)

// CreateStripePaymentIntent creates a payment intent for the given
// amount in cents and returns its client secret. The secret goes back
// to the browser, which completes the card flow against Stripe
// directly.
func CreateStripePaymentIntent(amount int64) (string, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return "", fmt.Errorf("stripe secret key is not configured")
	}
	if amount < 1 {
		return "", fmt.Errorf("amount must be at least 1 cent")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.StripeSecretKey).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		Post(config.AppConfig.StripeApiURL + "/payment_intents")
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %v", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("stripe API error: %s", resp.String())
	}

	var intentResp struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(resp.Body(), &intentResp); err != nil {
		return "", fmt.Errorf("invalid stripe response: %v", err)
	}

	if intentResp.ClientSecret == "" {
		return "", fmt.Errorf("stripe response missing client secret")
	}

	return intentResp.ClientSecret, nil
}
