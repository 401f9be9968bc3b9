package promotions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"homeservice/internal/domain/entities"
)

var ErrMissingPromoServiceURL = errors.New("missing PROMO_SERVICE_URL")

// PromoHTTPClient calls the external promo validation service.
//
// Contract:
//
//	POST {base}/validate  {"code": "...", "subtotal": 123.45}
//	200 -> {"success": true, "discount": {"type": "...", "value": n, "amount": n}}
//	    or {"success": false, "message": "..."}
//
// The discount amount in the response is authoritative; it is computed by the
// service against the submitted subtotal and never recomputed here.

type PromoHTTPClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

type promoValidateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

type promoValidateResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Discount struct {
		Type   string  `json:"type"`
		Value  float64 `json:"value"`
		Amount float64 `json:"amount"`
	} `json:"discount"`
}

func NewPromoHTTPClient(baseURL string) (*PromoHTTPClient, error) {
	if isPromoGatewayMockEnabled() {
		log.Printf("[promo][gateway] mock mode enabled")
		return &PromoHTTPClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[promo][gateway] missing PROMO_SERVICE_URL")
		return nil, ErrMissingPromoServiceURL
	}
	return &PromoHTTPClient{baseURL: baseURL, http: &http.Client{}}, nil
}

func (c *PromoHTTPClient) Validate(ctx context.Context, code string, subtotal float64) (entities.PromoValidation, error) {
	if c != nil && c.mockMode {
		// Mock rule: any code ending in "10" grants 10% off.
		log.Printf("[promo][gateway] mock validate code=%s subtotal=%.2f", code, subtotal)
		if strings.HasSuffix(code, "10") {
			return entities.PromoValidation{
				Valid: true,
				Discount: entities.Discount{
					Type:   entities.DiscountTypePercentage,
					Value:  10,
					Amount: subtotal * 0.10,
				},
			}, nil
		}
		return entities.PromoValidation{Valid: false, Message: "promo code is not valid"}, nil
	}

	if c == nil || c.http == nil {
		return entities.PromoValidation{}, errors.New("promo client not configured")
	}

	body, err := json.Marshal(promoValidateRequest{Code: code, Subtotal: subtotal})
	if err != nil {
		return entities.PromoValidation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return entities.PromoValidation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[promo][gateway] request failed err=%v", err)
		return entities.PromoValidation{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PromoValidation{}, err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		log.Printf("[promo][gateway] service error status=%d", resp.StatusCode)
		return entities.PromoValidation{}, fmt.Errorf("promo service status %d", resp.StatusCode)
	}

	var parsed promoValidateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[promo][gateway] response unmarshal failed err=%v", err)
		return entities.PromoValidation{}, err
	}

	if !parsed.Success {
		return entities.PromoValidation{Valid: false, Message: parsed.Message}, nil
	}
	return entities.PromoValidation{
		Valid: true,
		Discount: entities.Discount{
			Type:   entities.DiscountType(parsed.Discount.Type),
			Value:  parsed.Discount.Value,
			Amount: parsed.Discount.Amount,
		},
	}, nil
}

func isPromoGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PROMO_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
