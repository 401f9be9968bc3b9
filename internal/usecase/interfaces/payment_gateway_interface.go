package interfaces

import (
	"context"
	"encoding/json"

	"homeservice/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The checkout flow uses it to charge the tokenized card and persists the
// provider response payload for traceability.
type IPaymentGateway interface {
	ChargeCard(ctx context.Context, charge entities.CardCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
