package domain

import (
	"context"
	"time"
)

// VerifiedTransaction is the gateway's view of one checkout attempt. Amount
// is in the currency's minor unit (kobo for NGN), exactly as reported.
type VerifiedTransaction struct {
	Reference     string
	Status        string
	Amount        int64
	Currency      string
	CustomerEmail string
	PaidAt        time.Time
}

func (t VerifiedTransaction) Successful() bool {
	return t.Status == "success"
}

// PaymentGateway verifies a transaction reference against the external
// payment provider. The call is read-only on the provider side.
type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*VerifiedTransaction, error)
}
