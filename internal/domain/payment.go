package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentRecord captures one verification attempt against the gateway.
// Records are append-only: created once per attempt, never mutated.
type PaymentRecord struct {
	ID            int
	UserID        int
	CourseID      int
	Reference     string
	Amount        decimal.Decimal
	Currency      string
	Status        PaymentStatus
	PricingType   PricingType
	CustomerEmail string
	PaidAt        *time.Time
	CreatedAt     time.Time
}

type PaymentRepository interface {
	// CreateIfAbsent appends a record unless one already exists for the same
	// reference. It reports whether a new row was written.
	CreateIfAbsent(ctx context.Context, record *PaymentRecord) (bool, error)
	GetByReference(ctx context.Context, reference string) (*PaymentRecord, error)
}
