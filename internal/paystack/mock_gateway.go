package paystack

import (
	"context"

	"github.com/tundeojo/learnly-api/internal/domain"
)

// MockGateway is a controllable stand-in for the real gateway, used by the
// integration tests.
type MockGateway struct {
	Tx  *domain.VerifiedTransaction
	Err error
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) VerifyTransaction(ctx context.Context, reference string) (*domain.VerifiedTransaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	tx := *m.Tx
	tx.Reference = reference

	return &tx, nil
}

// Reset clears any configured transaction and error.
func (m *MockGateway) Reset() {
	m.Tx = nil
	m.Err = nil
}
