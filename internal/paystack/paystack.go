package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tundeojo/learnly-api/internal/domain"
)

const DefaultBaseURL = "https://api.paystack.co"

type Gateway struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewGateway(secretKey, baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Gateway{
		baseURL:   baseURL,
		secretKey: secretKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// verifyResponse mirrors Paystack's transaction verify envelope. Amounts come
// back in kobo.
type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string     `json:"status"`
		Reference string     `json:"reference"`
		Amount    int64      `json:"amount"`
		Currency  string     `json:"currency"`
		PaidAt    *time.Time `json:"paid_at"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

func (g *Gateway) VerifyTransaction(ctx context.Context, reference string) (*domain.VerifiedTransaction, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnreachable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, domain.ErrGatewayAuth
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrGatewayUnreachable, res.StatusCode)
	}

	var body verifyResponse

	err = json.NewDecoder(res.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrGatewayUnreachable, err)
	}

	tx := &domain.VerifiedTransaction{
		Reference:     body.Data.Reference,
		Status:        body.Data.Status,
		Amount:        body.Data.Amount,
		Currency:      body.Data.Currency,
		CustomerEmail: body.Data.Customer.Email,
	}

	if body.Data.PaidAt != nil {
		tx.PaidAt = *body.Data.PaidAt
	}

	return tx, nil
}
