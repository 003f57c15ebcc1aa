package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

const insertPaymentQuery = `
	INSERT INTO payments (
		user_id,
		course_id,
		reference,
		amount,
		currency,
		status,
		pricing_type,
		customer_email,
		paid_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (reference) DO NOTHING
	RETURNING id, created_at
`

// CreateIfAbsent appends the record unless its reference was recorded before.
// The conditional insert is what fences two concurrent verifications of the
// same reference: only one of them writes.
func (p *PostgresPaymentRepository) CreateIfAbsent(ctx context.Context, record *domain.PaymentRecord) (bool, error) {
	err := p.db.QueryRow(
		ctx,
		insertPaymentQuery,
		record.UserID,
		record.CourseID,
		record.Reference,
		record.Amount,
		record.Currency,
		record.Status,
		record.PricingType,
		record.CustomerEmail,
		record.PaidAt,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p *PostgresPaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentRecord, error) {
	query := `SELECT id, user_id, course_id, reference, amount, currency, status,
			pricing_type, customer_email, paid_at, created_at
		FROM payments
		WHERE reference = $1`

	var record domain.PaymentRecord

	err := p.db.QueryRow(ctx, query, reference).Scan(
		&record.ID,
		&record.UserID,
		&record.CourseID,
		&record.Reference,
		&record.Amount,
		&record.Currency,
		&record.Status,
		&record.PricingType,
		&record.CustomerEmail,
		&record.PaidAt,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &record, nil
}
