package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type PostgresEnrollmentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEnrollmentRepository(db *pgxpool.Pool) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{
		db: db,
	}
}

// EnrollWithPayment writes the payment record and the enrollment grant in one
// transaction, so a verified payment never commits without durable access and
// access is never granted without a record of payment. A reference seen
// before skips the payment insert and only re-asserts the enrollment, and
// only for the user the existing record belongs to; for anyone else the
// transaction is rolled back with ErrReferenceInUse.
func (p *PostgresEnrollmentRepository) EnrollWithPayment(ctx context.Context, record *domain.PaymentRecord) (bool, error) {
	recorded := false

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(
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

		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// Reference already recorded. The existing record may belong to a
			// different user, so the ownership check has to happen inside the
			// transaction to fence concurrent verifications.
			var ownerID int

			err := tx.QueryRow(ctx, `SELECT user_id FROM payments WHERE reference = $1`, record.Reference).Scan(&ownerID)
			if err != nil {
				return err
			}

			if ownerID != record.UserID {
				return domain.ErrReferenceInUse
			}
		case err != nil:
			return err
		default:
			recorded = true
		}

		query := `INSERT INTO enrollments (user_id, course_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, course_id) DO NOTHING`

		_, err = tx.Exec(ctx, query, record.UserID, record.CourseID)

		return err
	})

	if err != nil {
		return false, err
	}

	return recorded, nil
}

func (p *PostgresEnrollmentRepository) Exists(ctx context.Context, userID, courseID int) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2
		)`

	var exists bool

	err := p.db.QueryRow(ctx, query, userID, courseID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresEnrollmentRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.EnrollmentSummary, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), c.id, c.title, c.slug, c.thumbnail_url, c.pricing_type, e.created_at
		FROM enrollments e
		INNER JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	summaries := []domain.EnrollmentSummary{}

	for rows.Next() {
		var summary domain.EnrollmentSummary

		err := rows.Scan(
			&totalRecords,
			&summary.CourseID,
			&summary.CourseTitle,
			&summary.CourseSlug,
			&summary.CourseThumbnail,
			&summary.PricingType,
			&summary.EnrolledAt,
		)

		if err != nil {
			return nil, nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return summaries, metadata, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
