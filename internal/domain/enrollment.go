package domain

import (
	"context"
	"time"
)

// Enrollment grants a user access to a course. Grants are monotonic: this
// flow never revokes one.
type Enrollment struct {
	UserID    int
	CourseID  int
	CreatedAt time.Time
}

type EnrollmentSummary struct {
	CourseID        int
	CourseTitle     string
	CourseSlug      string
	CourseThumbnail string
	PricingType     PricingType
	EnrolledAt      time.Time
}

type EnrollmentRepository interface {
	// EnrollWithPayment writes the payment record and the enrollment grant in
	// a single transaction. A reference that was already recorded is treated
	// as a no-op success: the enrollment is re-asserted, nothing is
	// double-counted. It reports whether the payment row was newly written.
	EnrollWithPayment(ctx context.Context, record *PaymentRecord) (bool, error)
	Exists(ctx context.Context, userID, courseID int) (bool, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]EnrollmentSummary, *Metadata, error)
}
