package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tundeojo/learnly-api/api"
	"github.com/tundeojo/learnly-api/internal/domain"
)

const paymentCurrency = "NGN"

// VerifyPaymentHandler reconciles a checkout attempt into durable enrollment
// state. The client supplies the gateway reference it was handed at checkout;
// the server re-verifies the transaction against the gateway and only then
// writes the payment record and the enrollment grant, in one transaction.
// Resubmitting an already recorded reference is a no-op success for the user
// who owns the record and forbidden for everyone else.
func (app *Application) VerifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.VerifyPaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	if input.UserId != userId {
		logger.Warn("payment verification for another user rejected", "requestedUserId", input.UserId)
		app.forbiddenResponse(w, r)
		return
	}

	course, err := app.courseRepo.GetById(r.Context(), input.CourseId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if string(course.PricingType) != input.PricingType {
		app.badRequestResponse(w, r, fmt.Errorf("pricing type %q does not match the course", input.PricingType))
		return
	}

	if course.PricingType == domain.PricingFree {
		app.enrollFree(w, r, userId, course)
		return
	}

	tx, err := app.paymentGateway.VerifyTransaction(r.Context(), input.Reference)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGatewayAuth):
			app.serverErrorResponse(w, r, err)
		case errors.Is(err, domain.ErrGatewayUnreachable):
			app.badGatewayResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	record := &domain.PaymentRecord{
		UserID:        userId,
		CourseID:      course.ID,
		Reference:     tx.Reference,
		Amount:        decimal.NewFromInt(tx.Amount).Div(decimal.NewFromInt(100)),
		Currency:      tx.Currency,
		PricingType:   course.PricingType,
		CustomerEmail: tx.CustomerEmail,
	}

	// Paystack reports no paid-at for transactions that never completed.
	if !tx.PaidAt.IsZero() {
		record.PaidAt = &tx.PaidAt
	}

	if !tx.Successful() {
		record.Status = domain.PaymentStatusFailed

		// A failed attempt is still worth keeping for support and audits, but
		// the response does not depend on the write succeeding.
		_, err = app.paymentRepo.CreateIfAbsent(r.Context(), record)
		if err != nil {
			logger.Error("failed to record unsuccessful payment", "reference", tx.Reference, "error", err)
		}

		resp := api.VerifyPaymentResponse{
			Status:  "failed",
			Message: fmt.Sprintf("Payment was not successful, gateway reported status %q", tx.Status),
		}

		err = app.writeJSON(w, http.StatusPaymentRequired, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if msg, ok := app.checkAmount(course, tx.Amount); !ok {
		logger.Warn("payment amount check failed", "reference", tx.Reference, "reportedAmount", tx.Amount)

		resp := api.VerifyPaymentResponse{
			Status:  "error",
			Message: msg,
		}

		err = app.writeJSON(w, http.StatusBadRequest, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	existing, err := app.paymentRepo.GetByReference(r.Context(), tx.Reference)
	switch {
	case err == nil:
		if existing.UserID != userId {
			logger.Warn("replay of another user's payment reference rejected", "reference", tx.Reference)
			app.forbiddenResponse(w, r)
			return
		}
	case !errors.Is(err, domain.ErrRecordNotFound):
		app.serverErrorResponse(w, r, err)
		return
	}

	record.Status = domain.PaymentStatusSuccess

	recorded, err := app.enrollmentRepo.EnrollWithPayment(r.Context(), record)
	if err != nil {
		// Two first-time verifications of the same reference can race past the
		// lookup above, so the transaction re-checks ownership on conflict.
		if errors.Is(err, domain.ErrReferenceInUse) {
			logger.Warn("replay of another user's payment reference rejected", "reference", tx.Reference)
			app.forbiddenResponse(w, r)
			return
		}

		logger.Error("enrollment failed after verified payment", "reference", tx.Reference, "error", err)

		resp := api.VerifyPaymentResponse{
			Status:  "error",
			Message: "Payment was verified but enrollment could not be completed, please contact support",
		}

		writeErr := app.writeJSON(w, http.StatusInternalServerError, resp, nil)
		if writeErr != nil {
			app.serverErrorResponse(w, r, writeErr)
		}

		return
	}

	if !recorded {
		logger.Info("reference already recorded, enrollment re-asserted", "reference", tx.Reference)
	}

	app.sendEnrollmentEmail(r, record.CustomerEmail, course.Title, record.Reference)

	app.writeVerifiedResponse(w, r, record)
}

// enrollFree grants access to a free course. No gateway call is made; a
// zero-amount record with a server-generated reference keeps the enrollment
// auditable through the same transactional path as paid ones.
func (app *Application) enrollFree(w http.ResponseWriter, r *http.Request, userId int, course *domain.Course) {
	logger := app.contextGetLogger(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	now := time.Now()
	record := &domain.PaymentRecord{
		UserID:        userId,
		CourseID:      course.ID,
		Reference:     "free-" + uuid.NewString(),
		Amount:        decimal.Zero,
		Currency:      paymentCurrency,
		Status:        domain.PaymentStatusSuccess,
		PricingType:   domain.PricingFree,
		CustomerEmail: user.Email,
		PaidAt:        &now,
	}

	_, err = app.enrollmentRepo.EnrollWithPayment(r.Context(), record)
	if err != nil {
		logger.Error("free enrollment failed", "courseId", course.ID, "error", err)

		resp := api.VerifyPaymentResponse{
			Status:  "error",
			Message: "Enrollment could not be completed, please contact support",
		}

		writeErr := app.writeJSON(w, http.StatusInternalServerError, resp, nil)
		if writeErr != nil {
			app.serverErrorResponse(w, r, writeErr)
		}

		return
	}

	app.sendEnrollmentEmail(r, user.Email, course.Title, record.Reference)

	app.writeVerifiedResponse(w, r, record)
}

// checkAmount applies the pricing rules to the gateway-reported amount, which
// is in the currency's minor unit. Fixed-price courses require exact equality
// with no tolerance band. Donations accept any amount at or above the
// configured minimum.
func (app *Application) checkAmount(course *domain.Course, reportedAmount int64) (string, bool) {
	switch course.PricingType {
	case domain.PricingPayment:
		if reportedAmount != course.PriceInMinorUnits() {
			return "Payment amount mismatch", false
		}
	case domain.PricingDonation:
		minAmount := app.config.DonationMin.Mul(decimal.NewFromInt(100)).IntPart()
		if reportedAmount <= 0 || reportedAmount < minAmount {
			return "Donation amount is below the accepted minimum", false
		}
	}

	return "", true
}

func (app *Application) sendEnrollmentEmail(r *http.Request, email, courseTitle, reference string) {
	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending enrollment mail", "panic", err)
			}
		}()

		data := map[string]any{
			"courseTitle": courseTitle,
			"reference":   reference,
		}

		err := app.mailer.Send(email, "enrollment_confirmation.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send enrollment confirmation email", "error", err)
		}
	}(r.Context())
}

func (app *Application) writeVerifiedResponse(w http.ResponseWriter, r *http.Request, record *domain.PaymentRecord) {
	resp := api.VerifyPaymentResponse{
		Status: "success",
		Data: &api.VerifiedPaymentData{
			Reference:     record.Reference,
			CourseId:      record.CourseID,
			Amount:        record.Amount,
			PricingType:   string(record.PricingType),
			CustomerEmail: record.CustomerEmail,
			PaidAt:        record.PaidAt,
			Enrolled:      true,
		},
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
