package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tundeojo/learnly-api/api"
	"github.com/tundeojo/learnly-api/internal/domain"
)

func (app *Application) GetEnrollmentsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	params := api.GetEnrollmentsParams{}

	if page := r.URL.Query().Get("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			params.Page = &pageNum
		}
	}

	if pageSize := r.URL.Query().Get("pageSize"); pageSize != "" {
		if pageSizeNum, err := strconv.Atoi(pageSize); err == nil {
			params.PageSize = &pageSizeNum
		}
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	summaries, metadata, err := app.enrollmentRepo.GetSummariesByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	enrollments := make([]api.EnrollmentSummary, len(summaries))
	for i, v := range summaries {
		enrollments[i] = api.EnrollmentSummary{
			CourseId:        v.CourseID,
			CourseTitle:     v.CourseTitle,
			CourseSlug:      v.CourseSlug,
			CourseThumbnail: v.CourseThumbnail,
			PricingType:     string(v.PricingType),
			EnrolledAt:      v.EnrolledAt,
		}
	}

	resp := api.EnrollmentListResponse{
		Enrollments: enrollments,
		Metadata:    *toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetEnrollableCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := app.courseRepo.GetEnrollable(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	enrollable := make([]api.EnrollableCourse, len(courses))
	for i, v := range courses {
		enrollable[i] = api.EnrollableCourse{
			Id:          v.ID,
			Title:       v.Title,
			Slug:        v.Slug,
			Price:       v.Price,
			PricingType: string(v.PricingType),
		}
	}

	resp := api.EnrollableCoursesResponse{Courses: enrollable}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AdminEnrollUserHandler grants enrollment without a payment, for support
// cases where a verified payment failed to reconcile. The grant goes through
// the same transactional path as paid enrollments, with a zero-amount record
// and a server-generated reference, so the audit trail stays complete.
func (app *Application) AdminEnrollUserHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AdminEnrollRequest

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

	user, err := app.userRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

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

	now := time.Now()
	record := &domain.PaymentRecord{
		UserID:        user.ID,
		CourseID:      course.ID,
		Reference:     "manual-" + uuid.NewString(),
		Amount:        decimal.Zero,
		Currency:      paymentCurrency,
		Status:        domain.PaymentStatusSuccess,
		PricingType:   course.PricingType,
		CustomerEmail: user.Email,
		PaidAt:        &now,
	}

	_, err = app.enrollmentRepo.EnrollWithPayment(r.Context(), record)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("user enrolled manually", "targetUserId", user.ID, "courseId", course.ID)

	resp := api.AdminEnrollResponse{
		UserId:    user.ID,
		CourseId:  course.ID,
		Reference: record.Reference,
		Enrolled:  true,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
