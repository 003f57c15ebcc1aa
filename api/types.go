// Package api holds the request and response types of the public HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,alpha,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,alpha,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

type UserActivationRequest struct {
	Token string `json:"token" validate:"required,len=43"`
}

type UserActivationResponse struct {
	Activated bool `json:"activated"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type GetCoursesParams struct {
	Page     *int    `validate:"omitempty,gte=1"`
	PageSize *int    `validate:"omitempty,gte=1,lte=50"`
	Term     *string `validate:"omitempty,max=100"`
	Sort     *string `validate:"omitempty,oneof=id title price -id -title -price"`
}

type CourseSummary struct {
	Id           int             `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	ThumbnailUrl string          `json:"thumbnailUrl"`
	PricingType  string          `json:"pricingType"`
	Price        decimal.Decimal `json:"price"`
}

type CourseListResponse struct {
	Courses  []CourseSummary `json:"courses"`
	Metadata Metadata        `json:"metadata"`
}

type Lesson struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
	Previewable bool   `json:"previewable"`
}

type CourseModule struct {
	Id       int      `json:"id"`
	Title    string   `json:"title"`
	Position int      `json:"position"`
	Lessons  []Lesson `json:"lessons"`
}

type CourseDetailResponse struct {
	Id                int              `json:"id"`
	Title             string           `json:"title"`
	Slug              string           `json:"slug"`
	Description       string           `json:"description"`
	ThumbnailUrl      string           `json:"thumbnailUrl"`
	PricingType       string           `json:"pricingType"`
	Price             decimal.Decimal  `json:"price"`
	SuggestedDonation *decimal.Decimal `json:"suggestedDonation,omitempty"`
	Modules           []CourseModule   `json:"modules"`
	Enrolled          bool             `json:"enrolled"`
}

type LessonContentResponse struct {
	Id       int    `json:"id"`
	ModuleId int    `json:"moduleId"`
	Title    string `json:"title"`
	VideoUrl string `json:"videoUrl"`
	Body     string `json:"body"`
}

type LessonLockedResponse struct {
	Message     string `json:"message"`
	CheckoutUrl string `json:"checkoutUrl"`
}

type VerifyPaymentRequest struct {
	Reference   string          `json:"reference" validate:"required,max=100"`
	CourseId    int             `json:"courseId" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"amount"`
	PricingType string          `json:"pricingType" validate:"required,pricing_type"`
	UserId      int             `json:"userId" validate:"required,gt=0"`
}

type VerifiedPaymentData struct {
	Reference     string          `json:"reference"`
	CourseId      int             `json:"courseId"`
	Amount        decimal.Decimal `json:"amount"`
	PricingType   string          `json:"pricingType"`
	CustomerEmail string          `json:"customerEmail"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	Enrolled      bool            `json:"enrolled"`
}

type VerifyPaymentResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message,omitempty"`
	Data    *VerifiedPaymentData `json:"data,omitempty"`
}

type GetEnrollmentsParams struct {
	Page     *int `validate:"omitempty,gte=1"`
	PageSize *int `validate:"omitempty,gte=1,lte=50"`
}

type EnrollmentSummary struct {
	CourseId        int       `json:"courseId"`
	CourseTitle     string    `json:"courseTitle"`
	CourseSlug      string    `json:"courseSlug"`
	CourseThumbnail string    `json:"courseThumbnail"`
	PricingType     string    `json:"pricingType"`
	EnrolledAt      time.Time `json:"enrolledAt"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentSummary `json:"enrollments"`
	Metadata    Metadata            `json:"metadata"`
}

type EnrollableCourse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
	PricingType string          `json:"pricingType"`
}

type EnrollableCoursesResponse struct {
	Courses []EnrollableCourse `json:"courses"`
}

type AdminEnrollRequest struct {
	Email    string `json:"email" validate:"required,email"`
	CourseId int    `json:"courseId" validate:"required,gt=0"`
}

type AdminEnrollResponse struct {
	UserId    int    `json:"userId"`
	CourseId  int    `json:"courseId"`
	Reference string `json:"reference"`
	Enrolled  bool   `json:"enrolled"`
}
