package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PricingType string

const (
	PricingFree     PricingType = "free"
	PricingPayment  PricingType = "payment"
	PricingDonation PricingType = "donation"
)

func (p PricingType) Valid() bool {
	switch p {
	case PricingFree, PricingPayment, PricingDonation:
		return true
	}

	return false
}

type Course struct {
	ID                int
	Title             string
	Slug              string
	Description       string
	ThumbnailUrl      string
	PricingType       PricingType
	Price             decimal.Decimal
	SuggestedDonation *decimal.Decimal
	Modules           []CourseModule
	CreatedAt         time.Time
}

// PriceInMinorUnits returns the fixed course price in the currency's minor
// unit (kobo for NGN), which is what the payment gateway reports.
func (c Course) PriceInMinorUnits() int64 {
	return c.Price.Mul(decimal.NewFromInt(100)).IntPart()
}

type CourseModule struct {
	ID       int
	CourseID int
	Title    string
	Position int
	Lessons  []Lesson
}

type Lesson struct {
	ID          int
	ModuleID    int
	Title       string
	Position    int
	Previewable bool
	VideoUrl    string
	Body        string
}

// FirstLesson returns the first lesson of the first module, in position
// order, for recovering from unresolvable module/lesson identifiers.
func (c Course) FirstLesson() (CourseModule, Lesson, bool) {
	for _, m := range c.Modules {
		if len(m.Lessons) > 0 {
			return m, m.Lessons[0], true
		}
	}

	return CourseModule{}, Lesson{}, false
}

// FindLesson resolves a module/lesson identifier pair within the course.
func (c Course) FindLesson(moduleID, lessonID int) (CourseModule, Lesson, bool) {
	for _, m := range c.Modules {
		if m.ID != moduleID {
			continue
		}

		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return m, l, true
			}
		}
	}

	return CourseModule{}, Lesson{}, false
}

type CourseFilters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (f CourseFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f CourseFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f CourseFilters) Limit() int {
	return f.PageSize
}

func (f CourseFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type CourseRepository interface {
	GetAll(ctx context.Context, filters CourseFilters) ([]*Course, *Metadata, error)
	GetById(ctx context.Context, id int) (*Course, error)
	GetByIdWithContent(ctx context.Context, id int) (*Course, error)
	GetEnrollable(ctx context.Context) ([]*Course, error)
}
