package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tundeojo/learnly-api/api"
	"github.com/tundeojo/learnly-api/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetCoursesHandler(w http.ResponseWriter, r *http.Request) {
	params := api.GetCoursesParams{}

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

	if term := r.URL.Query().Get("term"); term != "" {
		params.Term = &term
	}

	if sort := r.URL.Query().Get("sort"); sort != "" {
		params.Sort = &sort
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toCourseFilters(params)

	courses, metadata, err := app.courseRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CourseListResponse{
		Courses:  toCourseSummaries(courses),
		Metadata: *toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseId, err := app.readIDParam(r, "courseID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	course, err := app.courseRepo.GetByIdWithContent(r.Context(), courseId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	enrolled := false

	if userId := app.sessionUserId(r); userId != 0 {
		enrolled, err = app.enrollmentRepo.Exists(r.Context(), userId, course.ID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	resp := toCourseDetail(course, enrolled)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCourseFilters(params api.GetCoursesParams) domain.CourseFilters {
	filters := domain.CourseFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	return filters
}

func toCourseSummaries(courses []*domain.Course) []api.CourseSummary {
	courseSummaries := make([]api.CourseSummary, len(courses))

	for i, v := range courses {
		courseSummary := &courseSummaries[i]

		courseSummary.Id = v.ID
		courseSummary.Title = v.Title
		courseSummary.Slug = v.Slug
		courseSummary.Description = v.Description
		courseSummary.ThumbnailUrl = v.ThumbnailUrl
		courseSummary.PricingType = string(v.PricingType)
		courseSummary.Price = v.Price
	}

	return courseSummaries
}

func toCourseDetail(course *domain.Course, enrolled bool) api.CourseDetailResponse {
	modules := make([]api.CourseModule, len(course.Modules))

	for i, m := range course.Modules {
		lessons := make([]api.Lesson, len(m.Lessons))

		for j, l := range m.Lessons {
			lessons[j] = api.Lesson{
				Id:          l.ID,
				Title:       l.Title,
				Position:    l.Position,
				Previewable: l.Previewable,
			}
		}

		modules[i] = api.CourseModule{
			Id:       m.ID,
			Title:    m.Title,
			Position: m.Position,
			Lessons:  lessons,
		}
	}

	return api.CourseDetailResponse{
		Id:                course.ID,
		Title:             course.Title,
		Slug:              course.Slug,
		Description:       course.Description,
		ThumbnailUrl:      course.ThumbnailUrl,
		PricingType:       string(course.PricingType),
		Price:             course.Price,
		SuggestedDonation: course.SuggestedDonation,
		Modules:           modules,
		Enrolled:          enrolled,
	}
}
