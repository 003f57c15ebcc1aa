package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tundeojo/learnly-api/api"
	"github.com/tundeojo/learnly-api/internal/domain"
)

// GetLessonHandler gates lesson content. Previewable lessons and lessons of
// enrolled users are served directly. An unresolvable module/lesson pair
// redirects to the first lesson of the course instead of failing, so stale
// links keep working after content is reordered.
func (app *Application) GetLessonHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	courseId, err := app.readIDParam(r, "courseID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	moduleId, err := app.readIDParam(r, "moduleID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lessonId, err := app.readIDParam(r, "lessonID")
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

	module, lesson, found := course.FindLesson(moduleId, lessonId)
	if !found {
		firstModule, firstLesson, ok := course.FirstLesson()
		if !ok {
			logger.Warn("lesson lookup on course without lessons", "courseId", courseId)
			app.notFoundResponse(w, r)
			return
		}

		location := fmt.Sprintf("/courses/%d/modules/%d/lessons/%d", course.ID, firstModule.ID, firstLesson.ID)
		http.Redirect(w, r, location, http.StatusFound)
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

	if !lesson.Previewable && !enrolled {
		resp := api.LessonLockedResponse{
			Message:     "You must be enrolled in this course to access this lesson",
			CheckoutUrl: app.config.CheckoutBaseUrl + "/" + course.Slug,
		}

		err = app.writeJSON(w, http.StatusPaymentRequired, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.LessonContentResponse{
		Id:       lesson.ID,
		ModuleId: module.ID,
		Title:    lesson.Title,
		VideoUrl: lesson.VideoUrl,
		Body:     lesson.Body,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
