package integration_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CoursesTestSuite struct {
	BaseSuite
}

func TestCoursesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CoursesTestSuite))
}

func seedCourses(t testing.TB, app *TestApp) {
	truncatePaymentsAndEnrollments(t, app.DB)
	executeSQLFile(t, app.DB, "testdata/courses_down.sql")
	executeSQLFile(t, app.DB, "testdata/courses_up.sql")
}

func (s *CoursesTestSuite) TestGetCoursesHandler() {
	scenarios := []Scenario{
		{
			Name:           "returns 422 for an invalid page",
			Method:         "GET",
			URL:            "/courses?page=0",
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "Validation failed",
				"validationErrors": [
					{"field": "Page", "issue": "must be at least 1"}
				]
			}`,
		},
		{
			Name:           "lists courses matching a search term",
			Method:         "GET",
			URL:            "/courses?term=go",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"courses": [
					{
						"id": 1,
						"title": "Practical Go",
						"slug": "practical-go",
						"description": "Build real services in Go",
						"thumbnailUrl": "https://cdn.learnly.test/practical-go.jpg",
						"pricingType": "payment",
						"price": "49.99"
					}
				],
				"metadata": {
					"currentPage": 1,
					"firstPage": 1,
					"lastPage": 1,
					"pageSize": 10,
					"totalRecords": 1
				}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCourses(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CoursesTestSuite) TestGetLessonHandler() {
	cookies := s.app.authenticatedUserCookies(s.T())

	scenarios := []Scenario{
		{
			Name:           "serves a previewable lesson to guests",
			Method:         "GET",
			URL:            "/courses/1/modules/10/lessons/100",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"id": 100,
				"moduleId": 10,
				"title": "Welcome",
				"videoUrl": "https://cdn.learnly.test/welcome.mp4",
				"body": "Welcome to the course."
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCourses(t, app)
			},
		},
		{
			Name:           "locks a non-previewable lesson for guests",
			Method:         "GET",
			URL:            "/courses/1/modules/10/lessons/101",
			ExpectedStatus: http.StatusPaymentRequired,
			ExpectedResponse: `{
				"message": "You must be enrolled in this course to access this lesson",
				"checkoutUrl": "https://learnly.test/courses/practical-go"
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCourses(t, app)
			},
		},
		{
			Name:           "redirects to the first lesson when the lesson does not resolve",
			Method:         "GET",
			URL:            "/courses/1/modules/10/lessons/999",
			ExpectedStatus: http.StatusFound,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCourses(t, app)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				require.Equal(t, "/courses/1/modules/10/lessons/100", res.Header.Get("Location"))
			},
		},
		{
			Name:           "serves a locked lesson to an enrolled user",
			Method:         "GET",
			URL:            "/courses/1/modules/10/lessons/101",
			Cookies:        cookies,
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"id": 101,
				"moduleId": 10,
				"title": "Setting Up",
				"videoUrl": "https://cdn.learnly.test/setup.mp4",
				"body": "Install the toolchain."
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCourses(t, app)

				_, err := app.DB.Exec(
					context.Background(),
					"INSERT INTO enrollments (user_id, course_id) VALUES ($1, $2)",
					TestUserId, TestPaidCourseId,
				)
				require.NoError(t, err)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
